package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// PostgresPropertyRepository reads the legacy property views.
type PostgresPropertyRepository struct {
	db *sql.DB
}

func NewPostgresPropertyRepository(db *sql.DB) *PostgresPropertyRepository {
	return &PostgresPropertyRepository{db: db}
}

var _ PropertyRepository = (*PostgresPropertyRepository)(nil)

// The elevator and area sub-tables fan out to multiple physical rows per
// property; LIMIT 1 collapses them so exactly one record comes back.
const propertyRowQuery = `
	SELECT
		p.rental_property_id,
		p.object_type_code,
		p.rental_type_code,
		p.rental_type,
		p.address,
		p.code,
		p.apartment_number,
		p.apartment_type,
		p.entrance,
		p.floor,
		p.has_elevator,
		p.wash_space,
		p.area_size,
		e.estate_code,
		e.estate_name,
		b.building_code,
		b.building_name,
		bl.block_code,
		bl.block_caption
	FROM rental_properties p
	LEFT JOIN estates e ON e.estate_code = p.estate_code
	LEFT JOIN buildings b ON b.building_code = p.building_code
	LEFT JOIN blocks bl ON bl.block_code = p.block_code
	WHERE p.rental_property_id = $1
	LIMIT 1
`

func (r *PostgresPropertyRepository) GetPropertyRow(ctx context.Context, propertyID string) (*PropertyRow, error) {
	var row PropertyRow
	var rentalTypeCode, rentalType, address, code, number, propertyType sql.NullString
	var entrance, floor, washSpace sql.NullString
	var hasElevator sql.NullBool
	var area sql.NullFloat64
	var estateCode, estateName, buildingCode, buildingName, blockCode, blockCaption sql.NullString

	err := r.db.QueryRowContext(ctx, propertyRowQuery, propertyID).Scan(
		&row.RentalPropertyID,
		&row.ObjectTypeCode,
		&rentalTypeCode,
		&rentalType,
		&address,
		&code,
		&number,
		&propertyType,
		&entrance,
		&floor,
		&hasElevator,
		&washSpace,
		&area,
		&estateCode,
		&estateName,
		&buildingCode,
		&buildingName,
		&blockCode,
		&blockCaption,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query property row: %w", err)
	}

	// Legacy fixed-width storage pads with trailing spaces.
	row.RentalPropertyID = trim(row.RentalPropertyID)
	row.ObjectTypeCode = trim(row.ObjectTypeCode)
	row.RentalTypeCode = trim(rentalTypeCode.String)
	row.RentalType = trim(rentalType.String)
	row.Address = trim(address.String)
	row.Code = trim(code.String)
	row.Number = trim(number.String)
	row.PropertyType = trim(propertyType.String)
	row.Entrance = trim(entrance.String)
	row.Floor = trim(floor.String)
	row.HasElevator = hasElevator.Bool
	row.WashSpace = trim(washSpace.String)
	row.Area = area.Float64
	row.EstateCode = trim(estateCode.String)
	row.EstateName = trim(estateName.String)
	row.BuildingCode = trim(buildingCode.String)
	row.BuildingName = trim(buildingName.String)
	row.BlockCode = trim(blockCode.String)
	row.BlockCaption = trim(blockCaption.String)

	return &row, nil
}

const maintenanceUnitQuery = `
	SELECT
		mu.maintenance_unit_id,
		l.rental_property_id,
		mu.code,
		mu.caption,
		mu.type_code,
		mu.type_caption,
		mu.estate_code,
		mu.estate_name
	FROM maintenance_units mu
	INNER JOIN maintenance_unit_links l
		ON l.maintenance_unit_id = mu.maintenance_unit_id
`

func (r *PostgresPropertyRepository) GetMaintenanceUnitRowsByEstateCode(ctx context.Context, estateCode string) ([]MaintenanceUnitRow, error) {
	query := maintenanceUnitQuery + `
	WHERE mu.estate_code = $1
	ORDER BY mu.code
	`
	return r.queryMaintenanceUnits(ctx, query, estateCode)
}

func (r *PostgresPropertyRepository) GetMaintenanceUnitRowsByPropertyID(ctx context.Context, rentalPropertyID string) ([]MaintenanceUnitRow, error) {
	query := maintenanceUnitQuery + `
	WHERE l.rental_property_id = $1
	ORDER BY mu.code
	`
	return r.queryMaintenanceUnits(ctx, query, rentalPropertyID)
}

func (r *PostgresPropertyRepository) queryMaintenanceUnits(ctx context.Context, query string, arg any) ([]MaintenanceUnitRow, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query maintenance units: %w", err)
	}
	defer rows.Close()

	// nil result distinguishes "no units" from an empty page.
	var out []MaintenanceUnitRow
	for rows.Next() {
		var row MaintenanceUnitRow
		var typeCode, typeCaption sql.NullString

		err := rows.Scan(
			&row.ID,
			&row.RentalPropertyID,
			&row.Code,
			&row.Caption,
			&typeCode,
			&typeCaption,
			&row.EstateCode,
			&row.EstateName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan maintenance unit: %w", err)
		}

		row.ID = trim(row.ID)
		row.RentalPropertyID = trim(row.RentalPropertyID)
		row.Code = trim(row.Code)
		row.Caption = trim(row.Caption)
		row.TypeCode = trim(typeCode.String)
		row.TypeCaption = trim(typeCaption.String)
		row.EstateCode = trim(row.EstateCode)
		row.EstateName = trim(row.EstateName)
		out = append(out, row)
	}
	return out, rows.Err()
}

func trim(s string) string {
	return strings.TrimRight(s, " ")
}
