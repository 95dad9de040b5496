package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// PostgresParkingRepository reads the rental object views of the legacy store.
type PostgresParkingRepository struct {
	db *sql.DB
}

func NewPostgresParkingRepository(db *sql.DB) *PostgresParkingRepository {
	return &PostgresParkingRepository{db: db}
}

var _ ParkingRepository = (*PostgresParkingRepository)(nil)

// Contract types that count as an active parking lease.
const leaseContractTypes = `('PARKERING', 'P-PLATS', 'GARAGE')`

// A block is active when its window covers now; a contract is active when
// no end-of-billing date is set, its type is in the allow-list and it is
// neither deleted nor voided.
const activeBlockPredicate = `
	(rb.block_start IS NULL OR rb.block_start <= NOW())
	AND (rb.block_end IS NULL OR rb.block_end > NOW())
`

const activeContractPredicate = `
	c.end_of_billing_date IS NULL
	AND c.contract_type IN ` + leaseContractTypes + `
	AND NOT c.deleted
	AND NOT c.voided
`

const parkingSpaceColumns = `
	v.rental_object_code,
	v.address,
	v.area_caption,
	v.block_caption,
	v.block_code,
	v.object_type_caption,
	v.object_type_code,
	v.vehicle_space_caption,
	v.vehicle_space_code,
	v.vacant_from,
	(
		SELECT json_agg(json_build_object('yearrent', ar.year_rent))
		FROM annual_rents ar
		WHERE ar.rental_object_code = v.rental_object_code
	) AS rents
`

func (r *PostgresParkingRepository) GetVacantParkingSpaceRows(ctx context.Context) ([]ParkingSpaceRow, error) {
	query := `
	SELECT ` + parkingSpaceColumns + `
	FROM vehicle_spaces v
	WHERE NOT EXISTS (
		SELECT 1 FROM rental_blocks rb
		WHERE rb.rental_object_code = v.rental_object_code AND ` + activeBlockPredicate + `
	)
	AND NOT EXISTS (
		SELECT 1 FROM contracts c
		WHERE c.rental_object_code = v.rental_object_code AND ` + activeContractPredicate + `
	)
	ORDER BY v.block_code, v.vehicle_space_code
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query vacant parking spaces: %w", err)
	}
	defer rows.Close()

	return scanParkingSpaceRows(rows, false)
}

// Unfiltered lookups also surface why an object is unavailable.
const rentalObjectQuery = `
	SELECT ` + parkingSpaceColumns + `,
	(
		SELECT rb.block_reason FROM rental_blocks rb
		WHERE rb.rental_object_code = v.rental_object_code AND ` + activeBlockPredicate + `
		LIMIT 1
	) AS blocked_reason,
	(
		SELECT c.contract_id FROM contracts c
		WHERE c.rental_object_code = v.rental_object_code AND ` + activeContractPredicate + `
		LIMIT 1
	) AS contract_id
	FROM vehicle_spaces v
`

func (r *PostgresParkingRepository) GetRentalObjectRowByCode(ctx context.Context, rentalObjectCode string) (*ParkingSpaceRow, error) {
	query := rentalObjectQuery + `
	WHERE v.rental_object_code = $1
	`

	rows, err := r.db.QueryContext(ctx, query, rentalObjectCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query rental object: %w", err)
	}
	defer rows.Close()

	out, err := scanParkingSpaceRows(rows, true)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return &out[0], nil
}

func (r *PostgresParkingRepository) GetRentalObjectRowsByCodes(ctx context.Context, rentalObjectCodes []string) ([]ParkingSpaceRow, error) {
	query := rentalObjectQuery + `
	WHERE v.rental_object_code = ANY($1)
	ORDER BY v.block_code, v.vehicle_space_code
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(rentalObjectCodes))
	if err != nil {
		return nil, fmt.Errorf("failed to query rental objects: %w", err)
	}
	defer rows.Close()

	return scanParkingSpaceRows(rows, true)
}

func scanParkingSpaceRows(rows *sql.Rows, withStatus bool) ([]ParkingSpaceRow, error) {
	var out []ParkingSpaceRow
	for rows.Next() {
		var row ParkingSpaceRow
		var address, areaCaption, blockCaption, blockCode sql.NullString
		var objectTypeCaption, objectTypeCode, spaceCaption, spaceCode sql.NullString
		var vacantFrom sql.NullTime
		var rents sql.NullString
		var blockedReason, contractID sql.NullString

		dest := []any{
			&row.RentalObjectCode,
			&address,
			&areaCaption,
			&blockCaption,
			&blockCode,
			&objectTypeCaption,
			&objectTypeCode,
			&spaceCaption,
			&spaceCode,
			&vacantFrom,
			&rents,
		}
		if withStatus {
			dest = append(dest, &blockedReason, &contractID)
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan parking space row: %w", err)
		}

		row.RentalObjectCode = trim(row.RentalObjectCode)
		row.Address = trim(address.String)
		row.AreaCaption = trim(areaCaption.String)
		row.BlockCaption = trim(blockCaption.String)
		row.BlockCode = trim(blockCode.String)
		row.ObjectTypeCaption = trim(objectTypeCaption.String)
		row.ObjectTypeCode = trim(objectTypeCode.String)
		row.VehicleSpaceCaption = trim(spaceCaption.String)
		row.VehicleSpaceCode = trim(spaceCode.String)
		row.VacantFrom = vacantFrom.Time
		row.RentsJSON = rents.String
		row.BlockedReason = trim(blockedReason.String)
		row.ContractID = trim(contractID.String)
		out = append(out, row)
	}
	return out, rows.Err()
}
