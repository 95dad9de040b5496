package repository

import "context"

// PropertyRow is the wide multi-join projection of one legacy rental
// property. String columns come from fixed-width legacy storage and are
// right-trimmed at scan time.
type PropertyRow struct {
	RentalPropertyID string
	ObjectTypeCode   string
	RentalTypeCode   string
	RentalType       string
	Address          string
	Code             string
	Number           string
	PropertyType     string
	Entrance         string
	Floor            string
	HasElevator      bool
	WashSpace        string
	Area             float64
	EstateCode       string
	EstateName       string
	BuildingCode     string
	BuildingName     string
	BlockCode        string
	BlockCaption     string
}

// MaintenanceUnitRow is one maintenance unit joined through the
// unit-to-property linking table.
type MaintenanceUnitRow struct {
	ID               string
	RentalPropertyID string
	Code             string
	Caption          string
	TypeCode         string
	TypeCaption      string
	EstateCode       string
	EstateName       string
}

// PropertyRepository is the legacy property system's SQL view surface.
type PropertyRepository interface {
	// GetPropertyRow returns the joined property row for one external
	// rental id, or (nil, nil) when the id matches nothing.
	GetPropertyRow(ctx context.Context, propertyID string) (*PropertyRow, error)

	// GetMaintenanceUnitRowsByEstateCode returns the maintenance units of
	// one estate. nil (not an empty slice) means no units.
	GetMaintenanceUnitRowsByEstateCode(ctx context.Context, estateCode string) ([]MaintenanceUnitRow, error)

	// GetMaintenanceUnitRowsByPropertyID resolves units through the
	// property linking table instead.
	GetMaintenanceUnitRowsByPropertyID(ctx context.Context, rentalPropertyID string) ([]MaintenanceUnitRow, error)
}
