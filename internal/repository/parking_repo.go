package repository

import (
	"context"
	"time"
)

// ParkingSpaceRow is one joined rental object row for a vehicle space.
// AreaCaption is the free-text caption later classified into district and
// residential area; RentsJSON is a JSON-encoded array of annual rent rows.
type ParkingSpaceRow struct {
	RentalObjectCode    string
	Address             string
	AreaCaption         string
	BlockCaption        string
	BlockCode           string
	ObjectTypeCaption   string
	ObjectTypeCode      string
	VehicleSpaceCaption string
	VehicleSpaceCode    string
	VacantFrom          time.Time
	RentsJSON           string

	// Set by the unfiltered lookup when an active block or contract exists.
	BlockedReason string
	ContractID    string
}

// ParkingRepository is the rental object query surface of the legacy store.
type ParkingRepository interface {
	// GetVacantParkingSpaceRows returns vehicle spaces with no active
	// rental block and no active contract, ordered by block code then
	// vehicle space number.
	GetVacantParkingSpaceRows(ctx context.Context) ([]ParkingSpaceRow, error)

	// GetRentalObjectRowByCode returns one vehicle space without the
	// vacancy filter, or (nil, nil) when the code matches nothing.
	GetRentalObjectRowByCode(ctx context.Context, rentalObjectCode string) (*ParkingSpaceRow, error)

	// GetRentalObjectRowsByCodes restricts the unfiltered join to the
	// given rental object codes.
	GetRentalObjectRowsByCodes(ctx context.Context, rentalObjectCodes []string) ([]ParkingSpaceRow, error)
}
