package domain

import "errors"

var (
	// ErrNotFound is returned by lookups that can distinguish "no matching
	// rows" from a query failure.
	ErrNotFound = errors.New("not found")

	// ErrParkingSpaceNotFound is returned when the published rental object
	// service has no listing for the requested rent id.
	ErrParkingSpaceNotFound = errors.New("parking space not found")

	// ErrUnknownPropertyType is returned when a legacy row carries an
	// object type code outside the known set. This is a data integrity
	// violation, never silently defaulted.
	ErrUnknownPropertyType = errors.New("unknown rental property type code")
)
