package domain

import "time"

// Rental object availability statuses.
const (
	RentalObjectStatusVacant  = "Vacant"
	RentalObjectStatusBlocked = "Blocked"
	RentalObjectStatusLeased  = "Leased"
)

// VacantParkingSpace is one leasable vehicle space with derived district,
// residential area and monthly rent.
type VacantParkingSpace struct {
	RentalObjectCode       string    `json:"rentalObjectCode"`
	Address                string    `json:"address"`
	MonthlyRent            float64   `json:"monthlyRent"`
	DistrictCaption        string    `json:"districtCaption"`
	DistrictCode           string    `json:"districtCode,omitempty"`
	BlockCaption           string    `json:"blockCaption"`
	BlockCode              string    `json:"blockCode"`
	ResidentialAreaCaption string    `json:"residentialAreaCaption"`
	ResidentialAreaCode    string    `json:"residentialAreaCode,omitempty"`
	ObjectTypeCaption      string    `json:"objectTypeCaption"`
	ObjectTypeCode         string    `json:"objectTypeCode"`
	VehicleSpaceCaption    string    `json:"vehicleSpaceCaption"`
	VehicleSpaceCode       string    `json:"vehicleSpaceCode"`
	VacantFrom             time.Time `json:"vacantFrom"`
}

// RentalObject is a vehicle space looked up without the vacancy filter,
// so it additionally carries the computed availability status.
type RentalObject struct {
	VacantParkingSpace

	Status        string `json:"status"`
	BlockedReason string `json:"blockedReason,omitempty"`
	ContractID    string `json:"contractId,omitempty"`
}

// Listing statuses.
const (
	ListingStatusActive   = "Active"
	ListingStatusInactive = "Inactive"
)

// Listing is the published rental object shape returned by the legacy
// SOAP service, keyed by rent id.
type Listing struct {
	ID                      int       `json:"id"`
	RentalObjectCode        string    `json:"rentalObjectCode"`
	Address                 string    `json:"address"`
	MonthlyRent             float64   `json:"monthlyRent"`
	DistrictCaption         string    `json:"districtCaption"`
	DistrictCode            string    `json:"districtCode"`
	BlockCaption            string    `json:"blockCaption"`
	BlockCode               string    `json:"blockCode"`
	ObjectTypeCaption       string    `json:"objectTypeCaption"`
	ObjectTypeCode          string    `json:"objectTypeCode"`
	RentalObjectTypeCaption string    `json:"rentalObjectTypeCaption"`
	RentalObjectTypeCode    string    `json:"rentalObjectTypeCode"`
	PublishedFrom           time.Time `json:"publishedFrom"`
	PublishedTo             time.Time `json:"publishedTo"`
	VacantFrom              time.Time `json:"vacantFrom"`
	Status                  string    `json:"status"`
	WaitingListType         string    `json:"waitingListType"`
}

// Parking space types used by the external lookup service.
const (
	ParkingSpaceTypeWarmGarage                = "WarmGarage"
	ParkingSpaceTypeColdGarage                = "ColdGarage"
	ParkingSpaceTypeColdGarageWithElectricity = "ColdGarageWithElectricity"
	ParkingSpaceTypeCentralGarage             = "CentralGarage"
	ParkingSpaceTypeMotorcycleGarage          = "MotorcycleGarage"
	ParkingSpaceTypeGarage                    = "Garage"
	ParkingSpaceTypeCarport                   = "Carport"
	ParkingSpaceTypeCarportWithChargingBox    = "CarportWithChargingBox"
	ParkingSpaceTypeParkingDeck               = "ParkingDeck"
	ParkingSpaceTypeWithoutElectricity        = "ParkingSpaceWithoutElectricity"
	ParkingSpaceTypeWithElectricity           = "ParkingSpaceWithElectricity"
	ParkingSpaceTypeWithChargingBox           = "ParkingSpaceWithChargingBox"
	ParkingSpaceTypeMotorcycleParkingSpace    = "MotorcycleParkingSpace"
	ParkingSpaceTypeCaravanParkingSpace       = "CaravanParkingSpace"
	ParkingSpaceTypeVisitorParkingSpace       = "VisitorParkingSpace"
	ParkingSpaceTypeDisabledParkingPlace      = "DisabledParkingPlace"
)

// Parking space application categories.
const (
	ParkingSpaceApplicationInternal = "Internal"
	ParkingSpaceApplicationExternal = "External"
)

// ParkingSpaceAddress is a street address split into components.
type ParkingSpaceAddress struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}

// ParkingSpace is the shape returned by the external parking space lookup.
type ParkingSpace struct {
	ParkingSpaceID      string              `json:"parkingSpaceId"`
	Address             ParkingSpaceAddress `json:"address"`
	MonthlyRent         float64             `json:"monthlyRent"`
	VacantFrom          time.Time           `json:"vacantFrom"`
	Type                string              `json:"type"`
	ApplicationCategory string              `json:"applicationCategory"`
}
