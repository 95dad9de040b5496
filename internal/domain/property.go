package domain

// Rental property type discriminators.
const (
	PropertyTypeApartment  = "Apartment"
	PropertyTypeCommercial = "Commercial"
	PropertyTypeParking    = "Parking"
)

// PropertyPayload is the per-variant payload of a RentalPropertyInfo.
// Exactly one of ApartmentInfo, CommercialInfo or ParkingInfo, matching
// the Type discriminator.
type PropertyPayload interface {
	propertyPayload()
}

// RentalPropertyInfo is the normalized view of one legacy rental property.
type RentalPropertyInfo struct {
	ID               string                `json:"id"`
	Type             string                `json:"type"`
	Property         PropertyPayload       `json:"property"`
	MaintenanceUnits []MaintenanceUnitInfo `json:"maintenanceUnits,omitempty"`
}

// ApartmentInfo is the payload for residential apartments.
type ApartmentInfo struct {
	RentalTypeCode string  `json:"rentalTypeCode"`
	RentalType     string  `json:"rentalType"`
	Address        string  `json:"address"`
	Code           string  `json:"code"`
	Number         string  `json:"number"`
	Type           string  `json:"type"`
	Entrance       string  `json:"entrance"`
	Floor          string  `json:"floor"`
	HasElevator    bool    `json:"hasElevator"`
	WashSpace      string  `json:"washSpace"`
	Area           float64 `json:"area"`
	EstateCode     string  `json:"estateCode"`
	Estate         string  `json:"estate"`
	BuildingCode   string  `json:"buildingCode"`
	Building       string  `json:"building"`
}

// CommercialInfo is the payload for commercial premises.
type CommercialInfo struct {
	RentalTypeCode string  `json:"rentalTypeCode"`
	RentalType     string  `json:"rentalType"`
	Address        string  `json:"address"`
	Code           string  `json:"code"`
	Type           string  `json:"type"`
	Entrance       string  `json:"entrance"`
	Area           float64 `json:"area"`
	EstateCode     string  `json:"estateCode"`
	Estate         string  `json:"estate"`
	BuildingCode   string  `json:"buildingCode"`
	Building       string  `json:"building"`
}

// ParkingInfo is the payload for vehicle spaces. The legacy system only
// exposes code-level identifiers for these.
type ParkingInfo struct {
	RentalTypeCode string `json:"rentalTypeCode"`
	RentalType     string `json:"rentalType"`
	Address        string `json:"address"`
	Code           string `json:"code"`
	BlockCode      string `json:"blockCode"`
	BlockCaption   string `json:"blockCaption"`
}

func (*ApartmentInfo) propertyPayload()  {}
func (*CommercialInfo) propertyPayload() {}
func (*ParkingInfo) propertyPayload()    {}

// MaintenanceUnitInfo is a shared facility (laundry room, storage...)
// associated with an estate and linked to rental properties.
type MaintenanceUnitInfo struct {
	ID               string `json:"id"`
	RentalPropertyID string `json:"rentalPropertyId"`
	Code             string `json:"code"`
	Caption          string `json:"caption"`
	TypeCode         string `json:"typeCode,omitempty"`
	TypeCaption      string `json:"typeCaption,omitempty"`
	EstateCode       string `json:"estateCode"`
	Estate           string `json:"estate"`
}
