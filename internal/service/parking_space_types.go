package service

import (
	"regexp"
	"strings"

	"property-info-api/internal/domain"
)

// parkingSpaceTypeByCode translates legacy object type codes to parking
// space types. Codes missing here fall back to a plain space without
// electricity.
var parkingSpaceTypeByCode = map[string]string{
	"VARMG":    domain.ParkingSpaceTypeWarmGarage,
	"KALLG":    domain.ParkingSpaceTypeColdGarage,
	"KALLGMEL": domain.ParkingSpaceTypeColdGarageWithElectricity,
	"CGARAGE":  domain.ParkingSpaceTypeCentralGarage,
	"MCGARAGE": domain.ParkingSpaceTypeMotorcycleGarage,
	"GARAGE":   domain.ParkingSpaceTypeGarage,
	"CPORT":    domain.ParkingSpaceTypeCarport,
	"CPORTL":   domain.ParkingSpaceTypeCarportWithChargingBox,
	"PDACK":    domain.ParkingSpaceTypeParkingDeck,
	"PPLUEL":   domain.ParkingSpaceTypeWithoutElectricity,
	"PPLMEL":   domain.ParkingSpaceTypeWithElectricity,
	"PPLLADD":  domain.ParkingSpaceTypeWithChargingBox,
	"MCPPL":    domain.ParkingSpaceTypeMotorcycleParkingSpace,
	"HUSVPPL":  domain.ParkingSpaceTypeCaravanParkingSpace,
	"BESOK":    domain.ParkingSpaceTypeVisitorParkingSpace,
	"HCPPPL":   domain.ParkingSpaceTypeDisabledParkingPlace,
}

// applicationCategoryByWaitingList translates the waiting list label of a
// published space to an application category. Unknown labels fall back to
// the internal queue.
var applicationCategoryByWaitingList = map[string]string{
	"Bilplats (intern)": domain.ParkingSpaceApplicationInternal,
	"Bilplats (extern)": domain.ParkingSpaceApplicationExternal,
}

func parkingSpaceType(objectTypeCode string) string {
	if t, ok := parkingSpaceTypeByCode[objectTypeCode]; ok {
		return t
	}
	return domain.ParkingSpaceTypeWithoutElectricity
}

func parkingSpaceApplicationCategory(waitingListType string) string {
	if c, ok := applicationCategoryByWaitingList[waitingListType]; ok {
		return c
	}
	return domain.ParkingSpaceApplicationInternal
}

// streetAndNumberPattern splits "Testgatan 12 B" into street and number
// parts. The number part starts at the first digit.
var streetAndNumberPattern = regexp.MustCompile(`^([^0-9]+) ([0-9].*)$`)

// splitStreetAddress separates a combined street-and-number string.
// Addresses without a number come back whole in the street part.
func splitStreetAddress(streetAndNumber string) (street, number string) {
	if m := streetAndNumberPattern.FindStringSubmatch(streetAndNumber); m != nil {
		return m[1], m[2]
	}
	return strings.TrimSpace(streetAndNumber), ""
}
