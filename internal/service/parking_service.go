package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"property-info-api/internal/domain"
	"property-info-api/internal/repository"
)

// ParkingService post-processes joined rental object rows into vacant
// parking spaces with derived district, residential area and monthly rent.
type ParkingService struct {
	repo   repository.ParkingRepository
	logger *zap.Logger
}

func NewParkingService(repo repository.ParkingRepository, logger *zap.Logger) *ParkingService {
	return &ParkingService{repo: repo, logger: logger}
}

// ListVacantParkingSpaces returns every vehicle space with no active
// rental block and no active contract.
func (s *ParkingService) ListVacantParkingSpaces(ctx context.Context) ([]domain.VacantParkingSpace, error) {
	rows, err := s.repo.GetVacantParkingSpaceRows(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch vacant parking spaces", zap.Error(err))
		return nil, fmt.Errorf("failed to list vacant parking spaces: %w", err)
	}

	out := make([]domain.VacantParkingSpace, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.transform(row))
	}
	return out, nil
}

// GetRentalObjectByCode looks up one vehicle space without the vacancy
// filter. Returns domain.ErrNotFound when the code matches nothing.
func (s *ParkingService) GetRentalObjectByCode(ctx context.Context, rentalObjectCode string) (*domain.RentalObject, error) {
	row, err := s.repo.GetRentalObjectRowByCode(ctx, rentalObjectCode)
	if err != nil {
		s.logger.Error("Failed to fetch rental object",
			zap.String("rental_object_code", rentalObjectCode),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to get rental object: %w", err)
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}

	obj := s.toRentalObject(*row)
	return &obj, nil
}

// GetRentalObjectsByCodes restricts the unfiltered lookup to a code set.
func (s *ParkingService) GetRentalObjectsByCodes(ctx context.Context, rentalObjectCodes []string) ([]domain.RentalObject, error) {
	rows, err := s.repo.GetRentalObjectRowsByCodes(ctx, rentalObjectCodes)
	if err != nil {
		s.logger.Error("Failed to fetch rental objects", zap.Error(err))
		return nil, fmt.Errorf("failed to get rental objects: %w", err)
	}

	out := make([]domain.RentalObject, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.toRentalObject(row))
	}
	return out, nil
}

func (s *ParkingService) transform(row repository.ParkingSpaceRow) domain.VacantParkingSpace {
	districtName, districtCode, areaName, areaCode := classifyDistrict(row.AreaCaption)

	return domain.VacantParkingSpace{
		RentalObjectCode:       row.RentalObjectCode,
		Address:                row.Address,
		MonthlyRent:            monthlyRentFromJSON(row.RentsJSON),
		DistrictCaption:        districtName,
		DistrictCode:           districtCode,
		BlockCaption:           row.BlockCaption,
		BlockCode:              row.BlockCode,
		ResidentialAreaCaption: areaName,
		ResidentialAreaCode:    areaCode,
		ObjectTypeCaption:      row.ObjectTypeCaption,
		ObjectTypeCode:         row.ObjectTypeCode,
		VehicleSpaceCaption:    row.VehicleSpaceCaption,
		VehicleSpaceCode:       row.VehicleSpaceCode,
		VacantFrom:             row.VacantFrom,
	}
}

func (s *ParkingService) toRentalObject(row repository.ParkingSpaceRow) domain.RentalObject {
	obj := domain.RentalObject{VacantParkingSpace: s.transform(row)}

	switch {
	case row.BlockedReason != "":
		obj.Status = domain.RentalObjectStatusBlocked
		obj.BlockedReason = row.BlockedReason
	case row.ContractID != "":
		obj.Status = domain.RentalObjectStatusLeased
		obj.ContractID = row.ContractID
	default:
		obj.Status = domain.RentalObjectStatusVacant
	}
	return obj
}

// monthlyRentFromJSON sums the yearrent fields of a JSON-encoded annual
// rent array and divides by twelve. Missing or non-numeric entries count
// as zero; an absent array means no rent is set.
func monthlyRentFromJSON(rentsJSON string) float64 {
	if rentsJSON == "" {
		return 0
	}

	var rents []map[string]any
	if err := json.Unmarshal([]byte(rentsJSON), &rents); err != nil {
		return 0
	}

	var yearly float64
	for _, rent := range rents {
		switch v := rent["yearrent"].(type) {
		case float64:
			yearly += v
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				yearly += f
			}
		}
	}
	return yearly / 12
}
