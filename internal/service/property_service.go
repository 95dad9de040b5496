package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"property-info-api/internal/domain"
	"property-info-api/internal/repository"
)

// Legacy object type codes of the property system.
const (
	objectTypeApartment  = "balgh"
	objectTypeCommercial = "balok"
	objectTypeParking    = "babps"
)

// maintenanceCaptionNoise are legacy placement prefixes that captions
// carry in front of the human-readable part.
var maintenanceCaptionNoise = []string{
	"TVÄTTSTUGA",
	"Tvättstuga",
	"MILJÖBOD",
	"Miljöbod",
	"SKYDDSRUM",
	"LEKPLATS",
}

// PropertyService normalizes legacy rental property rows into typed
// payloads keyed by object type code.
type PropertyService struct {
	repo   repository.PropertyRepository
	logger *zap.Logger
}

func NewPropertyService(repo repository.PropertyRepository, logger *zap.Logger) *PropertyService {
	return &PropertyService{repo: repo, logger: logger}
}

// GetRentalPropertyInfo resolves one rental property into its typed
// payload. Apartments and commercial premises also carry the maintenance
// units of their estate. Returns domain.ErrNotFound when the id matches
// nothing and domain.ErrUnknownPropertyType for unmapped object codes.
func (s *PropertyService) GetRentalPropertyInfo(ctx context.Context, propertyID string) (*domain.RentalPropertyInfo, error) {
	row, err := s.repo.GetPropertyRow(ctx, propertyID)
	if err != nil {
		s.logger.Error("Failed to fetch property row",
			zap.String("rental_property_id", propertyID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to get rental property: %w", err)
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}

	info, err := normalizeProperty(row)
	if err != nil {
		return nil, err
	}

	if row.EstateCode != "" && row.ObjectTypeCode != objectTypeParking {
		units, err := s.GetMaintenanceUnitsByEstateCode(ctx, row.EstateCode)
		if err != nil {
			return nil, err
		}
		info.MaintenanceUnits = units
	}
	return info, nil
}

// GetApartmentRentalPropertyInfo is the apartment-only variant: any other
// object type is reported as an unknown type error.
func (s *PropertyService) GetApartmentRentalPropertyInfo(ctx context.Context, propertyID string) (*domain.RentalPropertyInfo, error) {
	info, err := s.GetRentalPropertyInfo(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if info.Type != domain.PropertyTypeApartment {
		return nil, fmt.Errorf("property %s: %w", propertyID, domain.ErrUnknownPropertyType)
	}
	return info, nil
}

// GetMaintenanceUnitsByEstateCode returns the maintenance units of one
// estate. nil means the estate has none; callers must not conflate that
// with an empty result set they built themselves.
func (s *PropertyService) GetMaintenanceUnitsByEstateCode(ctx context.Context, estateCode string) ([]domain.MaintenanceUnitInfo, error) {
	rows, err := s.repo.GetMaintenanceUnitRowsByEstateCode(ctx, estateCode)
	if err != nil {
		s.logger.Error("Failed to fetch maintenance units",
			zap.String("estate_code", estateCode),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to get maintenance units: %w", err)
	}
	return toMaintenanceUnits(rows), nil
}

// GetMaintenanceUnits resolves units through the property linking table.
func (s *PropertyService) GetMaintenanceUnits(ctx context.Context, rentalPropertyID string) ([]domain.MaintenanceUnitInfo, error) {
	rows, err := s.repo.GetMaintenanceUnitRowsByPropertyID(ctx, rentalPropertyID)
	if err != nil {
		s.logger.Error("Failed to fetch maintenance units",
			zap.String("rental_property_id", rentalPropertyID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to get maintenance units: %w", err)
	}
	return toMaintenanceUnits(rows), nil
}

func normalizeProperty(row *repository.PropertyRow) (*domain.RentalPropertyInfo, error) {
	info := &domain.RentalPropertyInfo{ID: row.RentalPropertyID}

	switch row.ObjectTypeCode {
	case objectTypeApartment:
		info.Type = domain.PropertyTypeApartment
		info.Property = &domain.ApartmentInfo{
			RentalTypeCode: row.RentalTypeCode,
			RentalType:     row.RentalType,
			Address:        row.Address,
			Code:           row.Code,
			Number:         row.Number,
			Type:           row.PropertyType,
			Entrance:       row.Entrance,
			Floor:          row.Floor,
			HasElevator:    row.HasElevator,
			WashSpace:      row.WashSpace,
			Area:           row.Area,
			EstateCode:     row.EstateCode,
			Estate:         row.EstateName,
			BuildingCode:   row.BuildingCode,
			Building:       row.BuildingName,
		}
	case objectTypeCommercial:
		info.Type = domain.PropertyTypeCommercial
		info.Property = &domain.CommercialInfo{
			RentalTypeCode: row.RentalTypeCode,
			RentalType:     row.RentalType,
			Address:        row.Address,
			Code:           row.Code,
			Type:           row.PropertyType,
			Entrance:       row.Entrance,
			Area:           row.Area,
			EstateCode:     row.EstateCode,
			Estate:         row.EstateName,
			BuildingCode:   row.BuildingCode,
			Building:       row.BuildingName,
		}
	case objectTypeParking:
		info.Type = domain.PropertyTypeParking
		info.Property = &domain.ParkingInfo{
			RentalTypeCode: row.RentalTypeCode,
			RentalType:     row.RentalType,
			Address:        row.Address,
			Code:           row.Code,
			BlockCode:      row.BlockCode,
			BlockCaption:   row.BlockCaption,
		}
	default:
		return nil, fmt.Errorf("object type code %q: %w", row.ObjectTypeCode, domain.ErrUnknownPropertyType)
	}
	return info, nil
}

func toMaintenanceUnits(rows []repository.MaintenanceUnitRow) []domain.MaintenanceUnitInfo {
	if rows == nil {
		return nil
	}
	units := make([]domain.MaintenanceUnitInfo, 0, len(rows))
	for _, row := range rows {
		units = append(units, domain.MaintenanceUnitInfo{
			ID:               row.ID,
			RentalPropertyID: row.RentalPropertyID,
			Code:             row.Code,
			Caption:          cleanMaintenanceCaption(row.Caption),
			TypeCode:         row.TypeCode,
			TypeCaption:      row.TypeCaption,
			EstateCode:       row.EstateCode,
			Estate:           row.EstateName,
		})
	}
	return units
}

// cleanMaintenanceCaption strips the legacy placement prefix from a
// maintenance unit caption, leaving the part tenants recognize.
func cleanMaintenanceCaption(caption string) string {
	for _, noise := range maintenanceCaptionNoise {
		caption = strings.ReplaceAll(caption, noise, "")
	}
	return strings.TrimSpace(caption)
}
