package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"property-info-api/internal/domain"
	"property-info-api/internal/repository"
)

type fakePropertyRepo struct {
	row   *repository.PropertyRow
	units []repository.MaintenanceUnitRow
}

func (f *fakePropertyRepo) GetPropertyRow(ctx context.Context, propertyID string) (*repository.PropertyRow, error) {
	return f.row, nil
}

func (f *fakePropertyRepo) GetMaintenanceUnitRowsByEstateCode(ctx context.Context, estateCode string) ([]repository.MaintenanceUnitRow, error) {
	return f.units, nil
}

func (f *fakePropertyRepo) GetMaintenanceUnitRowsByPropertyID(ctx context.Context, rentalPropertyID string) ([]repository.MaintenanceUnitRow, error) {
	return f.units, nil
}

var _ repository.PropertyRepository = (*fakePropertyRepo)(nil)

func apartmentRow() *repository.PropertyRow {
	return &repository.PropertyRow{
		RentalPropertyID: "123-456-789",
		ObjectTypeCode:   "balgh",
		RentalTypeCode:   "KORTTID",
		RentalType:       "Korttidskontrakt",
		Address:          "Testgatan 1",
		Code:             "0123",
		Number:           "1101",
		PropertyType:     "3 rum och kök",
		Entrance:         "A",
		Floor:            "2",
		HasElevator:      true,
		Area:             72.5,
		EstateCode:       "01234",
		EstateName:       "Testhuset",
		BuildingCode:     "011",
		BuildingName:     "Hus A",
	}
}

func TestGetRentalPropertyInfoApartment(t *testing.T) {
	repo := &fakePropertyRepo{row: apartmentRow()}
	svc := NewPropertyService(repo, zap.NewNop())

	info, err := svc.GetRentalPropertyInfo(context.Background(), "123-456-789")
	require.NoError(t, err)

	assert.Equal(t, "123-456-789", info.ID)
	assert.Equal(t, domain.PropertyTypeApartment, info.Type)

	apartment, ok := info.Property.(*domain.ApartmentInfo)
	require.True(t, ok)
	assert.Equal(t, "Testgatan 1", apartment.Address)
	assert.True(t, apartment.HasElevator)
	assert.Equal(t, 72.5, apartment.Area)
}

func TestGetRentalPropertyInfoCommercial(t *testing.T) {
	row := apartmentRow()
	row.ObjectTypeCode = "balok"
	svc := NewPropertyService(&fakePropertyRepo{row: row}, zap.NewNop())

	info, err := svc.GetRentalPropertyInfo(context.Background(), "123-456-789")
	require.NoError(t, err)

	assert.Equal(t, domain.PropertyTypeCommercial, info.Type)
	_, ok := info.Property.(*domain.CommercialInfo)
	assert.True(t, ok)
}

func TestGetRentalPropertyInfoParkingSkipsMaintenanceUnits(t *testing.T) {
	row := apartmentRow()
	row.ObjectTypeCode = "babps"
	repo := &fakePropertyRepo{
		row:   row,
		units: []repository.MaintenanceUnitRow{{ID: "MU1"}},
	}
	svc := NewPropertyService(repo, zap.NewNop())

	info, err := svc.GetRentalPropertyInfo(context.Background(), "123-456-789")
	require.NoError(t, err)

	assert.Equal(t, domain.PropertyTypeParking, info.Type)
	assert.Nil(t, info.MaintenanceUnits)
}

func TestGetRentalPropertyInfoUnknownType(t *testing.T) {
	row := apartmentRow()
	row.ObjectTypeCode = "bahyr"
	svc := NewPropertyService(&fakePropertyRepo{row: row}, zap.NewNop())

	_, err := svc.GetRentalPropertyInfo(context.Background(), "123-456-789")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownPropertyType)
}

func TestGetRentalPropertyInfoNotFound(t *testing.T) {
	svc := NewPropertyService(&fakePropertyRepo{}, zap.NewNop())

	_, err := svc.GetRentalPropertyInfo(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetApartmentRentalPropertyInfoRejectsOtherTypes(t *testing.T) {
	row := apartmentRow()
	row.ObjectTypeCode = "balok"
	svc := NewPropertyService(&fakePropertyRepo{row: row}, zap.NewNop())

	_, err := svc.GetApartmentRentalPropertyInfo(context.Background(), "123-456-789")
	assert.ErrorIs(t, err, domain.ErrUnknownPropertyType)
}

func TestGetMaintenanceUnitsCleansCaptions(t *testing.T) {
	repo := &fakePropertyRepo{
		units: []repository.MaintenanceUnitRow{
			{ID: "MU1", Caption: "TVÄTTSTUGA Testgatan 1"},
			{ID: "MU2", Caption: "Miljöbod Gård 2"},
		},
	}
	svc := NewPropertyService(repo, zap.NewNop())

	units, err := svc.GetMaintenanceUnits(context.Background(), "123-456-789")
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "Testgatan 1", units[0].Caption)
	assert.Equal(t, "Gård 2", units[1].Caption)
}

func TestGetMaintenanceUnitsNilIsPreserved(t *testing.T) {
	svc := NewPropertyService(&fakePropertyRepo{}, zap.NewNop())

	units, err := svc.GetMaintenanceUnits(context.Background(), "123-456-789")
	require.NoError(t, err)
	assert.Nil(t, units)
}
