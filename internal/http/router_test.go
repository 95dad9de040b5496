package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"property-info-api/internal/domain"
	"property-info-api/internal/repository"
	"property-info-api/internal/service"
)

type fakeMaterialsRepo struct {
	optionRows []repository.MaterialOptionRow
	inserted   []string
	active     []string
}

func (f *fakeMaterialsRepo) GetOptionRowsByRoomType(ctx context.Context, roomTypeID string) ([]repository.MaterialOptionRow, error) {
	return f.optionRows, nil
}

func (f *fakeMaterialsRepo) GetOptionRowsByOptionID(ctx context.Context, optionID string) ([]repository.MaterialOptionRow, error) {
	var out []repository.MaterialOptionRow
	for _, r := range f.optionRows {
		if r.OptionID == optionID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeMaterialsRepo) GetApartmentChoices(ctx context.Context, apartmentID string) ([]domain.ApartmentMaterialChoice, error) {
	return []domain.ApartmentMaterialChoice{{MaterialChoiceID: "C1", ApartmentID: apartmentID}}, nil
}

func (f *fakeMaterialsRepo) GetChoiceTreeRows(ctx context.Context, apartmentID string) ([]repository.ChoiceTreeRow, error) {
	return nil, nil
}

func (f *fakeMaterialsRepo) InsertChoices(ctx context.Context, apartmentID string, choices []domain.MaterialChoice, submittedAt time.Time) ([]string, error) {
	return f.inserted, nil
}

func (f *fakeMaterialsRepo) GetActiveChoiceIDs(ctx context.Context, apartmentID string) ([]string, error) {
	return f.active, nil
}

func (f *fakeMaterialsRepo) CancelChoices(ctx context.Context, choiceIDs []string, cancelledAt time.Time) error {
	return nil
}

func (f *fakeMaterialsRepo) GetApartmentChoiceStatuses(ctx context.Context) ([]domain.ApartmentChoiceStatus, error) {
	return []domain.ApartmentChoiceStatus{{ApartmentID: "A1", NumChoices: 3}}, nil
}

type fakePropertyRepo struct {
	row *repository.PropertyRow
}

func (f *fakePropertyRepo) GetPropertyRow(ctx context.Context, propertyID string) (*repository.PropertyRow, error) {
	return f.row, nil
}

func (f *fakePropertyRepo) GetMaintenanceUnitRowsByEstateCode(ctx context.Context, estateCode string) ([]repository.MaintenanceUnitRow, error) {
	return nil, nil
}

func (f *fakePropertyRepo) GetMaintenanceUnitRowsByPropertyID(ctx context.Context, rentalPropertyID string) ([]repository.MaintenanceUnitRow, error) {
	return nil, nil
}

type fakeParkingRepo struct {
	rows []repository.ParkingSpaceRow
	row  *repository.ParkingSpaceRow
}

func (f *fakeParkingRepo) GetVacantParkingSpaceRows(ctx context.Context) ([]repository.ParkingSpaceRow, error) {
	return f.rows, nil
}

func (f *fakeParkingRepo) GetRentalObjectRowByCode(ctx context.Context, rentalObjectCode string) (*repository.ParkingSpaceRow, error) {
	return f.row, nil
}

func (f *fakeParkingRepo) GetRentalObjectRowsByCodes(ctx context.Context, rentalObjectCodes []string) ([]repository.ParkingSpaceRow, error) {
	return f.rows, nil
}

func newTestRouter(materials *fakeMaterialsRepo, property *fakePropertyRepo, parking *fakeParkingRepo) *Router {
	log := zap.NewNop()

	router := NewRouter(log)
	router.RegisterRentalPropertyRoutes(
		NewMaterialsHandler(service.NewMaterialChoiceService(materials, log), log),
		NewPropertyHandler(service.NewPropertyService(property, log), log),
	)
	router.RegisterParkingRoutes(
		NewParkingHandler(service.NewParkingService(parking, log), nil, nil, log),
	)
	return router
}

func doRequest(t *testing.T, router *Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestMaterialOptionRoutes(t *testing.T) {
	materials := &fakeMaterialsRepo{
		optionRows: []repository.MaterialOptionRow{
			{GroupID: "G1", GroupRoomTypeID: "BADRUM", GroupName: "Golv", OptionID: "O1", Caption: "Koncept 1", Image: "a.jpg"},
		},
	}
	router := newTestRouter(materials, &fakePropertyRepo{}, &fakeParkingRepo{})

	rec := doRequest(t, router, http.MethodGet, "/room-types/BADRUM/material-option-groups", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Content []*domain.MaterialOptionGroup `json:"content"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Content, 1)
	assert.Equal(t, "G1", resp.Content[0].MaterialOptionGroupID)

	rec = doRequest(t, router, http.MethodGet, "/room-types/BADRUM/material-option-groups/G1/options/O1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/room-types/BADRUM/material-option-groups/G1/options/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSaveMaterialChoicesRoute(t *testing.T) {
	materials := &fakeMaterialsRepo{inserted: []string{"C1"}}
	router := newTestRouter(materials, &fakePropertyRepo{}, &fakeParkingRepo{})

	rec := doRequest(t, router, http.MethodPost, "/rentalproperties/A1/material-choices",
		`{"choices": [{"materialOptionId": "O1", "materialOptionGroupId": "G1", "roomTypeId": "BADRUM"}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Content []string `json:"content"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"C1"}, resp.Content)

	rec = doRequest(t, router, http.MethodPost, "/rentalproperties/A1/material-choices", `{"choices": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRentalPropertyRoutes(t *testing.T) {
	property := &fakePropertyRepo{
		row: &repository.PropertyRow{
			RentalPropertyID: "123-456-789",
			ObjectTypeCode:   "balgh",
			Address:          "Testgatan 1",
		},
	}
	router := newTestRouter(&fakeMaterialsRepo{}, property, &fakeParkingRepo{})

	rec := doRequest(t, router, http.MethodGet, "/rentalproperties/123-456-789", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/apartmentinfo/123-456-789", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRentalPropertyNotFound(t *testing.T) {
	router := newTestRouter(&fakeMaterialsRepo{}, &fakePropertyRepo{}, &fakeParkingRepo{})

	rec := doRequest(t, router, http.MethodGet, "/rentalproperties/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownPropertyTypeIsServerError(t *testing.T) {
	property := &fakePropertyRepo{
		row: &repository.PropertyRow{RentalPropertyID: "X", ObjectTypeCode: "bahyr"},
	}
	router := newTestRouter(&fakeMaterialsRepo{}, property, &fakeParkingRepo{})

	rec := doRequest(t, router, http.MethodGet, "/rentalproperties/X", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestVacantParkingSpacesRoute(t *testing.T) {
	parking := &fakeParkingRepo{
		rows: []repository.ParkingSpaceRow{
			{RentalObjectCode: "P1", AreaCaption: "12: GIDEONSBERG CENTRUM", RentsJSON: `[{"yearrent": 1200}]`},
		},
	}
	router := newTestRouter(&fakeMaterialsRepo{}, &fakePropertyRepo{}, parking)

	rec := doRequest(t, router, http.MethodGet, "/vacant-parkingspaces", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Content []domain.VacantParkingSpace `json:"content"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Content, 1)
	assert.Equal(t, "Distrikt Öst", resp.Content[0].DistrictCaption)
	assert.Equal(t, 100.0, resp.Content[0].MonthlyRent)
}

func TestVacantParkingSpacesExportRoute(t *testing.T) {
	parking := &fakeParkingRepo{
		rows: []repository.ParkingSpaceRow{{RentalObjectCode: "P1"}},
	}
	router := newTestRouter(&fakeMaterialsRepo{}, &fakePropertyRepo{}, parking)

	rec := doRequest(t, router, http.MethodGet, "/vacant-parkingspaces/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestRentalObjectRoutes(t *testing.T) {
	parking := &fakeParkingRepo{
		row: &repository.ParkingSpaceRow{RentalObjectCode: "P1", ContractID: "L1"},
	}
	router := newTestRouter(&fakeMaterialsRepo{}, &fakePropertyRepo{}, parking)

	rec := doRequest(t, router, http.MethodGet, "/rentalobjects/P1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Content domain.RentalObject `json:"content"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.RentalObjectStatusLeased, resp.Content.Status)

	rec = doRequest(t, router, http.MethodGet, "/rentalobjects", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type fakePublishedClient struct {
	listing *domain.Listing
}

func (f *fakePublishedClient) GetPublishedParkingSpace(ctx context.Context, parkingSpaceID string) (*domain.Listing, error) {
	if f.listing == nil || f.listing.RentalObjectCode != parkingSpaceID {
		return nil, domain.ErrParkingSpaceNotFound
	}
	return f.listing, nil
}

func TestPublishedParkingSpaceRoute(t *testing.T) {
	log := zap.NewNop()
	soap := &fakePublishedClient{
		listing: &domain.Listing{
			ID:               -1,
			RentalObjectCode: "123-456-00-0001",
			Address:          "Testgatan 4",
			MonthlyRent:      350,
			DistrictCaption:  "Centrum",
			PublishedFrom:    time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
			PublishedTo:      time.Date(2024, 5, 29, 0, 0, 0, 0, time.UTC),
			Status:           domain.ListingStatusActive,
			WaitingListType:  "Bilplats (extern)",
		},
	}

	router := NewRouter(log)
	router.RegisterParkingRoutes(
		NewParkingHandler(service.NewParkingService(&fakeParkingRepo{}, log), nil, soap, log),
	)

	rec := doRequest(t, router, http.MethodGet, "/publishedParkingSpaces/123-456-00-0001", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Content domain.Listing `json:"content"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, -1, resp.Content.ID)
	assert.Equal(t, "123-456-00-0001", resp.Content.RentalObjectCode)
	assert.Equal(t, domain.ListingStatusActive, resp.Content.Status)
	assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), resp.Content.PublishedFrom)
	assert.Equal(t, time.Date(2024, 5, 29, 0, 0, 0, 0, time.UTC), resp.Content.PublishedTo)

	rec = doRequest(t, router, http.MethodGet, "/publishedParkingSpaces/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnmatchedRouteIs404(t *testing.T) {
	router := newTestRouter(&fakeMaterialsRepo{}, &fakePropertyRepo{}, &fakeParkingRepo{})

	rec := doRequest(t, router, http.MethodGet, "/no-such-route", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not found", resp.Error)
}

func TestChoiceStatusesRoute(t *testing.T) {
	router := newTestRouter(&fakeMaterialsRepo{}, &fakePropertyRepo{}, &fakeParkingRepo{})

	rec := doRequest(t, router, http.MethodGet, "/rentalproperties/material-choice-statuses", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Content []domain.ApartmentChoiceStatus `json:"content"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Content, 1)
	assert.Equal(t, 3, resp.Content[0].NumChoices)
}
