package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"property-info-api/internal/domain"
)

func TestGetParkingSpace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/publishedrentalobjects/parkings/123-456-00-0001", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"rentalObjectCode": "123-456-00-0001",
			"postalAddress": "Testgatan 4",
			"zipCode": "72213",
			"city": "Västerås",
			"vacantFrom": "2024-06-01T00:00:00",
			"monthRent": 350,
			"objectTypeCode": "PPLMEL",
			"waitingListType": "Bilplats (intern)"
		}`))
	}))
	defer server.Close()

	client := NewXpandClient(server.URL, zap.NewNop())

	space, err := client.GetParkingSpace(context.Background(), "123-456-00-0001")
	require.NoError(t, err)

	assert.Equal(t, "123-456-00-0001", space.ParkingSpaceID)
	assert.Equal(t, "Testgatan", space.Address.Street)
	assert.Equal(t, "4", space.Address.Number)
	assert.Equal(t, "72213", space.Address.PostalCode)
	assert.Equal(t, "Västerås", space.Address.City)
	assert.Equal(t, domain.ParkingSpaceTypeWithElectricity, space.Type)
	assert.Equal(t, domain.ParkingSpaceApplicationInternal, space.ApplicationCategory)
}

func TestGetParkingSpaceNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewXpandClient(server.URL, zap.NewNop())

	_, err := client.GetParkingSpace(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrParkingSpaceNotFound)
}
