package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"property-info-api/internal/domain"
)

const publishedParkingEnvelope = `<s:Envelope xmlns:s="http://www.w3.org/2003/05/soap-envelope">
  <s:Body>
    <PublishedRentalObjectResult08352 xmlns="http://incit.xpand.eu/">
      <PublishedRentalObjects08352>
        <PublishedRentalObjectDataContract08352>
          <RentalObjectCode>123-456-00-0001</RentalObjectCode>
          <Address1>Testgatan 4</Address1>
          <MonthRent>350</MonthRent>
          <ObjectTypeCaption>Carport</ObjectTypeCaption>
          <ObjectTypeCode>CPORT</ObjectTypeCode>
          <RentalObjectTypeCaption>Standard hyresobjektstyp</RentalObjectTypeCaption>
          <RentalObjectTypeCode>STD</RentalObjectTypeCode>
          <FreeTable1Caption>Centrum</FreeTable1Caption>
          <FreeTable1Code>CTR</FreeTable1Code>
          <FreeTable3Caption>Kvarteret Testet</FreeTable3Caption>
          <FreeTable3Code>1401</FreeTable3Code>
          <WaitingListType>Bilplats (extern)</WaitingListType>
          <PublishedFrom>2024-05-15T00:00:00</PublishedFrom>
          <PublishedTo>2024-05-29T00:00:00</PublishedTo>
          <VacantFrom>2024-06-01T00:00:00</VacantFrom>
        </PublishedRentalObjectDataContract08352>
      </PublishedRentalObjects08352>
    </PublishedRentalObjectResult08352>
  </s:Body>
</s:Envelope>`

const emptyParkingEnvelope = `<s:Envelope xmlns:s="http://www.w3.org/2003/05/soap-envelope">
  <s:Body>
    <PublishedRentalObjectResult08352 xmlns="http://incit.xpand.eu/">
      <PublishedRentalObjects08352></PublishedRentalObjects08352>
    </PublishedRentalObjectResult08352>
  </s:Body>
</s:Envelope>`

func TestGetPublishedParkingSpace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "soapuser", user)
		assert.Equal(t, "soappass", pass)

		w.Header().Set("Content-Type", "application/soap+xml")
		_, _ = w.Write([]byte(publishedParkingEnvelope))
	}))
	defer server.Close()

	client := NewXpandSoapClient(server.URL, "soapuser", "soappass", "001", zap.NewNop())

	listing, err := client.GetPublishedParkingSpace(context.Background(), "123-456-00-0001")
	require.NoError(t, err)

	assert.Equal(t, -1, listing.ID)
	assert.Equal(t, "123-456-00-0001", listing.RentalObjectCode)
	assert.Equal(t, "Testgatan 4", listing.Address)
	assert.Equal(t, 350.0, listing.MonthlyRent)
	assert.Equal(t, "Centrum", listing.DistrictCaption)
	assert.Equal(t, "CTR", listing.DistrictCode)
	assert.Equal(t, "Kvarteret Testet", listing.BlockCaption)
	assert.Equal(t, "1401", listing.BlockCode)
	assert.Equal(t, "Carport", listing.ObjectTypeCaption)
	assert.Equal(t, "CPORT", listing.ObjectTypeCode)
	assert.Equal(t, "Standard hyresobjektstyp", listing.RentalObjectTypeCaption)
	assert.Equal(t, "STD", listing.RentalObjectTypeCode)
	assert.Equal(t, "Bilplats (extern)", listing.WaitingListType)
	assert.Equal(t, domain.ListingStatusActive, listing.Status)
	assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), listing.PublishedFrom)
	assert.Equal(t, time.Date(2024, 5, 29, 0, 0, 0, 0, time.UTC), listing.PublishedTo)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), listing.VacantFrom)
}

func TestGetPublishedParkingSpaceNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/soap+xml")
		_, _ = w.Write([]byte(emptyParkingEnvelope))
	}))
	defer server.Close()

	client := NewXpandSoapClient(server.URL, "soapuser", "soappass", "001", zap.NewNop())

	_, err := client.GetPublishedParkingSpace(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrParkingSpaceNotFound)
}

func TestParkingSpaceTypeFallback(t *testing.T) {
	assert.Equal(t, domain.ParkingSpaceTypeCarport, parkingSpaceType("CPORT"))
	assert.Equal(t, domain.ParkingSpaceTypeWithoutElectricity, parkingSpaceType("UNKNOWN"))
	assert.Equal(t, domain.ParkingSpaceApplicationInternal, parkingSpaceApplicationCategory("something else"))
}

func TestSplitStreetAddress(t *testing.T) {
	street, number := splitStreetAddress("Testgatan 12 B")
	assert.Equal(t, "Testgatan", street)
	assert.Equal(t, "12 B", number)

	street, number = splitStreetAddress("Gatan utan nummer")
	assert.Equal(t, "Gatan utan nummer", street)
	assert.Empty(t, number)
}
