package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"property-info-api/internal/domain"
)

// publishedParkingResponse is the REST shape of one published parking
// space. The postal address arrives as a combined street-and-number
// string.
type publishedParkingResponse struct {
	RentalObjectCode string  `json:"rentalObjectCode"`
	PostalAddress    string  `json:"postalAddress"`
	ZipCode          string  `json:"zipCode"`
	City             string  `json:"city"`
	VacantFrom       string  `json:"vacantFrom"`
	MonthRent        float64 `json:"monthRent"`
	ObjectTypeCode   string  `json:"objectTypeCode"`
	WaitingListType  string  `json:"waitingListType"`
}

// XpandClient fetches published parking spaces from the legacy system's
// REST facade.
type XpandClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

func NewXpandClient(baseURL string, logger *zap.Logger) *XpandClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Accept", "application/json")

	return &XpandClient{httpClient: client, logger: logger}
}

// GetParkingSpace looks up one published parking space by rent id.
// Returns domain.ErrParkingSpaceNotFound on an upstream 404.
func (c *XpandClient) GetParkingSpace(ctx context.Context, parkingSpaceID string) (*domain.ParkingSpace, error) {
	var response publishedParkingResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&response).
		Get("/publishedrentalobjects/parkings/" + parkingSpaceID)
	if err != nil {
		c.logger.Error("Parking lookup failed",
			zap.String("parking_space_id", parkingSpaceID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to call parking service: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, domain.ErrParkingSpaceNotFound
	}
	if resp.IsError() {
		c.logger.Error("Parking service returned error status",
			zap.String("parking_space_id", parkingSpaceID),
			zap.Int("status_code", resp.StatusCode()),
		)
		return nil, fmt.Errorf("parking service returned status %d", resp.StatusCode())
	}

	street, number := splitStreetAddress(response.PostalAddress)
	return &domain.ParkingSpace{
		ParkingSpaceID: response.RentalObjectCode,
		Address: domain.ParkingSpaceAddress{
			Street:     street,
			Number:     number,
			PostalCode: response.ZipCode,
			City:       response.City,
		},
		MonthlyRent:         response.MonthRent,
		VacantFrom:          parseXpandTime(response.VacantFrom),
		Type:                parkingSpaceType(response.ObjectTypeCode),
		ApplicationCategory: parkingSpaceApplicationCategory(response.WaitingListType),
	}, nil
}
