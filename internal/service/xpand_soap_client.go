package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"property-info-api/internal/domain"
)

// soapRequestTemplate is the GetPublishedParkings envelope. Placeholders
// are company code and rent id, in that order.
const soapRequestTemplate = `<soap:Envelope xmlns:soap="http://www.w3.org/2003/05/soap-envelope" xmlns:ser="http://incit.xpand.eu/service/" xmlns:inc="http://incit.xpand.eu/">
   <soap:Body>
      <ser:GetPublishedRentalObjectsRequest08352>
         <inc:CompanyCode>%s</inc:CompanyCode>
         <inc:IgnoreImageUrls>true</inc:IgnoreImageUrls>
         <inc:RentId>%s</inc:RentId>
      </ser:GetPublishedRentalObjectsRequest08352>
   </soap:Body>
</soap:Envelope>`

// soapEnvelope mirrors the response envelope. Element names match by
// local name, the namespace prefixes in the payload do not matter.
type soapEnvelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    struct {
		Result struct {
			Objects struct {
				Contracts []publishedRentalObject `xml:"PublishedRentalObjectDataContract08352"`
			} `xml:"PublishedRentalObjects08352"`
		} `xml:"PublishedRentalObjectResult08352"`
	} `xml:"Body"`
}

type publishedRentalObject struct {
	RentalObjectCode        string  `xml:"RentalObjectCode"`
	Address1                string  `xml:"Address1"`
	MonthRent               float64 `xml:"MonthRent"`
	ObjectTypeCaption       string  `xml:"ObjectTypeCaption"`
	ObjectTypeCode          string  `xml:"ObjectTypeCode"`
	RentalObjectTypeCaption string  `xml:"RentalObjectTypeCaption"`
	RentalObjectTypeCode    string  `xml:"RentalObjectTypeCode"`
	FreeTable1Caption       string  `xml:"FreeTable1Caption"`
	FreeTable1Code          string  `xml:"FreeTable1Code"`
	FreeTable3Caption       string  `xml:"FreeTable3Caption"`
	FreeTable3Code          string  `xml:"FreeTable3Code"`
	WaitingListType         string  `xml:"WaitingListType"`
	PublishedFrom           string  `xml:"PublishedFrom"`
	PublishedTo             string  `xml:"PublishedTo"`
	VacantFrom              string  `xml:"VacantFrom"`
}

// XpandSoapClient fetches published parking spaces from the legacy SOAP
// service.
type XpandSoapClient struct {
	httpClient  *resty.Client
	companyCode string
	logger      *zap.Logger
}

func NewXpandSoapClient(url, username, password, companyCode string, logger *zap.Logger) *XpandSoapClient {
	client := resty.New().
		SetBaseURL(url).
		SetTimeout(30 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/soap+xml;charset=UTF-8;").
		SetHeader("User-Agent", "property-info-api").
		SetBasicAuth(username, password)

	return &XpandSoapClient{
		httpClient:  client,
		companyCode: companyCode,
		logger:      logger,
	}
}

// GetPublishedParkingSpace looks up one published parking space by rent
// id and returns it as an active listing. The service reports an unknown
// id as an empty result list, which maps to
// domain.ErrParkingSpaceNotFound.
func (c *XpandSoapClient) GetPublishedParkingSpace(ctx context.Context, parkingSpaceID string) (*domain.Listing, error) {
	body := fmt.Sprintf(soapRequestTemplate, c.companyCode, parkingSpaceID)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		Post("")
	if err != nil {
		c.logger.Error("SOAP call failed",
			zap.String("parking_space_id", parkingSpaceID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to call parking SOAP service: %w", err)
	}
	if resp.IsError() {
		c.logger.Error("SOAP service returned error status",
			zap.String("parking_space_id", parkingSpaceID),
			zap.Int("status_code", resp.StatusCode()),
		)
		return nil, fmt.Errorf("parking SOAP service returned status %d", resp.StatusCode())
	}

	var envelope soapEnvelope
	if err := xml.Unmarshal(resp.Body(), &envelope); err != nil {
		c.logger.Error("Failed to parse SOAP response",
			zap.String("parking_space_id", parkingSpaceID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to parse SOAP response: %w", err)
	}

	contracts := envelope.Body.Result.Objects.Contracts
	if len(contracts) == 0 {
		return nil, domain.ErrParkingSpaceNotFound
	}

	// Listings never carry a database id, the SOAP service identifies
	// them by rental object code alone.
	published := contracts[0]
	return &domain.Listing{
		ID:                      -1,
		RentalObjectCode:        published.RentalObjectCode,
		Address:                 published.Address1,
		MonthlyRent:             published.MonthRent,
		DistrictCaption:         published.FreeTable1Caption,
		DistrictCode:            published.FreeTable1Code,
		BlockCaption:            published.FreeTable3Caption,
		BlockCode:               published.FreeTable3Code,
		ObjectTypeCaption:       published.ObjectTypeCaption,
		ObjectTypeCode:          published.ObjectTypeCode,
		RentalObjectTypeCaption: published.RentalObjectTypeCaption,
		RentalObjectTypeCode:    published.RentalObjectTypeCode,
		PublishedFrom:           parseXpandTime(published.PublishedFrom),
		PublishedTo:             parseXpandTime(published.PublishedTo),
		VacantFrom:              parseXpandTime(published.VacantFrom),
		Status:                  domain.ListingStatusActive,
		WaitingListType:         published.WaitingListType,
	}, nil
}

// parseXpandTime handles the two timestamp layouts the legacy services
// emit. Unparseable values come back as the zero time.
func parseXpandTime(value string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
