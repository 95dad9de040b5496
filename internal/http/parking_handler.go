package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"property-info-api/internal/domain"
	"property-info-api/internal/service"
)

// ParkingSpaceClient looks up a published parking space in the legacy
// REST facade.
type ParkingSpaceClient interface {
	GetParkingSpace(ctx context.Context, parkingSpaceID string) (*domain.ParkingSpace, error)
}

// PublishedParkingSpaceClient is the SOAP variant of the same lookup,
// returning the published listing instead of the raw space.
type PublishedParkingSpaceClient interface {
	GetPublishedParkingSpace(ctx context.Context, parkingSpaceID string) (*domain.Listing, error)
}

var (
	_ ParkingSpaceClient          = (*service.XpandClient)(nil)
	_ PublishedParkingSpaceClient = (*service.XpandSoapClient)(nil)
)

// ParkingHandler serves the parking space lookups and the vacant space
// listing.
type ParkingHandler struct {
	parking    *service.ParkingService
	restClient ParkingSpaceClient
	soapClient PublishedParkingSpaceClient
	logger     *zap.Logger
}

func NewParkingHandler(parking *service.ParkingService, restClient ParkingSpaceClient, soapClient PublishedParkingSpaceClient, logger *zap.Logger) *ParkingHandler {
	return &ParkingHandler{
		parking:    parking,
		restClient: restClient,
		soapClient: soapClient,
		logger:     logger,
	}
}

func (h *ParkingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	switch {
	case strings.HasPrefix(r.URL.Path, "/parkingspaces/"):
		segments := pathSegments(r.URL.Path, "/parkingspaces/")
		if len(segments) != 1 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.ParkingSpace(w, r, segments[0])

	case strings.HasPrefix(r.URL.Path, "/publishedParkingSpaces/"):
		segments := pathSegments(r.URL.Path, "/publishedParkingSpaces/")
		if len(segments) != 1 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.PublishedParkingSpace(w, r, segments[0])

	case r.URL.Path == "/vacant-parkingspaces":
		h.VacantParkingSpaces(w, r)

	case r.URL.Path == "/vacant-parkingspaces/export":
		h.ExportVacantParkingSpaces(w, r)

	case r.URL.Path == "/rentalobjects":
		h.RentalObjects(w, r)

	case strings.HasPrefix(r.URL.Path, "/rentalobjects/"):
		segments := pathSegments(r.URL.Path, "/rentalobjects/")
		if len(segments) != 1 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.RentalObject(w, r, segments[0])

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *ParkingHandler) ParkingSpace(w http.ResponseWriter, r *http.Request, parkingSpaceID string) {
	space, err := h.restClient.GetParkingSpace(r.Context(), parkingSpaceID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(space))
}

func (h *ParkingHandler) PublishedParkingSpace(w http.ResponseWriter, r *http.Request, parkingSpaceID string) {
	listing, err := h.soapClient.GetPublishedParkingSpace(r.Context(), parkingSpaceID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(listing))
}

func (h *ParkingHandler) VacantParkingSpaces(w http.ResponseWriter, r *http.Request) {
	spaces, err := h.parking.ListVacantParkingSpaces(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(spaces))
}

func (h *ParkingHandler) ExportVacantParkingSpaces(w http.ResponseWriter, r *http.Request) {
	spaces, err := h.parking.ListVacantParkingSpaces(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := GenerateVacantParkingSpacesExport(spaces)
	if err != nil {
		h.logger.Error("Failed to generate parking space export", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to generate export"))
		return
	}

	filename := fmt.Sprintf("vacant-parkingspaces-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(data)
}

func (h *ParkingHandler) RentalObject(w http.ResponseWriter, r *http.Request, rentalObjectCode string) {
	obj, err := h.parking.GetRentalObjectByCode(r.Context(), rentalObjectCode)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(obj))
}

func (h *ParkingHandler) RentalObjects(w http.ResponseWriter, r *http.Request) {
	codesParam := r.URL.Query().Get("codes")
	if codesParam == "" {
		writeJSON(w, http.StatusBadRequest, Fail("codes query parameter is required"))
		return
	}

	objects, err := h.parking.GetRentalObjectsByCodes(r.Context(), strings.Split(codesParam, ","))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(objects))
}
