package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"property-info-api/internal/service"
)

// PropertyHandler serves the rental property info and maintenance unit
// routes.
type PropertyHandler struct {
	properties *service.PropertyService
	logger     *zap.Logger
}

func NewPropertyHandler(properties *service.PropertyService, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		properties: properties,
		logger:     logger,
	}
}

func (h *PropertyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	switch {
	case strings.HasPrefix(r.URL.Path, "/apartmentinfo/"):
		segments := pathSegments(r.URL.Path, "/apartmentinfo/")
		if len(segments) != 1 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.ApartmentInfo(w, r, segments[0])

	case strings.HasPrefix(r.URL.Path, "/rentalproperties/"):
		segments := pathSegments(r.URL.Path, "/rentalproperties/")
		switch {
		case len(segments) == 1:
			h.PropertyInfo(w, r, segments[0])
		case len(segments) == 2 && segments[1] == "maintenance-units":
			h.MaintenanceUnits(w, r, segments[0])
		default:
			w.WriteHeader(http.StatusNotFound)
		}

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *PropertyHandler) PropertyInfo(w http.ResponseWriter, r *http.Request, propertyID string) {
	info, err := h.properties.GetRentalPropertyInfo(r.Context(), propertyID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(info))
}

func (h *PropertyHandler) ApartmentInfo(w http.ResponseWriter, r *http.Request, propertyID string) {
	info, err := h.properties.GetApartmentRentalPropertyInfo(r.Context(), propertyID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(info))
}

func (h *PropertyHandler) MaintenanceUnits(w http.ResponseWriter, r *http.Request, propertyID string) {
	units, err := h.properties.GetMaintenanceUnits(r.Context(), propertyID)
	if err != nil {
		writeError(w, err)
		return
	}
	if units == nil {
		writeJSON(w, http.StatusNotFound, Fail("no maintenance units"))
		return
	}
	writeJSON(w, http.StatusOK, Ok(units))
}
