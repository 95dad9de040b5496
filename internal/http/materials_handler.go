package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"property-info-api/internal/domain"
	"property-info-api/internal/service"
)

// MaterialsHandler serves the material option and material choice routes.
type MaterialsHandler struct {
	materials *service.MaterialChoiceService
	logger    *zap.Logger
}

func NewMaterialsHandler(materials *service.MaterialChoiceService, logger *zap.Logger) *MaterialsHandler {
	return &MaterialsHandler{
		materials: materials,
		logger:    logger,
	}
}

// saveChoicesRequest is the POST body for submitting material choices.
type saveChoicesRequest struct {
	Choices []domain.MaterialChoice `json:"choices"`
}

func (h *MaterialsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/rentalproperties/material-choice-statuses" && r.Method == http.MethodGet:
		h.ChoiceStatuses(w, r)

	case strings.HasPrefix(r.URL.Path, "/rentalproperties/"):
		h.serveRentalProperty(w, r)

	case strings.HasPrefix(r.URL.Path, "/room-types/"):
		h.serveRoomType(w, r)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// serveRentalProperty dispatches /rentalproperties/{id}/<subresource>.
func (h *MaterialsHandler) serveRentalProperty(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.URL.Path, "/rentalproperties/")
	if len(segments) < 2 {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	apartmentID := segments[0]

	switch {
	case segments[1] == "material-options" && len(segments) == 2 && r.Method == http.MethodGet:
		h.RoomTypesWithOptions(w, r, apartmentID)
	case segments[1] == "material-options" && len(segments) == 3 && segments[2] == "details" && r.Method == http.MethodGet:
		h.OptionDetails(w, r)
	case segments[1] == "material-choices" && r.Method == http.MethodGet:
		h.ApartmentChoices(w, r, apartmentID)
	case segments[1] == "material-choices" && r.Method == http.MethodPost:
		h.SaveChoices(w, r, apartmentID)
	case segments[1] == "rooms-with-material-choices" && r.Method == http.MethodGet:
		h.RoomsWithChoices(w, r, apartmentID)
	case segments[1] == "room-types" && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, Ok(h.materials.RoomTypes(apartmentID)))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// serveRoomType dispatches /room-types/{roomTypeId}/material-option-groups...
func (h *MaterialsHandler) serveRoomType(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	segments := pathSegments(r.URL.Path, "/room-types/")
	if len(segments) < 2 || segments[1] != "material-option-groups" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	roomTypeID := segments[0]

	switch len(segments) {
	case 2:
		h.OptionGroups(w, r, roomTypeID)
	case 3:
		h.OptionGroup(w, r, roomTypeID, segments[2])
	case 5:
		if segments[3] != "options" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.Option(w, r, segments[4])
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *MaterialsHandler) RoomTypesWithOptions(w http.ResponseWriter, r *http.Request, apartmentID string) {
	roomTypes, err := h.materials.GetRoomTypesWithMaterialOptions(r.Context(), apartmentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(roomTypes))
}

func (h *MaterialsHandler) OptionDetails(w http.ResponseWriter, r *http.Request) {
	optionID := r.URL.Query().Get("materialOptionId")
	if optionID == "" {
		writeJSON(w, http.StatusBadRequest, Fail("materialOptionId is required"))
		return
	}

	option, err := h.materials.GetMaterialOption(r.Context(), optionID)
	if err != nil {
		writeError(w, err)
		return
	}
	if option == nil {
		writeJSON(w, http.StatusNotFound, Fail("not found"))
		return
	}
	writeJSON(w, http.StatusOK, Ok(option))
}

func (h *MaterialsHandler) ApartmentChoices(w http.ResponseWriter, r *http.Request, apartmentID string) {
	choices, err := h.materials.GetApartmentChoices(r.Context(), apartmentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(choices))
}

func (h *MaterialsHandler) RoomsWithChoices(w http.ResponseWriter, r *http.Request, apartmentID string) {
	roomTypes, err := h.materials.GetRoomsWithMaterialChoices(r.Context(), apartmentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(roomTypes))
}

func (h *MaterialsHandler) SaveChoices(w http.ResponseWriter, r *http.Request, apartmentID string) {
	var req saveChoicesRequest
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	if len(req.Choices) == 0 {
		writeJSON(w, http.StatusBadRequest, Fail("choices are required"))
		return
	}

	ids, err := h.materials.SaveMaterialChoices(r.Context(), apartmentID, req.Choices)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, Ok(ids))
}

func (h *MaterialsHandler) OptionGroups(w http.ResponseWriter, r *http.Request, roomTypeID string) {
	groups, err := h.materials.GetMaterialOptionGroupsByRoomType(r.Context(), roomTypeID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(groups))
}

func (h *MaterialsHandler) OptionGroup(w http.ResponseWriter, r *http.Request, roomTypeID, groupID string) {
	group, err := h.materials.GetMaterialOptionGroup(r.Context(), roomTypeID, groupID)
	if err != nil {
		writeError(w, err)
		return
	}
	if group == nil {
		writeJSON(w, http.StatusNotFound, Fail("not found"))
		return
	}
	writeJSON(w, http.StatusOK, Ok(group))
}

func (h *MaterialsHandler) Option(w http.ResponseWriter, r *http.Request, optionID string) {
	option, err := h.materials.GetMaterialOption(r.Context(), optionID)
	if err != nil {
		writeError(w, err)
		return
	}
	if option == nil {
		writeJSON(w, http.StatusNotFound, Fail("not found"))
		return
	}
	writeJSON(w, http.StatusOK, Ok(option))
}

func (h *MaterialsHandler) ChoiceStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.materials.GetApartmentChoiceStatuses(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(statuses))
}

// pathSegments strips the route prefix and splits the remainder.
func pathSegments(path, prefix string) []string {
	rest := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if rest == "" {
		return nil
	}
	return strings.Split(rest, "/")
}
