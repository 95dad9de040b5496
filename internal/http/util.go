package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"property-info-api/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain sentinels to status codes. Anything unmapped is
// an internal error; the detailed cause stays in the logs.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrParkingSpaceNotFound):
		writeJSON(w, http.StatusNotFound, Fail("not found"))
	case errors.Is(err, domain.ErrUnknownPropertyType):
		writeJSON(w, http.StatusInternalServerError, Fail("unknown rental property type"))
	default:
		writeJSON(w, http.StatusInternalServerError, Fail("internal error"))
	}
}

func readBodyJSON(r *http.Request, maxBytes int64, out any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes))
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}
