package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Router wraps the standard library mux. Handlers do their own method
// checks and id extraction, prefix routes end in a slash.
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	r := &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
	// The root pattern catches every request no registered route claims.
	r.mux.HandleFunc("/", r.notFound)
	return r
}

func (r *Router) notFound(w http.ResponseWriter, req *http.Request) {
	r.logger.Warn("no route matched",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
	)
	writeJSON(w, http.StatusNotFound, Fail("not found"))
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterRentalPropertyRoutes shares the /rentalproperties/ prefix
// between the materials and property handlers. Material and room type
// subresources go to the materials handler, everything else is property
// info.
func (r *Router) RegisterRentalPropertyRoutes(materials *MaterialsHandler, property *PropertyHandler) {
	r.Handle("/rentalproperties/", func(w http.ResponseWriter, req *http.Request) {
		switch {
		case req.URL.Path == "/rentalproperties/material-choice-statuses",
			strings.Contains(req.URL.Path, "/material-"),
			strings.HasSuffix(req.URL.Path, "/rooms-with-material-choices"),
			strings.HasSuffix(req.URL.Path, "/room-types"):
			materials.ServeHTTP(w, req)
		default:
			property.ServeHTTP(w, req)
		}
	})

	r.Handle("/room-types/", materials.ServeHTTP)
	r.Handle("/apartmentinfo/", property.ServeHTTP)
}

// RegisterParkingRoutes wires the parking space lookups, the vacant
// space listing and its export.
func (r *Router) RegisterParkingRoutes(parking *ParkingHandler) {
	r.Handle("/parkingspaces/", parking.ServeHTTP)
	r.Handle("/publishedParkingSpaces/", parking.ServeHTTP)
	r.Handle("/vacant-parkingspaces", parking.ServeHTTP)
	r.Handle("/vacant-parkingspaces/", parking.ServeHTTP)
	r.Handle("/rentalobjects", parking.ServeHTTP)
	r.Handle("/rentalobjects/", parking.ServeHTTP)
}

func (r *Router) RegisterHealthRoutes(health *HealthHandler) {
	r.Handle("/health", health.ServeHTTP)
}
