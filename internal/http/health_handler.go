package httpapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"property-info-api/internal/store"
)

const (
	healthCacheKey = "property-info-api:health"
	healthCacheTTL = 10 * time.Second
)

// healthStatus is the cached probe result.
type healthStatus struct {
	Status      string `json:"status"`
	MaterialsDB string `json:"materialsDb"`
	XpandDB     string `json:"xpandDb"`
}

// HealthHandler pings both databases and caches the outcome in redis so
// load balancer probes don't hammer the pools.
type HealthHandler struct {
	materialsDB *sql.DB
	xpandDB     *sql.DB
	kv          store.KV
	logger      *zap.Logger
}

func NewHealthHandler(materialsDB, xpandDB *sql.DB, kv store.KV, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		materialsDB: materialsDB,
		xpandDB:     xpandDB,
		kv:          kv,
		logger:      logger,
	}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	status := h.probe(r.Context())

	code := http.StatusOK
	if status.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, status)
}

func (h *HealthHandler) probe(ctx context.Context) healthStatus {
	if cached, err := h.kv.Get(ctx, healthCacheKey); err == nil {
		var status healthStatus
		if err := json.Unmarshal([]byte(cached), &status); err == nil {
			return status
		}
	}

	status := healthStatus{
		Status:      "ok",
		MaterialsDB: pingStatus(ctx, h.materialsDB),
		XpandDB:     pingStatus(ctx, h.xpandDB),
	}
	if status.MaterialsDB != "ok" || status.XpandDB != "ok" {
		status.Status = "degraded"
	}

	if encoded, err := json.Marshal(status); err == nil {
		if err := h.kv.Set(ctx, healthCacheKey, string(encoded), healthCacheTTL); err != nil {
			h.logger.Warn("Failed to cache health status", zap.Error(err))
		}
	}
	return status
}

func pingStatus(ctx context.Context, db *sql.DB) string {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return err.Error()
	}
	return "ok"
}
