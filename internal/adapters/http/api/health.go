// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/skypath/skypath/internal/domain/model"
	"github.com/skypath/skypath/pkg/metrics"
)

// healthResponse mirrors the /health payload.
type healthResponse struct {
	Status   string      `json:"status"`
	Airports int         `json:"airports"`
	Flights  int         `json:"flights"`
	Stats    model.Stats `json:"stats"`
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	deps Dependencies
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(deps Dependencies) *HealthHandler {
	return &HealthHandler{deps: deps}
}

// HandleHealth handles GET /health requests with the loaded model sizes
// and the normalization counters gathered at startup.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	airports, flights, stats := h.deps.Snapshot(r.Context())
	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Airports: airports,
		Flights:  flights,
		Stats:    stats,
	})
}

// metricsHandler serves the custom Prometheus registry.
func (s *Server) metricsHandler() http.HandlerFunc {
	return promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}).ServeHTTP
}
