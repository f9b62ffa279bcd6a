package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"abapscan/rules"
	"abapscan/version"
)

// HealthResponse is the payload of the liveness probe.
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Rules   []int  `json:"rules"`
	Version string `json:"version"`
}

// RegisterHealthRoutes sets up the liveness probe, reporting the codes of
// the active rules and the application version.
func RegisterHealthRoutes(r chi.Router, registry *rules.Registry) {
	r.Get("/health", healthCheckHandler(registry))
}

// @Summary Liveness probe
// @Description Reports service health, the active rule codes and the application version.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func healthCheckHandler(registry *rules.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{
			OK:      true,
			Rules:   registry.Codes(),
			Version: version.AppVersion,
		})
	}
}
