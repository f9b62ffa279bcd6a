package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterScanRoutes sets up the remediation endpoints.
func RegisterScanRoutes(r chi.Router, h *ScanHandlers) {
	r.Post("/remediate", h.RemediateHandler)
	r.Post("/remediate-array", h.RemediateArrayHandler)
}
