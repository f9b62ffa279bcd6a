package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterHistoryRoutes sets up the scan history endpoints.
func RegisterHistoryRoutes(r chi.Router) {
	r.Get("/scans", ListScansHandler)
	r.Route("/scans/{scanID}", func(subRouter chi.Router) {
		subRouter.Get("/", GetScanHandler)
		subRouter.Get("/sarif", GetScanSarifHandler)
	})
}
