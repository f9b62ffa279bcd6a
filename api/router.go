package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"abapscan/api/router/handlers"
	"abapscan/core"
	"abapscan/logger"
)

// NewRouter creates and configures the HTTP router for the scanning API.
// Routes are registered at the root, matching the wire contract of the
// remediation service.
func NewRouter(scanner *core.Scanner) http.Handler {
	router := chi.NewRouter()

	scanHandlers := handlers.NewScanHandlers(scanner)
	handlers.RegisterScanRoutes(router, scanHandlers)
	handlers.RegisterHealthRoutes(router, scanner.Registry())
	handlers.RegisterVersionRoutes(router)
	handlers.RegisterHistoryRoutes(router)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		logger.Error("ROUTER CATCH-ALL: Unhandled route: %s %s", r.Method, r.URL.Path)
		http.NotFound(w, r)
	})

	return router
}
