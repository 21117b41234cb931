package http

import (
	"net/http"

	"registration-module/http/handlers"
	"registration-module/http/middleware"
)

// SetupRoutes registers the HTTP surface on mux.
func SetupRoutes(mux *http.ServeMux, h *handlers.Handler) {
	// Registration APIs
	mux.HandleFunc("/submit-form", middleware.EnableCORS(h.SubmitForm))

	// Payment APIs
	mux.HandleFunc("/pay", middleware.EnableCORS(h.Pay))
	mux.HandleFunc("/callback", middleware.EnableCORS(h.Callback))
	mux.HandleFunc("/check-status/", middleware.EnableCORS(h.CheckStatus))
	mux.HandleFunc("/redirect-url/", middleware.EnableCORS(h.RedirectURL))

	// Organizer APIs
	mux.HandleFunc("/export-submissions", middleware.EnableCORS(h.ExportSubmissions))
}
