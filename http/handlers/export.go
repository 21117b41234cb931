package handlers

import (
	"net/http"

	"registration-module/http/response"
	"registration-module/logger"
	"registration-module/services"
)

// ExportSubmissions streams all submissions as an Excel workbook.
func (h *Handler) ExportSubmissions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.Error(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="submissions.xlsx"`)

	if err := services.ExportSubmissions(h.Store, w); err != nil {
		// Headers may already be out; log and give up on the body
		logger.Error("Error exporting submissions: %v", err)
	}
}
