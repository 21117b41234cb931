package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	"registration-module/http/response"
	"registration-module/logger"
	"registration-module/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// SubmitForm creates a new registration submission with a PENDING
// payment status.
func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.Error(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	var req struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Branch      string `json:"branch"`
		Mobile      string `json:"mobile"`
		Hobbies     string `json:"hobbies"`
		Game        string `json:"game"`
		Participate bool   `json:"participate"`
		TxnID       string `json:"txnId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		response.Error(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Email == "" || !emailRegex.MatchString(req.Email) {
		response.Error(w, http.StatusBadRequest, "a valid email is required")
		return
	}
	if req.TxnID == "" {
		response.Error(w, http.StatusBadRequest, "txnId is required")
		return
	}

	sub := &models.Submission{
		Name:        req.Name,
		Email:       req.Email,
		Branch:      req.Branch,
		Mobile:      req.Mobile,
		Hobbies:     req.Hobbies,
		Game:        req.Game,
		Participate: req.Participate,
		TxnID:       req.TxnID,
		// Set initial payment status
		PaymentStatus: models.PaymentStatusPending,
	}

	id, err := h.Store.Insert(sub)
	if err != nil {
		logger.Error("Error saving submission: %v", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Success(w, http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Submission successful with ID: %d", id),
	})
}
