package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"registration-module/http/response"
	"registration-module/services"
)

// Pay initiates a gateway payment and returns the redirect URL for the
// payer's browser.
func (h *Handler) Pay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.Error(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	var req services.InitiatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	paymentURL, err := h.Payments.Initiate(req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, map[string]interface{}{
		"paymentUrl": paymentURL,
	})
}

// Callback receives the gateway's asynchronous server-to-server
// notification and reconciles it onto the stored submission.
func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		response.Error(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	var req struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	xVerify := r.Header.Get("x-verify")

	if err := h.Callbacks.Process(req.Response, xVerify); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, map[string]interface{}{
		"message": "Callback processed.",
	})
}

// CheckStatus answers the status poll for /check-status/:transactionId.
func (h *Handler) CheckStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		response.Error(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	txnID := strings.TrimPrefix(r.URL.Path, "/check-status/")
	status, err := h.Status.Check(txnID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, map[string]interface{}{
		"status": status.Status,
		"data":   status.Data,
	})
}
