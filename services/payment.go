package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"registration-module/config"
	"registration-module/errors"
	"registration-module/logger"
	"registration-module/models"
)

// PaymentService builds, signs and submits gateway payment requests.
type PaymentService struct {
	client *http.Client
}

// InitiatePaymentRequest represents payment initiation input
type InitiatePaymentRequest struct {
	Amount                float64 `json:"amount"`
	MobileNumber          string  `json:"mobileNumber"`
	MerchantTransactionID string  `json:"merchantTransactionId"`
}

// NewPaymentService creates a new PaymentService instance. The outbound
// gateway call carries an explicit bounded timeout; expiry is treated
// as initiation failure.
func NewPaymentService() *PaymentService {
	return &PaymentService{
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Initiate submits a signed payment request to the gateway and returns
// the redirect URL for the payer's browser. Gateway internals are never
// surfaced to the client; failures yield a generic message.
func (s *PaymentService) Initiate(req InitiatePaymentRequest) (string, error) {
	if req.MerchantTransactionID == "" {
		return "", errors.E(errors.Invalid, "merchantTransactionId is required")
	}
	if req.MobileNumber == "" {
		return "", errors.E(errors.Invalid, "mobileNumber is required")
	}
	if req.Amount <= 0 {
		return "", errors.E(errors.Invalid, "invalid amount: must be greater than 0")
	}

	cfg := config.AppConfig
	if !config.PaymentConfigured() {
		logger.Error("Payment gateway credentials not configured")
		return "", errors.E(errors.Internal, "Payment initiation failed.")
	}

	payload := models.GatewayPayload{
		MerchantID:            cfg.MerchantID,
		MerchantTransactionID: req.MerchantTransactionID,
		MerchantUserID:        fmt.Sprintf("MUID-%d", time.Now().UnixMilli()),
		Amount:                int64(math.Round(req.Amount * 100)), // amount in paise
		RedirectURL:           fmt.Sprintf("%s/redirect-url/%s", cfg.AppBaseURL, req.MerchantTransactionID),
		RedirectMode:          "POST",
		CallbackURL:           fmt.Sprintf("%s/callback", cfg.AppBaseURL),
		MobileNumber:          req.MobileNumber,
		PaymentInstrument:     models.PaymentInstrument{Type: "PAY_PAGE"},
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling gateway payload: %v", err)
		return "", errors.E(errors.Internal, "Payment initiation failed.", err)
	}

	base64Payload := base64.StdEncoding.EncodeToString(payloadJSON)
	xVerify := Sign(base64Payload, PayPath, cfg.SaltKey, cfg.SaltIndex)

	body, err := json.Marshal(models.PayRequest{Request: base64Payload})
	if err != nil {
		return "", errors.E(errors.Internal, "Payment initiation failed.", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, cfg.GatewayURL+PayPath, bytes.NewReader(body))
	if err != nil {
		logger.Error("Error building gateway request: %v", err)
		return "", errors.E(errors.Internal, "Payment initiation failed.", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-VERIFY", xVerify)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		logger.Error("Gateway request failed for txn %s: %v", req.MerchantTransactionID, err)
		return "", errors.E(errors.Internal, "Payment initiation failed.", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		logger.Error("Gateway returned %d for txn %s: %s", resp.StatusCode, req.MerchantTransactionID, string(respBody))
		return "", errors.E(errors.Internal, "Payment initiation failed.")
	}

	var payResp models.PayResponse
	if err := json.NewDecoder(resp.Body).Decode(&payResp); err != nil {
		logger.Error("Error decoding gateway response for txn %s: %v", req.MerchantTransactionID, err)
		return "", errors.E(errors.Internal, "Payment initiation failed.", err)
	}

	redirectURL := payResp.Data.InstrumentResponse.RedirectInfo.URL
	if redirectURL == "" {
		logger.Error("Gateway response missing redirect URL for txn %s", req.MerchantTransactionID)
		return "", errors.E(errors.Internal, "Payment initiation failed.")
	}

	PublishPaymentInitiated(req.MerchantTransactionID, req.Amount)

	return redirectURL, nil
}
