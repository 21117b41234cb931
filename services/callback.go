package services

import (
	"encoding/base64"
	"encoding/json"

	"registration-module/config"
	"registration-module/errors"
	"registration-module/logger"
	"registration-module/models"
	"registration-module/store"
)

// CallbackService verifies gateway notifications and reconciles their
// outcome onto the matching submission.
type CallbackService struct {
	store  store.Store
	onPaid func(sub *models.Submission)
}

// NewCallbackService creates a CallbackService over the given store.
// onPaid, if non-nil, runs after a submission is reconciled to SUCCESS
// (confirmation email); it must not affect the callback response.
func NewCallbackService(st store.Store, onPaid func(sub *models.Submission)) *CallbackService {
	return &CallbackService{store: st, onPaid: onPaid}
}

// MapOutcomeCode maps a gateway outcome code onto the submission
// lifecycle. The mapping is closed and fail-closed: only
// PAYMENT_SUCCESS succeeds, every other code (unknown and empty
// included) fails.
func MapOutcomeCode(code string) string {
	if code == "PAYMENT_SUCCESS" {
		return models.PaymentStatusSuccess
	}
	return models.PaymentStatusFailed
}

// Process handles a raw gateway notification: authenticate the payload,
// then decode it, then reconcile. The signature check happens before
// any decoding; a rejected callback never touches the store.
//
// Replay resistance is inherited from the gateway's transaction-id
// uniqueness guarantees; no nonce or timestamp is consulted.
func (s *CallbackService) Process(base64Payload, signature string) error {
	cfg := config.AppConfig

	if !VerifySignature(base64Payload, signature, cfg.SaltKey, cfg.SaltIndex) {
		logger.Error("Callback signature verification failed")
		return errors.E(errors.Unauthorized, "Signature verification failed.")
	}

	// A decode failure after a valid signature is a gateway contract
	// violation, not a malicious caller: server error, never retried.
	decoded, err := base64.StdEncoding.DecodeString(base64Payload)
	if err != nil {
		logger.Error("Error decoding verified callback payload: %v", err)
		return errors.E(errors.Internal, "Error processing callback.", err)
	}

	var outcome models.CallbackOutcome
	if err := json.Unmarshal(decoded, &outcome); err != nil {
		logger.Error("Error parsing verified callback payload: %v", err)
		return errors.E(errors.Internal, "Error processing callback.", err)
	}
	outcome.Raw = decoded

	return s.Reconcile(&outcome)
}

// Reconcile maps a verified outcome onto the matching pending
// submission. The update is a pure overwrite of status and payload, so
// redelivery of the same outcome is harmless; a second callback with a
// conflicting outcome is rejected rather than silently overwriting.
func (s *CallbackService) Reconcile(outcome *models.CallbackOutcome) error {
	sub, err := s.store.FindByTxnID(outcome.MerchantTransactionID)
	if err == store.ErrNotFound {
		return errors.E(errors.NotFound, "Transaction ID not found.")
	}
	if err != nil {
		logger.Error("Error looking up txn %s: %v", outcome.MerchantTransactionID, err)
		return errors.E(errors.Internal, "Error processing callback.", err)
	}

	status := MapOutcomeCode(outcome.Code)

	if current := sub.Status(); current != models.PaymentStatusPending && current != status {
		logger.Warn("Conflicting callback for txn %s: recorded %s, received %s",
			outcome.MerchantTransactionID, current, status)
		return errors.E(errors.Conflict, "Transaction already reconciled.")
	}

	if err := s.store.UpdatePaymentOutcome(sub.ID, status, outcome.Raw); err != nil {
		logger.Error("Error updating txn %s: %v", outcome.MerchantTransactionID, err)
		return errors.E(errors.Internal, "Error processing callback.", err)
	}

	logger.Info("Reconciled txn %s to %s (code %s)", outcome.MerchantTransactionID, status, outcome.Code)
	PublishPaymentOutcome(outcome.MerchantTransactionID, status, outcome.Code)

	if status == models.PaymentStatusSuccess && s.onPaid != nil {
		sub.PaymentStatus = status
		sub.PaymentResponse = outcome.Raw
		go s.onPaid(sub)
	}

	return nil
}
