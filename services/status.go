package services

import (
	"encoding/json"

	"registration-module/errors"
	"registration-module/logger"
	"registration-module/store"
)

// StatusService answers polling clients. Read-only; never mutates.
type StatusService struct {
	store store.Store
}

func NewStatusService(st store.Store) *StatusService {
	return &StatusService{store: st}
}

// PaymentStatus is the polled view of a submission's payment outcome.
type PaymentStatus struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// Check returns the current payment status for a transaction id.
func (s *StatusService) Check(txnID string) (*PaymentStatus, error) {
	if txnID == "" {
		return nil, errors.E(errors.Invalid, "Transaction ID is missing.")
	}

	sub, err := s.store.FindByTxnID(txnID)
	if err == store.ErrNotFound {
		return nil, errors.E(errors.NotFound, "Transaction ID not found.")
	}
	if err != nil {
		logger.Error("Error fetching status for txn %s: %v", txnID, err)
		return nil, errors.E(errors.Internal, "Error fetching payment status.", err)
	}

	return &PaymentStatus{
		Status: sub.Status(),
		Data:   sub.PaymentResponse,
	}, nil
}
