package models

import "time"

// Payment status lifecycle of a submission
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusSuccess = "SUCCESS"
	PaymentStatusFailed  = "FAILED"
)

// Submission represents an event registration record
type Submission struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Branch          string    `json:"branch"`
	Mobile          string    `json:"mobile"`
	Hobbies         string    `json:"hobbies"`
	Game            string    `json:"game"`
	Participate     bool      `json:"participate"`
	TxnID           string    `json:"txnId"`
	SubmittedAt     time.Time `json:"submittedAt"`
	PaymentStatus   string    `json:"paymentStatus"`
	PaymentResponse []byte    `json:"paymentResponse,omitempty"`
}

// Status returns the payment status, defaulting to PENDING when unset.
func (s *Submission) Status() string {
	if s.PaymentStatus == "" {
		return PaymentStatusPending
	}
	return s.PaymentStatus
}
