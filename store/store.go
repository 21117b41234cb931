// Package store abstracts the submissions record store so handlers and
// services receive it as an explicit dependency instead of a shared
// database handle.
package store

import (
	"errors"

	"registration-module/models"
)

// ErrNotFound is returned when no submission matches a lookup.
var ErrNotFound = errors.New("submission not found")

// Store is the keyed record store for registration submissions.
type Store interface {
	// Insert persists a new submission and returns its assigned id.
	Insert(sub *models.Submission) (int64, error)
	// FindByTxnID returns the most recent submission carrying txnID,
	// or ErrNotFound.
	FindByTxnID(txnID string) (*models.Submission, error)
	// UpdatePaymentOutcome overwrites the payment status and raw
	// outcome payload of the submission identified by id.
	UpdatePaymentOutcome(id int64, status string, payload []byte) error
	// List returns all submissions, oldest first.
	List() ([]models.Submission, error)
}
