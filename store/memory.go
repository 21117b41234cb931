package store

import (
	"sync"
	"time"

	"registration-module/models"
)

// Memory is an in-memory Store used in tests and local development.
type Memory struct {
	mu     sync.Mutex
	nextID int64
	subs   []models.Submission
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{nextID: 1}
}

func (m *Memory) Insert(sub *models.Submission) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sub.SubmittedAt.IsZero() {
		sub.SubmittedAt = time.Now().UTC()
	}
	if sub.PaymentStatus == "" {
		sub.PaymentStatus = models.PaymentStatusPending
	}

	sub.ID = m.nextID
	m.nextID++
	m.subs = append(m.subs, *sub)
	return sub.ID, nil
}

func (m *Memory) FindByTxnID(txnID string) (*models.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Most recent record wins, matching the Postgres ORDER BY id DESC
	for i := len(m.subs) - 1; i >= 0; i-- {
		if m.subs[i].TxnID == txnID {
			sub := m.subs[i]
			return &sub, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UpdatePaymentOutcome(id int64, status string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.subs {
		if m.subs[i].ID == id {
			m.subs[i].PaymentStatus = status
			m.subs[i].PaymentResponse = payload
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) List() ([]models.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	subs := make([]models.Submission, len(m.subs))
	copy(subs, m.subs)
	return subs, nil
}
