package store

import (
	"database/sql"
	"fmt"
	"time"

	"registration-module/models"
)

// Postgres implements Store on a *sql.DB opened by the db package.
type Postgres struct {
	db *sql.DB
}

// NewPostgres wraps an open database handle.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Insert(sub *models.Submission) (int64, error) {
	if sub.SubmittedAt.IsZero() {
		sub.SubmittedAt = time.Now().UTC()
	}
	if sub.PaymentStatus == "" {
		sub.PaymentStatus = models.PaymentStatusPending
	}

	var id int64
	err := p.db.QueryRow(
		`INSERT INTO submissions (name, email, branch, mobile, hobbies, game, participate, txn_id, submitted_at, payment_status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		sub.Name, sub.Email, sub.Branch, sub.Mobile, sub.Hobbies, sub.Game,
		sub.Participate, sub.TxnID, sub.SubmittedAt, sub.PaymentStatus,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error inserting submission: %w", err)
	}

	sub.ID = id
	return id, nil
}

func (p *Postgres) FindByTxnID(txnID string) (*models.Submission, error) {
	row := p.db.QueryRow(
		`SELECT id, name, email, branch, mobile, hobbies, game, participate, txn_id, submitted_at, payment_status, payment_response
		 FROM submissions WHERE txn_id = $1 ORDER BY id DESC LIMIT 1`, txnID)

	var sub models.Submission
	var status sql.NullString
	var payload []byte
	err := row.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Branch, &sub.Mobile,
		&sub.Hobbies, &sub.Game, &sub.Participate, &sub.TxnID, &sub.SubmittedAt,
		&status, &payload)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying submission: %w", err)
	}

	sub.PaymentStatus = status.String
	sub.PaymentResponse = payload
	return &sub, nil
}

func (p *Postgres) UpdatePaymentOutcome(id int64, status string, payload []byte) error {
	result, err := p.db.Exec(
		`UPDATE submissions SET payment_status = $1, payment_response = $2 WHERE id = $3`,
		status, payload, id)
	if err != nil {
		return fmt.Errorf("error updating submission: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking update result: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) List() ([]models.Submission, error) {
	rows, err := p.db.Query(
		`SELECT id, name, email, branch, mobile, hobbies, game, participate, txn_id, submitted_at, payment_status, payment_response
		 FROM submissions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing submissions: %w", err)
	}
	defer rows.Close()

	var subs []models.Submission
	for rows.Next() {
		var sub models.Submission
		var status sql.NullString
		var payload []byte
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Branch, &sub.Mobile,
			&sub.Hobbies, &sub.Game, &sub.Participate, &sub.TxnID, &sub.SubmittedAt,
			&status, &payload); err != nil {
			return nil, fmt.Errorf("error scanning submission: %w", err)
		}
		sub.PaymentStatus = status.String
		sub.PaymentResponse = payload
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
