package db

import (
	"database/sql"
	"fmt"

	"registration-module/config"

	_ "github.com/lib/pq"
)

// InitDB opens the Postgres connection and bootstraps the schema.
// A store that cannot be reached at startup is fatal for the process.
func InitDB() (*sql.DB, error) {
	connStr := config.GetDBConnString()

	database, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Test the connection
	if err := database.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := createTables(database); err != nil {
		return nil, fmt.Errorf("error creating tables: %w", err)
	}

	return database, nil
}

func createTables(database *sql.DB) error {
	submissionTable := `
	CREATE TABLE IF NOT EXISTS submissions (
		id SERIAL PRIMARY KEY,
		name TEXT,
		email TEXT,
		branch TEXT,
		mobile TEXT,
		hobbies TEXT,
		game TEXT,
		participate BOOLEAN DEFAULT FALSE,
		txn_id TEXT,
		submitted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		payment_status TEXT DEFAULT 'PENDING',
		payment_response JSONB
	);`

	if _, err := database.Exec(submissionTable); err != nil {
		return fmt.Errorf("error creating submissions table: %w", err)
	}

	// Reconciliation and status lookups are keyed by transaction id
	txnIndex := `CREATE INDEX IF NOT EXISTS idx_submissions_txn_id ON submissions (txn_id);`
	if _, err := database.Exec(txnIndex); err != nil {
		return fmt.Errorf("error creating txn_id index: %w", err)
	}

	return nil
}
