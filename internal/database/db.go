package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/mamora/signalbot/internal/model"
)

// DB records generated signals in PostgreSQL.
type DB struct {
	*sql.DB
}

// New opens a connection and ensures the signal history table exists.
func New(dsn string) (*DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("creating tables: %w", err)
	}
	return &DB{db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS signals (
			id SERIAL PRIMARY KEY,
			asset TEXT NOT NULL,
			verdict TEXT NOT NULL,
			timeframe TEXT NOT NULL,
			contract_period TEXT NOT NULL,
			entry_low TEXT NOT NULL,
			entry_high TEXT NOT NULL,
			target TEXT NOT NULL,
			stop_loss TEXT NOT NULL,
			confidence INT NOT NULL,
			reasoning TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)
	`)
	return err
}

// SaveSignal appends one signal to the history.
func (db *DB) SaveSignal(ctx context.Context, s model.TradingSignal) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO signals (
			asset, verdict, timeframe, contract_period,
			entry_low, entry_high, target, stop_loss,
			confidence, reasoning, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		s.Asset, string(s.Verdict), string(s.Timeframe), s.ContractPeriod,
		s.EntryLow, s.EntryHigh, s.Target, s.StopLoss,
		s.Confidence, s.Reasoning, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting signal: %w", err)
	}
	return nil
}
