package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS weather_reports (
		location      TEXT PRIMARY KEY,
		temperature_c DOUBLE PRECISION NOT NULL,
		condition     TEXT NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS stock_quotes (
		ticker     TEXT PRIMARY KEY,
		price_usd  DOUBLE PRECISION NOT NULL,
		change_pct DOUBLE PRECISION NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sports_scores (
		team           TEXT PRIMARY KEY,
		opponent       TEXT NOT NULL,
		team_score     INTEGER NOT NULL,
		opponent_score INTEGER NOT NULL,
		status         TEXT NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

var seed = []string{
	`INSERT INTO weather_reports (location, temperature_c, condition) VALUES
		('New York', 24, 'Partly cloudy'),
		('Paris', 19, 'Light rain'),
		('Tokyo', 27, 'Sunny')
	ON CONFLICT (location) DO NOTHING`,
	`INSERT INTO stock_quotes (ticker, price_usd, change_pct) VALUES
		('AAPL', 218.37, 1.9),
		('MSFT', 431.12, -0.4),
		('NVDA', 122.54, 3.1)
	ON CONFLICT (ticker) DO NOTHING`,
	`INSERT INTO sports_scores (team, opponent, team_score, opponent_score, status) VALUES
		('LAL', 'BOS', 102, 99, 'final'),
		('BOS', 'LAL', 99, 102, 'final'),
		('GSW', 'DEN', 88, 91, 'live')
	ON CONFLICT (team) DO NOTHING`,
}

// RunMigrations creates the lookup tables and seeds them with sample rows.
// Existing rows are left untouched.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	logrus.Info("Checking database schema...")

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range append(schema, seed...) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migrations: %w", err)
	}
	logrus.Info("Database schema is up to date")
	return nil
}
