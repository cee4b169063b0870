package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"chat-agent/models"
)

// ErrNotFound is returned when no row matches a lookup
var ErrNotFound = errors.New("record not found")

// LookupStore serves tool lookups from PostgreSQL
type LookupStore struct {
	db *sql.DB
}

// NewLookupStore creates a store over db
func NewLookupStore(db *sql.DB) *LookupStore {
	return &LookupStore{db: db}
}

// Weather returns the stored report for location, matched case-insensitively
func (s *LookupStore) Weather(ctx context.Context, location string) (*models.WeatherReport, error) {
	var r models.WeatherReport
	err := s.db.QueryRowContext(ctx, `
		SELECT location, temperature_c, condition
		FROM weather_reports
		WHERE LOWER(location) = LOWER($1)
	`, location).Scan(&r.Location, &r.TemperatureC, &r.Condition)
	if err != nil {
		return nil, notFound(err, "weather report", location)
	}
	return &r, nil
}

// StockQuote returns the stored quote for ticker
func (s *LookupStore) StockQuote(ctx context.Context, ticker string) (*models.StockQuote, error) {
	var q models.StockQuote
	err := s.db.QueryRowContext(ctx, `
		SELECT ticker, price_usd, change_pct
		FROM stock_quotes
		WHERE ticker = UPPER($1)
	`, ticker).Scan(&q.Ticker, &q.PriceUSD, &q.ChangePct)
	if err != nil {
		return nil, notFound(err, "stock quote", ticker)
	}
	return &q, nil
}

// SportsScore returns the latest stored score for team
func (s *LookupStore) SportsScore(ctx context.Context, team string) (*models.SportsScore, error) {
	var sc models.SportsScore
	err := s.db.QueryRowContext(ctx, `
		SELECT team, opponent, team_score, opponent_score, status
		FROM sports_scores
		WHERE team = UPPER($1)
	`, team).Scan(&sc.Team, &sc.Opponent, &sc.TeamScore, &sc.OpponentScore, &sc.Status)
	if err != nil {
		return nil, notFound(err, "sports score", team)
	}
	return &sc, nil
}

func notFound(err error, what, key string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: no %s for %q", ErrNotFound, what, key)
	}
	return fmt.Errorf("error querying %s: %w", what, err)
}
