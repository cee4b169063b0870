package tools

import (
	"context"
	"strings"

	"chat-agent/models"
)

// Source supplies the records behind the lookup tools
type Source interface {
	Weather(ctx context.Context, location string) (*models.WeatherReport, error)
	StockQuote(ctx context.Context, ticker string) (*models.StockQuote, error)
	SportsScore(ctx context.Context, team string) (*models.SportsScore, error)
}

// MockSource returns fixed records for any query
type MockSource struct{}

// Weather returns a mock weather report
func (MockSource) Weather(_ context.Context, location string) (*models.WeatherReport, error) {
	return &models.WeatherReport{
		Location:     location,
		TemperatureC: 24,
		Condition:    "Partly cloudy",
	}, nil
}

// StockQuote returns a mock daily stock quote
func (MockSource) StockQuote(_ context.Context, ticker string) (*models.StockQuote, error) {
	return &models.StockQuote{
		Ticker:    strings.ToUpper(ticker),
		PriceUSD:  218.37,
		ChangePct: 1.9,
	}, nil
}

// SportsScore returns a mock final score
func (MockSource) SportsScore(_ context.Context, team string) (*models.SportsScore, error) {
	return &models.SportsScore{
		Team:          strings.ToUpper(team),
		Opponent:      "BOS",
		TeamScore:     102,
		OpponentScore: 99,
		Status:        "final",
	}, nil
}
