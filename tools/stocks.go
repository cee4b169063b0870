package tools

import (
	"context"
	"strings"

	"chat-agent/models"
)

const DefaultTicker = "AAPL"

type stockArgs struct {
	Ticker string `json:"ticker,omitempty" jsonschema_description:"Stock ticker symbol, e.g. MSFT. Use AAPL when the user names none."`
}

// StockTool reports a daily stock quote
type StockTool struct {
	source     Source
	descriptor models.ToolDescriptor
}

// NewStockTool creates the get_stock_quote tool
func NewStockTool(source Source) *StockTool {
	return &StockTool{
		source:     source,
		descriptor: describe("get_stock_quote", "Get today's price and daily change for a stock ticker", &stockArgs{}),
	}
}

// Descriptor returns the get_stock_quote declaration
func (t *StockTool) Descriptor() models.ToolDescriptor {
	return t.descriptor
}

// Execute looks up the quote for the ticker, AAPL when none is given
func (t *StockTool) Execute(ctx context.Context, args Arguments) (models.ToolResult, error) {
	ticker := strings.ToUpper(strings.TrimSpace(args.String("ticker")))
	if ticker == "" {
		ticker = DefaultTicker
	}

	quote, err := t.source.StockQuote(ctx, ticker)
	if err != nil {
		return nil, err
	}

	return models.ToolResult{
		"ticker":     quote.Ticker,
		"price_usd":  quote.PriceUSD,
		"change_pct": quote.ChangePct,
	}, nil
}
