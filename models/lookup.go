package models

// WeatherReport is a current-conditions record for a location
type WeatherReport struct {
	Location     string  `json:"location"`
	TemperatureC float64 `json:"temperature_c"`
	Condition    string  `json:"condition"`
}

// StockQuote is a daily quote for a ticker
type StockQuote struct {
	Ticker    string  `json:"ticker"`
	PriceUSD  float64 `json:"price_usd"`
	ChangePct float64 `json:"change_pct"`
}

// SportsScore is the latest game score for a team
type SportsScore struct {
	Team          string `json:"team"`
	Opponent      string `json:"opponent"`
	TeamScore     int    `json:"team_score"`
	OpponentScore int    `json:"opponent_score"`
	Status        string `json:"status"` // scheduled, live, final
}
