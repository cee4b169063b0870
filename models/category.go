package models

import "strings"

// Category is the coarse intent of a user message
type Category string

const (
	CategoryWeather Category = "weather"
	CategoryStocks  Category = "stocks"
	CategorySports  Category = "sports"
	CategoryGeneral Category = "general"
)

// Categories lists every category in prompt order
var Categories = []Category{CategoryWeather, CategoryStocks, CategorySports, CategoryGeneral}

// ParseCategory normalizes a classifier token and reports whether it is
// one of the known categories.
func ParseCategory(token string) (Category, bool) {
	normalized := strings.ToLower(strings.TrimSpace(token))
	normalized = strings.Trim(normalized, ".!\"'`*")
	for _, c := range Categories {
		if string(c) == normalized {
			return c, true
		}
	}
	return Category(normalized), false
}

// Label is the data label shown to the answer formatter
func (c Category) Label() string {
	switch c {
	case CategoryStocks:
		return "stock-market"
	default:
		return string(c)
	}
}

// ToolName returns the tool that usually serves the category, or "" for general
func (c Category) ToolName() string {
	switch c {
	case CategoryWeather:
		return "get_weather"
	case CategoryStocks:
		return "get_stock_quote"
	case CategorySports:
		return "get_sports_score"
	default:
		return ""
	}
}

// CategoryForTool returns the category a tool's data belongs to
func CategoryForTool(tool string) (Category, bool) {
	for _, c := range Categories {
		if tool != "" && c.ToolName() == tool {
			return c, true
		}
	}
	return "", false
}

// String returns the category word
func (c Category) String() string {
	return string(c)
}
