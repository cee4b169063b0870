package tools

import (
	"context"
	"math"
	"strings"

	"chat-agent/models"
)

const (
	DefaultLocation = "New York"
	unitsMetric     = "metric"
	unitsImperial   = "imperial"
)

type weatherArgs struct {
	Location string `json:"location,omitempty" jsonschema_description:"City or place to report on, e.g. Paris. Use New York when the user names none."`
	Units    string `json:"units,omitempty" jsonschema:"enum=metric,enum=imperial" jsonschema_description:"Temperature units, metric (Celsius) by default"`
}

// WeatherTool reports current weather conditions
type WeatherTool struct {
	source     Source
	descriptor models.ToolDescriptor
}

// NewWeatherTool creates the get_weather tool
func NewWeatherTool(source Source) *WeatherTool {
	return &WeatherTool{
		source:     source,
		descriptor: describe("get_weather", "Get the current weather conditions for a location", &weatherArgs{}),
	}
}

// Descriptor returns the get_weather declaration
func (t *WeatherTool) Descriptor() models.ToolDescriptor {
	return t.descriptor
}

// Execute reports conditions for the location, in Fahrenheit when units is imperial
func (t *WeatherTool) Execute(ctx context.Context, args Arguments) (models.ToolResult, error) {
	location := strings.TrimSpace(args.String("location"))
	if location == "" {
		location = DefaultLocation
	}

	report, err := t.source.Weather(ctx, location)
	if err != nil {
		return nil, err
	}

	result := models.ToolResult{
		"location":  report.Location,
		"condition": report.Condition,
	}
	if args.String("units") == unitsImperial {
		result["temperature_f"] = math.Round((report.TemperatureC*9/5+32)*10) / 10
	} else {
		result["temperature_c"] = report.TemperatureC
	}
	return result, nil
}
