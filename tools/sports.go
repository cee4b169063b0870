package tools

import (
	"context"
	"strings"

	"chat-agent/models"
)

const DefaultTeam = "LAL"

type sportsArgs struct {
	Team string `json:"team,omitempty" jsonschema_description:"Team abbreviation, e.g. BOS. Use LAL when the user names none."`
}

// SportsTool reports the latest score for a team
type SportsTool struct {
	source     Source
	descriptor models.ToolDescriptor
}

// NewSportsTool creates the get_sports_score tool
func NewSportsTool(source Source) *SportsTool {
	return &SportsTool{
		source:     source,
		descriptor: describe("get_sports_score", "Get the latest game score for a sports team", &sportsArgs{}),
	}
}

// Descriptor returns the get_sports_score declaration
func (t *SportsTool) Descriptor() models.ToolDescriptor {
	return t.descriptor
}

// Execute looks up the latest score for the team, LAL when none is given
func (t *SportsTool) Execute(ctx context.Context, args Arguments) (models.ToolResult, error) {
	team := strings.ToUpper(strings.TrimSpace(args.String("team")))
	if team == "" {
		team = DefaultTeam
	}

	score, err := t.source.SportsScore(ctx, team)
	if err != nil {
		return nil, err
	}

	return models.ToolResult{
		"team":           score.Team,
		"opponent":       score.Opponent,
		"team_score":     score.TeamScore,
		"opponent_score": score.OpponentScore,
		"status":         score.Status,
	}, nil
}
