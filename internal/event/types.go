package event

import (
	"database/sql"
	"sync"
)

// Event is a single in-game occurrence (goal, penalty, period change) with
// the game state snapshotted at creation time. Scores are the post-event
// values, so a GOAL event already includes the goal it describes.
type Event struct {
	ID              string `json:"eventId"`
	GameID          string `json:"gameId"`
	EventType       string `json:"eventType"`
	PlayerID        string `json:"playerId,omitempty"`
	TeamID          string `json:"teamId,omitempty"`
	PlayerName      string `json:"playerName,omitempty"`
	PlayerNumber    string `json:"playerNumber,omitempty"`
	TeamName        string `json:"teamName,omitempty"`
	GameTime        string `json:"gameTime,omitempty"`
	Period          int    `json:"period,omitempty"`
	HomeScore       int    `json:"homeScore"`
	AwayScore       int    `json:"awayScore"`
	PenaltyType     string `json:"penaltyType,omitempty"`
	PenaltyDuration string `json:"penaltyDuration,omitempty"`
	Description     string `json:"description,omitempty"`
	GeneratedText   string `json:"generatedText,omitempty"`
	TemplateID      string `json:"templateId,omitempty"`
	CreatedAt       int64  `json:"createdAt"`
	UpdatedAt       int64  `json:"updatedAt"`
}

// CreateParams are the caller-supplied fields for a new event. TemplateID
// forces a specific template for text generation and Variables override
// individual substitution keys.
type CreateParams struct {
	EventID         string            `json:"eventId"`
	GameID          string            `json:"gameId"`
	EventType       string            `json:"eventType"`
	PlayerID        string            `json:"playerId"`
	TeamID          string            `json:"teamId"`
	GameTime        string            `json:"gameTime"`
	Period          int               `json:"period"`
	PenaltyType     string            `json:"penaltyType"`
	PenaltyDuration string            `json:"penaltyDuration"`
	Description     string            `json:"description"`
	TemplateID      string            `json:"templateId"`
	Variables       map[string]string `json:"variables"`
}

// GenerateTextParams describes a text-generation request. Either EventID
// points at a saved event, or the manual fields describe an unsaved one.
type GenerateTextParams struct {
	EventID         string            `json:"eventId"`
	GameID          string            `json:"gameId"`
	EventType       string            `json:"eventType"`
	PlayerName      string            `json:"playerName"`
	PlayerNumber    string            `json:"playerNumber"`
	TeamName        string            `json:"teamName"`
	GameTime        string            `json:"gameTime"`
	Period          int               `json:"period"`
	PenaltyType     string            `json:"penaltyType"`
	PenaltyDuration string            `json:"penaltyDuration"`
	TemplateID      string            `json:"templateId"`
	Variables       map[string]string `json:"variables"`
}

// ListFilter narrows an event listing.
type ListFilter struct {
	GameID    string
	EventType string
	Limit     int
}

// store handles all database operations for events.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
