package game

import (
	"database/sql"
	"sync"
)

// Status is the lifecycle state of a game.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

const (
	// Regulation periods 1-3 run 20 minutes; overtime and shootout start at 5.
	regulationClock = "20:00"
	overtimeClock   = "5:00"
	maxPeriod       = 5
)

// Game holds a single game's schedule and live state. Score and clock fields
// are only mutable while Status is in_progress.
type Game struct {
	ID              string `json:"gameId"`
	Status          Status `json:"status"`
	GameDate        string `json:"gameDate"`
	Venue           string `json:"venue,omitempty"`
	CurrentPeriod   int    `json:"currentPeriod"`
	CurrentGameTime string `json:"currentGameTime"`
	HomeScore       int    `json:"homeScore"`
	AwayScore       int    `json:"awayScore"`
	HomeTeamID      string `json:"homeTeamId"`
	AwayTeamID      string `json:"awayTeamId"`
	HomeTeamName    string `json:"homeTeamName,omitempty"`
	AwayTeamName    string `json:"awayTeamName,omitempty"`
	StartTime       int64  `json:"startTime,omitempty"`
	EndTime         int64  `json:"endTime,omitempty"`
	CreatedAt       int64  `json:"createdAt"`
	UpdatedAt       int64  `json:"updatedAt"`
}

// CreateParams are the caller-supplied fields for a new game.
type CreateParams struct {
	GameID     string `json:"gameId"`
	HomeTeamID string `json:"homeTeamId"`
	AwayTeamID string `json:"awayTeamId"`
	GameDate   string `json:"gameDate"`
	Venue      string `json:"venue"`
}

// ScoreUpdate is a partial score change; only supplied sides are touched.
type ScoreUpdate struct {
	HomeScore *int `json:"homeScore"`
	AwayScore *int `json:"awayScore"`
}

// ListFilter narrows a game listing. Status uses the status+date index and
// orders by gameDate ascending; TeamID is post-filtered against both sides.
type ListFilter struct {
	Status Status
	TeamID string
	Date   string
	Limit  int
}

// store handles all database operations for games.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
