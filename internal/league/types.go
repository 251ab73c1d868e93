package league

import (
	"database/sql"
	"sync"
)

// store handles all database operations for teams and players.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Team represents a club competing in the league.
type Team struct {
	ID        string `json:"teamId"`
	Name      string `json:"teamName"`
	Division  string `json:"division,omitempty"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// Player represents a rostered player. TeamID always references an existing team.
type Player struct {
	ID           string `json:"playerId"`
	TeamID       string `json:"teamId"`
	Name         string `json:"playerName"`
	JerseyNumber string `json:"jerseyNumber,omitempty"`
	Position     string `json:"position,omitempty"`
	CreatedAt    int64  `json:"createdAt"`
	UpdatedAt    int64  `json:"updatedAt"`
}
