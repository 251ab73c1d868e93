package game

import (
	"database/sql"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/GoodPie/aihl-media-app/internal/apperr"
	"github.com/GoodPie/aihl-media-app/internal/database"
)

// NewStore creates a new GameStore.
func NewStore(db *sql.DB) GameStore {
	return &store{db: db}
}

var gameColumns = map[string]string{
	"status":          "status",
	"gameDate":        "game_date",
	"venue":           "venue",
	"currentPeriod":   "current_period",
	"currentGameTime": "current_game_time",
	"homeScore":       "home_score",
	"awayScore":       "away_score",
	"homeTeamId":      "home_team_id",
	"awayTeamId":      "away_team_id",
	"homeTeamName":    "home_team_name",
	"awayTeamName":    "away_team_name",
	"startTime":       "start_time",
	"endTime":         "end_time",
}

const gameSelect = `SELECT id, status, game_date, venue, current_period, current_game_time,
	home_score, away_score, home_team_id, away_team_id, home_team_name, away_team_name,
	start_time, end_time, created_at, updated_at FROM games`

func (s *store) Create(g *Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	now := time.Now().Unix()
	g.CreatedAt = now
	g.UpdatedAt = now

	_, err := s.db.Exec(`
		INSERT INTO games (id, status, game_date, venue, current_period, current_game_time,
			home_score, away_score, home_team_id, away_team_id, home_team_name, away_team_name,
			start_time, end_time, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Status, g.GameDate, g.Venue, g.CurrentPeriod, g.CurrentGameTime,
		g.HomeScore, g.AwayScore, g.HomeTeamID, g.AwayTeamID, g.HomeTeamName, g.AwayTeamName,
		g.StartTime, g.EndTime, g.CreatedAt, g.UpdatedAt,
	)
	if database.IsUniqueViolation(err) {
		return apperr.Conflict("game %s already exists", g.ID)
	}
	if err != nil {
		log.Error("Failed to insert game", "error", err, "gameID", g.ID)
		return err
	}
	return nil
}

func (s *store) Get(gameID string) (*Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(gameSelect+" WHERE id = ?", gameID)
	g, err := scanGame(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Error("Failed to query game", "error", err, "gameID", gameID)
		return nil, err
	}
	return g, nil
}

func (s *store) Update(gameID string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	affected, err := database.UpdateFields(s.db, "games", "id", gameID, fields, gameColumns)
	if errors.Is(err, database.ErrNoUpdatableFields) {
		return apperr.Wrap(apperr.KindValidation, err, "no updatable fields supplied")
	}
	if err != nil {
		log.Error("Failed to update game", "error", err, "gameID", gameID)
		return err
	}
	if affected == 0 {
		return apperr.NotFound("game %s not found", gameID)
	}
	return nil
}

func (s *store) Delete(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM games WHERE id = ?", gameID)
	if err != nil {
		log.Error("Failed to delete game", "error", err, "gameID", gameID)
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return apperr.NotFound("game %s not found", gameID)
	}
	return nil
}

// List returns games matching the filter. A status filter uses the
// status+date index and orders by game date ascending; anything else is a
// plain scan in storage order. TeamID is applied after the query because a
// team can appear on either side.
func (s *store) List(filter ListFilter) ([]Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := gameSelect
	var args []any
	switch {
	case filter.Status != "":
		query += " WHERE status = ? ORDER BY game_date ASC"
		args = append(args, filter.Status)
	case filter.Date != "":
		query += " WHERE game_date = ?"
		args = append(args, filter.Date)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Error("Failed to query games", "error", err)
		return nil, err
	}
	defer rows.Close()

	var games []Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			log.Error("Failed to scan game row", "error", err)
			continue
		}
		if filter.TeamID != "" && g.HomeTeamID != filter.TeamID && g.AwayTeamID != filter.TeamID {
			continue
		}
		if filter.Date != "" && filter.Status != "" && g.GameDate != filter.Date {
			continue
		}
		games = append(games, *g)
		if filter.Limit > 0 && len(games) >= filter.Limit {
			break
		}
	}
	return games, nil
}

func scanGame(scanner interface{ Scan(...any) error }) (*Game, error) {
	var g Game
	var venue, homeName, awayName sql.NullString
	var startTime, endTime sql.NullInt64

	err := scanner.Scan(
		&g.ID, &g.Status, &g.GameDate, &venue, &g.CurrentPeriod, &g.CurrentGameTime,
		&g.HomeScore, &g.AwayScore, &g.HomeTeamID, &g.AwayTeamID, &homeName, &awayName,
		&startTime, &endTime, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	g.Venue = venue.String
	g.HomeTeamName = homeName.String
	g.AwayTeamName = awayName.String
	g.StartTime = startTime.Int64
	g.EndTime = endTime.Int64
	return &g, nil
}
