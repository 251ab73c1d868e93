package league

import (
	"database/sql"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/GoodPie/aihl-media-app/internal/apperr"
	"github.com/GoodPie/aihl-media-app/internal/database"
)

// New creates a new league Store.
func New(db *sql.DB) Store {
	return &store{db: db}
}

var teamColumns = map[string]string{
	"teamName": "name",
	"division": "division",
}

var playerColumns = map[string]string{
	"teamId":       "team_id",
	"playerName":   "name",
	"jerseyNumber": "jersey_number",
	"position":     "position",
}

func (s *store) CreateTeam(team *Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	now := time.Now().Unix()
	team.CreatedAt = now
	team.UpdatedAt = now

	_, err := s.db.Exec(
		"INSERT INTO teams (id, name, division, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		team.ID, team.Name, team.Division, team.CreatedAt, team.UpdatedAt,
	)
	if database.IsUniqueViolation(err) {
		return apperr.Conflict("team %s already exists", team.ID)
	}
	if err != nil {
		log.Error("Failed to insert team", "error", err, "teamID", team.ID)
		return err
	}
	return nil
}

func (s *store) GetTeam(teamID string) (*Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var t Team
	var division sql.NullString
	err := s.db.QueryRow(
		"SELECT id, name, division, created_at, updated_at FROM teams WHERE id = ?", teamID,
	).Scan(&t.ID, &t.Name, &division, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Error("Failed to query team", "error", err, "teamID", teamID)
		return nil, err
	}
	t.Division = division.String
	return &t, nil
}

func (s *store) UpdateTeam(teamID string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	affected, err := database.UpdateFields(s.db, "teams", "id", teamID, fields, teamColumns)
	if errors.Is(err, database.ErrNoUpdatableFields) {
		return apperr.Wrap(apperr.KindValidation, err, "no updatable fields supplied")
	}
	if err != nil {
		log.Error("Failed to update team", "error", err, "teamID", teamID)
		return err
	}
	if affected == 0 {
		return apperr.NotFound("team %s not found", teamID)
	}
	return nil
}

func (s *store) DeleteTeam(teamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM teams WHERE id = ?", teamID)
	if err != nil {
		log.Error("Failed to delete team", "error", err, "teamID", teamID)
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return apperr.NotFound("team %s not found", teamID)
	}
	return nil
}

func (s *store) ListTeams() ([]Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, division, created_at, updated_at FROM teams ORDER BY name")
	if err != nil {
		log.Error("Failed to query teams", "error", err)
		return nil, err
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var t Team
		var division sql.NullString
		if err := rows.Scan(&t.ID, &t.Name, &division, &t.CreatedAt, &t.UpdatedAt); err != nil {
			log.Error("Failed to scan team row", "error", err)
			continue
		}
		t.Division = division.String
		teams = append(teams, t)
	}
	return teams, nil
}

func (s *store) CreatePlayer(player *Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if player.ID == "" {
		player.ID = uuid.NewString()
	}
	now := time.Now().Unix()
	player.CreatedAt = now
	player.UpdatedAt = now

	_, err := s.db.Exec(
		"INSERT INTO players (id, team_id, name, jersey_number, position, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		player.ID, player.TeamID, player.Name, player.JerseyNumber, player.Position, player.CreatedAt, player.UpdatedAt,
	)
	if database.IsUniqueViolation(err) {
		return apperr.Conflict("player %s already exists", player.ID)
	}
	if err != nil {
		log.Error("Failed to insert player", "error", err, "playerID", player.ID)
		return err
	}
	return nil
}

func (s *store) GetPlayer(playerID string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(
		"SELECT id, team_id, name, jersey_number, position, created_at, updated_at FROM players WHERE id = ?", playerID,
	)
	p, err := scanPlayer(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Error("Failed to query player", "error", err, "playerID", playerID)
		return nil, err
	}
	return p, nil
}

func (s *store) UpdatePlayer(playerID string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	affected, err := database.UpdateFields(s.db, "players", "id", playerID, fields, playerColumns)
	if errors.Is(err, database.ErrNoUpdatableFields) {
		return apperr.Wrap(apperr.KindValidation, err, "no updatable fields supplied")
	}
	if err != nil {
		log.Error("Failed to update player", "error", err, "playerID", playerID)
		return err
	}
	if affected == 0 {
		return apperr.NotFound("player %s not found", playerID)
	}
	return nil
}

func (s *store) DeletePlayer(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM players WHERE id = ?", playerID)
	if err != nil {
		log.Error("Failed to delete player", "error", err, "playerID", playerID)
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return apperr.NotFound("player %s not found", playerID)
	}
	return nil
}

// ListPlayers returns all players, or the roster of a single team when teamID
// is non-empty.
func (s *store) ListPlayers(teamID string) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := "SELECT id, team_id, name, jersey_number, position, created_at, updated_at FROM players ORDER BY name"
	args := []any{}
	if teamID != "" {
		query = "SELECT id, team_id, name, jersey_number, position, created_at, updated_at FROM players WHERE team_id = ? ORDER BY name"
		args = append(args, teamID)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Error("Failed to query players", "error", err)
		return nil, err
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, *p)
	}
	return players, nil
}

func scanPlayer(scanner interface{ Scan(...any) error }) (*Player, error) {
	var p Player
	var jersey, position sql.NullString
	err := scanner.Scan(&p.ID, &p.TeamID, &p.Name, &jersey, &position, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.JerseyNumber = jersey.String
	p.Position = position.String
	return &p, nil
}
