package event

import (
	"database/sql"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/GoodPie/aihl-media-app/internal/apperr"
	"github.com/GoodPie/aihl-media-app/internal/database"
)

// NewStore creates a new event store.
func NewStore(db *sql.DB) EventStore {
	return &store{db: db}
}

var eventColumns = map[string]string{
	"gameTime":        "game_time",
	"period":          "period",
	"penaltyType":     "penalty_type",
	"penaltyDuration": "penalty_duration",
	"description":     "description",
	"generatedText":   "generated_text",
	"templateId":      "template_id",
}

const eventSelect = `SELECT id, game_id, event_type, player_id, team_id, player_name, player_number,
team_name, game_time, period, home_score, away_score, penalty_type, penalty_duration,
description, generated_text, template_id, created_at, updated_at FROM events`

func (s *store) Create(ev *Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	now := time.Now().Unix()
	ev.CreatedAt = now
	ev.UpdatedAt = now

	_, err := s.db.Exec(
		`INSERT INTO events (id, game_id, event_type, player_id, team_id, player_name, player_number,
		team_name, game_time, period, home_score, away_score, penalty_type, penalty_duration,
		description, generated_text, template_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.GameID, ev.EventType, nullable(ev.PlayerID), nullable(ev.TeamID),
		nullable(ev.PlayerName), nullable(ev.PlayerNumber), nullable(ev.TeamName),
		nullable(ev.GameTime), ev.Period, ev.HomeScore, ev.AwayScore,
		nullable(ev.PenaltyType), nullable(ev.PenaltyDuration), nullable(ev.Description),
		nullable(ev.GeneratedText), nullable(ev.TemplateID), ev.CreatedAt, ev.UpdatedAt,
	)
	if database.IsUniqueViolation(err) {
		return apperr.Conflict("event %s already exists", ev.ID)
	}
	if err != nil {
		log.Error("Failed to insert event", "error", err, "eventID", ev.ID)
		return err
	}
	return nil
}

func (s *store) Get(eventID string) (*Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(eventSelect+" WHERE id = ?", eventID)
	ev, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Error("Failed to query event", "error", err, "eventID", eventID)
		return nil, err
	}
	return ev, nil
}

func (s *store) Update(eventID string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	affected, err := database.UpdateFields(s.db, "events", "id", eventID, fields, eventColumns)
	if errors.Is(err, database.ErrNoUpdatableFields) {
		return apperr.Wrap(apperr.KindValidation, err, "no updatable fields supplied")
	}
	if err != nil {
		log.Error("Failed to update event", "error", err, "eventID", eventID)
		return err
	}
	if affected == 0 {
		return apperr.NotFound("event %s not found", eventID)
	}
	return nil
}

func (s *store) Delete(eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM events WHERE id = ?", eventID)
	if err != nil {
		log.Error("Failed to delete event", "error", err, "eventID", eventID)
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return apperr.NotFound("event %s not found", eventID)
	}
	return nil
}

// List returns events newest first, optionally narrowed by game and type.
func (s *store) List(filter ListFilter) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := eventSelect
	var clauses []string
	var args []any
	if filter.GameID != "" {
		clauses = append(clauses, "game_id = ?")
		args = append(args, filter.GameID)
	}
	if filter.EventType != "" {
		clauses = append(clauses, "event_type = ?")
		args = append(args, filter.EventType)
	}
	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY created_at DESC, id"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Error("Failed to query events", "error", err)
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			log.Error("Failed to scan event row", "error", err)
			continue
		}
		events = append(events, *ev)
	}
	return events, nil
}

func scanEvent(scanner interface{ Scan(...any) error }) (*Event, error) {
	var ev Event
	var playerID, teamID, playerName, playerNumber, teamName sql.NullString
	var gameTime, penaltyType, penaltyDuration, description, generatedText, templateID sql.NullString
	var period sql.NullInt64
	err := scanner.Scan(
		&ev.ID, &ev.GameID, &ev.EventType, &playerID, &teamID, &playerName, &playerNumber,
		&teamName, &gameTime, &period, &ev.HomeScore, &ev.AwayScore, &penaltyType,
		&penaltyDuration, &description, &generatedText, &templateID, &ev.CreatedAt, &ev.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	ev.PlayerID = playerID.String
	ev.TeamID = teamID.String
	ev.PlayerName = playerName.String
	ev.PlayerNumber = playerNumber.String
	ev.TeamName = teamName.String
	ev.GameTime = gameTime.String
	ev.Period = int(period.Int64)
	ev.PenaltyType = penaltyType.String
	ev.PenaltyDuration = penaltyDuration.String
	ev.Description = description.String
	ev.GeneratedText = generatedText.String
	ev.TemplateID = templateID.String
	return &ev, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
