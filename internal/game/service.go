package game

import (
	"regexp"
	"time"

	"github.com/charmbracelet/log"

	"github.com/GoodPie/aihl-media-app/internal/apperr"
	"github.com/GoodPie/aihl-media-app/internal/league"
)

// clockPattern validates a "MM:SS" game clock.
var clockPattern = regexp.MustCompile(`^([0-9]{1,2}):([0-5][0-9])$`)

// Service owns the game lifecycle: scheduled -> in_progress -> completed.
// Every transition re-reads the stored game and validates its current state
// before writing; there is no locking beyond that, so concurrent transitions
// on the same game are last-writer-wins.
type Service struct {
	store  GameStore
	league league.Store
}

// NewService creates a new game Service.
func NewService(store GameStore, leagueStore league.Store) *Service {
	return &Service{store: store, league: leagueStore}
}

// Store exposes the underlying store for callers that only need reads.
func (s *Service) Store() GameStore {
	return s.store
}

// Create validates team references and persists a new scheduled game.
func (s *Service) Create(params CreateParams) (*Game, error) {
	if params.HomeTeamID == "" || params.AwayTeamID == "" || params.GameDate == "" {
		return nil, apperr.Validation("homeTeamId, awayTeamId and gameDate are required")
	}

	home, err := s.league.GetTeam(params.HomeTeamID)
	if err != nil {
		return nil, err
	}
	if home == nil {
		return nil, apperr.Reference("home team %s does not exist", params.HomeTeamID)
	}
	away, err := s.league.GetTeam(params.AwayTeamID)
	if err != nil {
		return nil, err
	}
	if away == nil {
		return nil, apperr.Reference("away team %s does not exist", params.AwayTeamID)
	}

	g := &Game{
		ID:              params.GameID,
		Status:          StatusScheduled,
		GameDate:        params.GameDate,
		Venue:           params.Venue,
		CurrentPeriod:   1,
		CurrentGameTime: regulationClock,
		HomeTeamID:      params.HomeTeamID,
		AwayTeamID:      params.AwayTeamID,
		HomeTeamName:    home.Name,
		AwayTeamName:    away.Name,
	}
	if err := s.store.Create(g); err != nil {
		return nil, err
	}
	log.Info("Game created", "gameID", g.ID, "home", g.HomeTeamName, "away", g.AwayTeamName, "date", g.GameDate)
	return g, nil
}

// Get loads a game or fails with NotFoundError.
func (s *Service) Get(gameID string) (*Game, error) {
	g, err := s.store.Get(gameID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, apperr.NotFound("game %s not found", gameID)
	}
	return g, nil
}

// Start transitions a game to in_progress and records the start time.
func (s *Service) Start(gameID string) (*Game, error) {
	g, err := s.Get(gameID)
	if err != nil {
		return nil, err
	}
	if g.Status == StatusInProgress {
		return nil, apperr.State("game %s is already in progress", gameID)
	}
	if g.Status == StatusCompleted {
		return nil, apperr.State("game %s is already completed", gameID)
	}

	now := time.Now().Unix()
	if err := s.store.Update(gameID, map[string]any{
		"status":    string(StatusInProgress),
		"startTime": now,
	}); err != nil {
		return nil, err
	}
	g.Status = StatusInProgress
	g.StartTime = now
	log.Info("Game started", "gameID", gameID)
	return g, nil
}

// Stop transitions an in_progress game to completed and records the end time.
func (s *Service) Stop(gameID string) (*Game, error) {
	g, err := s.Get(gameID)
	if err != nil {
		return nil, err
	}
	if g.Status != StatusInProgress {
		return nil, apperr.State("game %s is not in progress", gameID)
	}

	now := time.Now().Unix()
	if err := s.store.Update(gameID, map[string]any{
		"status":  string(StatusCompleted),
		"endTime": now,
	}); err != nil {
		return nil, err
	}
	g.Status = StatusCompleted
	g.EndTime = now
	log.Info("Game completed", "gameID", gameID, "homeScore", g.HomeScore, "awayScore", g.AwayScore)
	return g, nil
}

// UpdateScore applies a partial score change to an in_progress game.
func (s *Service) UpdateScore(gameID string, update ScoreUpdate) (*Game, error) {
	g, err := s.Get(gameID)
	if err != nil {
		return nil, err
	}
	if g.Status != StatusInProgress {
		return nil, apperr.State("game %s is not in progress", gameID)
	}
	if update.HomeScore == nil && update.AwayScore == nil {
		return nil, apperr.Validation("at least one of homeScore or awayScore is required")
	}

	fields := map[string]any{}
	if update.HomeScore != nil {
		if *update.HomeScore < 0 {
			return nil, apperr.Validation("homeScore must be non-negative")
		}
		fields["homeScore"] = *update.HomeScore
		g.HomeScore = *update.HomeScore
	}
	if update.AwayScore != nil {
		if *update.AwayScore < 0 {
			return nil, apperr.Validation("awayScore must be non-negative")
		}
		fields["awayScore"] = *update.AwayScore
		g.AwayScore = *update.AwayScore
	}

	if err := s.store.Update(gameID, fields); err != nil {
		return nil, err
	}
	log.Info("Score updated", "gameID", gameID, "homeScore", g.HomeScore, "awayScore", g.AwayScore)
	return g, nil
}

// UpdateTime sets the remaining clock of an in_progress game.
func (s *Service) UpdateTime(gameID, currentGameTime string) (*Game, error) {
	g, err := s.Get(gameID)
	if err != nil {
		return nil, err
	}
	if g.Status != StatusInProgress {
		return nil, apperr.State("game %s is not in progress", gameID)
	}
	if !clockPattern.MatchString(currentGameTime) {
		return nil, apperr.Validation("currentGameTime %q is not a valid MM:SS clock", currentGameTime)
	}

	if err := s.store.Update(gameID, map[string]any{"currentGameTime": currentGameTime}); err != nil {
		return nil, err
	}
	g.CurrentGameTime = currentGameTime
	return g, nil
}

// AdvancePeriod moves an in_progress game to the next period and resets the
// clock. Periods run 1-3 regulation, 4 overtime, 5 shootout.
func (s *Service) AdvancePeriod(gameID string) (*Game, error) {
	g, err := s.Get(gameID)
	if err != nil {
		return nil, err
	}
	if g.Status != StatusInProgress {
		return nil, apperr.State("game %s is not in progress", gameID)
	}
	if g.CurrentPeriod >= maxPeriod {
		return nil, apperr.State("game %s is already in the final period", gameID)
	}

	g.CurrentPeriod++
	if g.CurrentPeriod <= 3 {
		g.CurrentGameTime = regulationClock
	} else {
		g.CurrentGameTime = overtimeClock
	}

	if err := s.store.Update(gameID, map[string]any{
		"currentPeriod":   g.CurrentPeriod,
		"currentGameTime": g.CurrentGameTime,
	}); err != nil {
		return nil, err
	}
	log.Info("Period advanced", "gameID", gameID, "period", g.CurrentPeriod, "clock", g.CurrentGameTime)
	return g, nil
}

// List returns games matching the filter.
func (s *Service) List(filter ListFilter) ([]Game, error) {
	return s.store.List(filter)
}

// Update applies a generic partial update. Live fields (score, clock, period)
// stay guarded by the in_progress invariant, team reference changes are
// validated and re-denormalize the stored team names, and this is the only
// route to the cancelled status.
func (s *Service) Update(gameID string, fields map[string]any) (*Game, error) {
	g, err := s.Get(gameID)
	if err != nil {
		return nil, err
	}

	if status, ok := fields["status"]; ok {
		str, _ := status.(string)
		switch Status(str) {
		case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		default:
			return nil, apperr.Validation("status %q is not a valid game status", str)
		}
	}

	if g.Status != StatusInProgress {
		for _, live := range []string{"homeScore", "awayScore", "currentGameTime", "currentPeriod"} {
			if _, ok := fields[live]; ok {
				return nil, apperr.State("field %s is only mutable while the game is in progress", live)
			}
		}
	}

	for field, nameField := range map[string]string{"homeTeamId": "homeTeamName", "awayTeamId": "awayTeamName"} {
		id, ok := fields[field]
		if !ok {
			continue
		}
		teamID, _ := id.(string)
		team, err := s.league.GetTeam(teamID)
		if err != nil {
			return nil, err
		}
		if team == nil {
			return nil, apperr.Reference("team %s does not exist", teamID)
		}
		fields[nameField] = team.Name
	}

	if err := s.store.Update(gameID, fields); err != nil {
		return nil, err
	}
	return s.Get(gameID)
}

// Delete removes a game.
func (s *Service) Delete(gameID string) error {
	return s.store.Delete(gameID)
}
