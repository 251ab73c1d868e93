package event

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/GoodPie/aihl-media-app/internal/apperr"
	"github.com/GoodPie/aihl-media-app/internal/game"
	"github.com/GoodPie/aihl-media-app/internal/league"
	"github.com/GoodPie/aihl-media-app/internal/metrics"
	"github.com/GoodPie/aihl-media-app/internal/notifier"
	"github.com/GoodPie/aihl-media-app/internal/pubsub"
	"github.com/GoodPie/aihl-media-app/internal/textgen"
)

// textGenerator is the slice of the text generator the event service needs.
type textGenerator interface {
	Generate(data textgen.EventData, templateID string, overrides map[string]string) (*textgen.Result, error)
}

// Service orchestrates event creation: validation, score updates for goals,
// player/team denormalization, text generation and the broadcast publish.
// Text generation and publishing are best-effort; the event persists without
// them.
type Service struct {
	store     EventStore
	games     *game.Service
	league    league.Store
	generator textGenerator
	pubsub    pubsub.PubSubClient
	metrics   metrics.Metrics
}

// NewService creates a new event Service.
func NewService(store EventStore, games *game.Service, leagueStore league.Store, generator textGenerator, pubsubClient pubsub.PubSubClient, metrics metrics.Metrics) *Service {
	return &Service{
		store:     store,
		games:     games,
		league:    leagueStore,
		generator: generator,
		pubsub:    pubsubClient,
		metrics:   metrics,
	}
}

// Create runs the full event pipeline. The game must exist and be in
// progress. A GOAL event increments the scoring side before the snapshot is
// taken, so the persisted scores already include the goal.
func (s *Service) Create(params CreateParams) (*Event, error) {
	start := time.Now()

	if params.GameID == "" || params.EventType == "" {
		return nil, apperr.Validation("gameId and eventType are required")
	}

	gm, err := s.games.Store().Get(params.GameID)
	if err != nil {
		return nil, err
	}
	if gm == nil {
		return nil, apperr.Reference("game %s does not exist", params.GameID)
	}
	if gm.Status != game.StatusInProgress {
		return nil, apperr.State("game %s is not in progress", params.GameID)
	}

	ev := &Event{
		ID:              params.EventID,
		GameID:          params.GameID,
		EventType:       params.EventType,
		PlayerID:        params.PlayerID,
		TeamID:          params.TeamID,
		GameTime:        params.GameTime,
		Period:          params.Period,
		PenaltyType:     params.PenaltyType,
		PenaltyDuration: params.PenaltyDuration,
		Description:     params.Description,
	}
	if ev.GameTime == "" {
		ev.GameTime = gm.CurrentGameTime
	}
	if ev.Period == 0 {
		ev.Period = gm.CurrentPeriod
	}

	if params.EventType == "GOAL" {
		if ev.TeamID == "" {
			return nil, apperr.Validation("teamId is required for GOAL events")
		}
		updated, err := s.scoreGoal(gm, ev.TeamID)
		if err != nil {
			return nil, err
		}
		gm = updated
	}
	ev.HomeScore = gm.HomeScore
	ev.AwayScore = gm.AwayScore

	if ev.PlayerID != "" {
		player, err := s.league.GetPlayer(ev.PlayerID)
		if err != nil {
			return nil, err
		}
		if player == nil {
			return nil, apperr.Reference("player %s does not exist", ev.PlayerID)
		}
		ev.PlayerName = player.Name
		ev.PlayerNumber = player.JerseyNumber
		if ev.TeamID == "" {
			ev.TeamID = player.TeamID
		}
	}

	if ev.TeamID != "" {
		team, err := s.league.GetTeam(ev.TeamID)
		if err != nil {
			return nil, err
		}
		if team == nil {
			return nil, apperr.Reference("team %s does not exist", ev.TeamID)
		}
		ev.TeamName = team.Name
	}

	result, err := s.generator.Generate(eventData(ev), params.TemplateID, params.Variables)
	if err != nil {
		s.metrics.IncTextGenFailed()
		log.Warn("Text generation failed, persisting event without text", "error", err, "eventType", ev.EventType)
	} else {
		s.metrics.IncTextGenerated()
		ev.GeneratedText = result.Text
		ev.TemplateID = result.TemplateID
	}

	if err := s.store.Create(ev); err != nil {
		return nil, err
	}
	log.Info("Event created", "eventID", ev.ID, "gameID", ev.GameID, "eventType", ev.EventType)

	s.publishBroadcast(ev, gm)
	s.metrics.IncEventsCreated()
	s.metrics.ObserveEventDuration(time.Since(start).Seconds())
	return ev, nil
}

// scoreGoal increments the scoring side and returns the post-increment game.
func (s *Service) scoreGoal(gm *game.Game, teamID string) (*game.Game, error) {
	var update game.ScoreUpdate
	switch teamID {
	case gm.HomeTeamID:
		next := gm.HomeScore + 1
		update.HomeScore = &next
	case gm.AwayTeamID:
		next := gm.AwayScore + 1
		update.AwayScore = &next
	default:
		return nil, apperr.Validation("team %s is not playing in game %s", teamID, gm.ID)
	}
	return s.games.UpdateScore(gm.ID, update)
}

// publishBroadcast sends the event to the broadcast topic. Failures are
// logged and swallowed; the event is already persisted.
func (s *Service) publishBroadcast(ev *Event, gm *game.Game) {
	payload := &notifier.Broadcast{
		EventID:       ev.ID,
		GameID:        ev.GameID,
		EventType:     ev.EventType,
		Text:          ev.GeneratedText,
		HomeTeamName:  gm.HomeTeamName,
		AwayTeamName:  gm.AwayTeamName,
		HomeScore:     ev.HomeScore,
		AwayScore:     ev.AwayScore,
		PeriodLabel:   textgen.PeriodLabel(ev.Period),
		TimeRemaining: ev.GameTime,
	}
	if err := s.pubsub.SendMessage(pubsub.TopicEventBroadcast, payload); err != nil {
		log.Error("Failed to publish event broadcast", "error", err, "eventID", ev.ID)
		return
	}
	s.metrics.IncBroadcastsPublished()
}

// GenerateText produces announcement text for a saved event or a manual
// event description. Unlike creation, a missing template is a hard failure
// here.
func (s *Service) GenerateText(params GenerateTextParams) (*textgen.Result, error) {
	var data textgen.EventData
	if params.EventID != "" {
		ev, err := s.Get(params.EventID)
		if err != nil {
			return nil, err
		}
		data = eventData(ev)
	} else {
		if params.EventType == "" {
			return nil, apperr.Validation("eventId or eventType is required")
		}
		data = textgen.EventData{
			GameID:          params.GameID,
			EventType:       params.EventType,
			PlayerName:      params.PlayerName,
			PlayerNumber:    params.PlayerNumber,
			TeamName:        params.TeamName,
			GameTime:        params.GameTime,
			Period:          params.Period,
			PenaltyType:     params.PenaltyType,
			PenaltyDuration: params.PenaltyDuration,
		}
	}

	result, err := s.generator.Generate(data, params.TemplateID, params.Variables)
	if err != nil {
		s.metrics.IncTextGenFailed()
		return nil, err
	}
	s.metrics.IncTextGenerated()

	if params.EventID != "" {
		fields := map[string]any{"generatedText": result.Text, "templateId": result.TemplateID}
		if err := s.store.Update(params.EventID, fields); err != nil {
			log.Error("Failed to attach generated text to event", "error", err, "eventID", params.EventID)
		}
	}
	return result, nil
}

// Get loads an event or fails with NotFoundError.
func (s *Service) Get(eventID string) (*Event, error) {
	ev, err := s.store.Get(eventID)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, apperr.NotFound("event %s not found", eventID)
	}
	return ev, nil
}

// List returns events matching the filter.
func (s *Service) List(filter ListFilter) ([]Event, error) {
	return s.store.List(filter)
}

// Update applies a partial update to an event.
func (s *Service) Update(eventID string, fields map[string]any) (*Event, error) {
	if err := s.store.Update(eventID, fields); err != nil {
		return nil, err
	}
	return s.Get(eventID)
}

// Delete removes an event.
func (s *Service) Delete(eventID string) error {
	return s.store.Delete(eventID)
}

// eventData maps a persisted event onto the generator's input. The snapshot
// scores ride along so regeneration reflects the event-time scoreboard, not
// the live one.
func eventData(ev *Event) textgen.EventData {
	home, away := ev.HomeScore, ev.AwayScore
	return textgen.EventData{
		GameID:          ev.GameID,
		EventType:       ev.EventType,
		PlayerName:      ev.PlayerName,
		PlayerNumber:    ev.PlayerNumber,
		TeamName:        ev.TeamName,
		GameTime:        ev.GameTime,
		Period:          ev.Period,
		HomeScore:       &home,
		AwayScore:       &away,
		PenaltyType:     ev.PenaltyType,
		PenaltyDuration: ev.PenaltyDuration,
	}
}
