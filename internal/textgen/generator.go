package textgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/GoodPie/aihl-media-app/internal/apperr"
	"github.com/GoodPie/aihl-media-app/internal/config"
	"github.com/GoodPie/aihl-media-app/internal/game"
	"github.com/GoodPie/aihl-media-app/internal/template"
)

// Generator synthesizes broadcast-ready text for game events by filling a
// resolved template from a substitution context.
type Generator struct {
	templates template.Store
	games     game.GameStore
	cfg       config.BroadcastConfig
}

// New creates a new Generator.
func New(templates template.Store, games game.GameStore, cfg config.BroadcastConfig) *Generator {
	return &Generator{templates: templates, games: games, cfg: cfg}
}

// Generate resolves a template for the event, assembles the substitution
// context and fills the template. Overrides are merged after the standard
// keys and take precedence. Returns NoTemplateError when nothing resolves.
func (g *Generator) Generate(data EventData, templateID string, overrides map[string]string) (*Result, error) {
	tpl, err := g.ResolveTemplate(data.EventType, templateID)
	if err != nil {
		return nil, err
	}

	var gm *game.Game
	if data.GameID != "" {
		gm, err = g.games.Get(data.GameID)
		if err != nil {
			return nil, err
		}
		if gm == nil {
			return nil, apperr.Reference("game %s does not exist", data.GameID)
		}
	}

	ctx := g.BuildContext(data, gm)
	for key, value := range overrides {
		ctx[key] = value
	}

	text := FillTemplate(tpl.Text, ctx)
	log.Debug("Generated event text", "eventType", data.EventType, "templateID", tpl.ID)
	return &Result{Text: text, TemplateID: tpl.ID, TemplateName: tpl.Name}, nil
}

// ResolveTemplate picks the template to use. An explicit id wins; otherwise
// templates matching the event type (case-insensitively) are considered,
// preferring the one flagged default and falling back to the first in query
// order. That tie-break is arbitrary and callers should not rely on it.
func (g *Generator) ResolveTemplate(eventType, templateID string) (*template.Template, error) {
	if templateID != "" {
		tpl, err := g.templates.GetTemplate(templateID)
		if err != nil {
			return nil, err
		}
		if tpl == nil {
			return nil, apperr.NotFound("template %s not found", templateID)
		}
		return tpl, nil
	}

	matches, err := g.templates.GetTemplatesByEventType(strings.ToLower(eventType))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, apperr.NoTemplate("no template found for event type %s", eventType)
	}
	for i := range matches {
		if matches[i].IsDefault {
			return &matches[i], nil
		}
	}
	return &matches[0], nil
}

// BuildContext assembles the substitution values from the event and its game.
// Every key is always present so template authors get predictable behavior;
// missing source data degrades to an empty string or a configured default.
func (g *Generator) BuildContext(data EventData, gm *game.Game) map[string]string {
	homeScore, awayScore := 0, 0
	switch {
	case data.HomeScore != nil:
		homeScore = *data.HomeScore
	case gm != nil:
		homeScore = gm.HomeScore
	}
	switch {
	case data.AwayScore != nil:
		awayScore = *data.AwayScore
	case gm != nil:
		awayScore = gm.AwayScore
	}

	timeRemaining := data.GameTime
	if timeRemaining == "" && gm != nil {
		timeRemaining = gm.CurrentGameTime
	}

	period := data.Period
	if period == 0 && gm != nil {
		period = gm.CurrentPeriod
	}

	teamName := data.TeamName
	if teamName == "" {
		teamName = g.cfg.HomeTeamName
	}
	homeTeam, awayTeam := g.cfg.HomeTeamName, g.cfg.HomeTeamName
	if gm != nil {
		if gm.HomeTeamName != "" {
			homeTeam = gm.HomeTeamName
		}
		if gm.AwayTeamName != "" {
			awayTeam = gm.AwayTeamName
		}
	}

	venue := g.cfg.DefaultVenue
	if gm != nil && gm.Venue != "" {
		venue = gm.Venue
	}

	label := PeriodLabel(period)
	return map[string]string{
		"playerName":      data.PlayerName,
		"playerNumber":    data.PlayerNumber,
		"team":            teamName,
		"homeTeam":        homeTeam,
		"awayTeam":        awayTeam,
		"homeScore":       strconv.Itoa(homeScore),
		"awayScore":       strconv.Itoa(awayScore),
		"scoreStatus":     DetermineScoreStatus(homeScore, awayScore),
		"timeRemaining":   timeRemaining,
		"period":          label,
		"periodNumber":    label,
		"penaltyType":     data.PenaltyType,
		"penaltyDuration": data.PenaltyDuration,
		"venue":           venue,
	}
}

// DetermineScoreStatus describes the home side's position on the scoreboard.
func DetermineScoreStatus(homeScore, awayScore int) string {
	switch {
	case homeScore > awayScore:
		return "lead"
	case homeScore < awayScore:
		return "trail"
	default:
		return "tied"
	}
}

// PeriodLabel maps a period number to its broadcast label.
func PeriodLabel(period int) string {
	switch period {
	case 1:
		return "first period"
	case 2:
		return "second period"
	case 3:
		return "third period"
	case 4:
		return "overtime"
	case 5:
		return "shootout"
	default:
		return fmt.Sprintf("period %d", period)
	}
}

// FillTemplate substitutes every {{key}} occurrence for each context key.
// Placeholders with no matching key are left literal; that is a documented
// limitation, not an error.
func FillTemplate(text string, ctx map[string]string) string {
	for key, value := range ctx {
		text = strings.ReplaceAll(text, "{{"+key+"}}", value)
	}
	return text
}
