package textgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoodPie/aihl-media-app/internal/apperr"
	"github.com/GoodPie/aihl-media-app/internal/config"
	"github.com/GoodPie/aihl-media-app/internal/game"
	"github.com/GoodPie/aihl-media-app/internal/template"
)

var testBroadcastCfg = config.BroadcastConfig{
	HomeTeamName: "Perth Thunder",
	DefaultVenue: "Perth Ice Arena",
}

func newTestGenerator(templates *template.MockStore, games *game.MockStore) *Generator {
	return New(templates, games, testBroadcastCfg)
}

func TestFillTemplate(t *testing.T) {
	assert.Equal(t, "Smith scores!", FillTemplate("{{playerName}} scores!", map[string]string{"playerName": "Smith"}))
	assert.Equal(t, "{{x}}", FillTemplate("{{x}}", map[string]string{}), "unknown placeholders are left literal")
	assert.Equal(t, "Smith and Smith", FillTemplate("{{p}} and {{p}}", map[string]string{"p": "Smith"}), "every occurrence is replaced")
	assert.Equal(t, "goal by  done", FillTemplate("goal by {{playerName}} done", map[string]string{"playerName": ""}))
}

func TestDetermineScoreStatus(t *testing.T) {
	assert.Equal(t, "lead", DetermineScoreStatus(3, 1))
	assert.Equal(t, "trail", DetermineScoreStatus(0, 2))
	assert.Equal(t, "tied", DetermineScoreStatus(0, 0))
	assert.Equal(t, "tied", DetermineScoreStatus(4, 4))
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "first period", PeriodLabel(1))
	assert.Equal(t, "second period", PeriodLabel(2))
	assert.Equal(t, "third period", PeriodLabel(3))
	assert.Equal(t, "overtime", PeriodLabel(4))
	assert.Equal(t, "shootout", PeriodLabel(5))
	assert.Equal(t, "period 7", PeriodLabel(7))
}

func TestResolveTemplate_PrefersDefault(t *testing.T) {
	templates := template.NewMock()
	templates.GetTemplatesByEventTypeFunc = func(eventType string) ([]template.Template, error) {
		return []template.Template{
			{ID: "plain", EventType: "goal", IsDefault: false},
			{ID: "def", EventType: "goal", IsDefault: true},
		}, nil
	}
	gen := newTestGenerator(templates, game.NewMock())

	tpl, err := gen.ResolveTemplate("goal", "")
	require.NoError(t, err)
	assert.Equal(t, "def", tpl.ID)
	require.Len(t, templates.GetTemplatesByEventTypeCalls, 1)
	assert.Equal(t, "goal", templates.GetTemplatesByEventTypeCalls[0])
}

func TestResolveTemplate_CaseNormalized(t *testing.T) {
	templates := template.NewMock()
	templates.GetTemplatesByEventTypeFunc = func(eventType string) ([]template.Template, error) {
		return []template.Template{{ID: "only", EventType: "goal"}}, nil
	}
	gen := newTestGenerator(templates, game.NewMock())

	_, err := gen.ResolveTemplate("GOAL", "")
	require.NoError(t, err)
	assert.Equal(t, "goal", templates.GetTemplatesByEventTypeCalls[0], "event type is lowercased before the query")
}

func TestResolveTemplate_FirstWhenNoDefault(t *testing.T) {
	templates := template.NewMock()
	templates.GetTemplatesByEventTypeFunc = func(eventType string) ([]template.Template, error) {
		return []template.Template{
			{ID: "first", EventType: "goal"},
			{ID: "second", EventType: "goal"},
		}, nil
	}
	gen := newTestGenerator(templates, game.NewMock())

	tpl, err := gen.ResolveTemplate("goal", "")
	require.NoError(t, err)
	assert.Equal(t, "first", tpl.ID)
}

func TestResolveTemplate_NoMatches(t *testing.T) {
	gen := newTestGenerator(template.NewMock(), game.NewMock())

	_, err := gen.ResolveTemplate("faceoff", "")
	assert.Equal(t, apperr.KindNoTemplate, apperr.KindOf(err))
}

func TestResolveTemplate_ExplicitID(t *testing.T) {
	templates := template.NewMock()
	templates.GetTemplateFunc = func(templateID string) (*template.Template, error) {
		if templateID == "tpl-1" {
			return &template.Template{ID: "tpl-1"}, nil
		}
		return nil, nil
	}
	gen := newTestGenerator(templates, game.NewMock())

	tpl, err := gen.ResolveTemplate("goal", "tpl-1")
	require.NoError(t, err)
	assert.Equal(t, "tpl-1", tpl.ID)

	_, err = gen.ResolveTemplate("goal", "ghost")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestBuildContext(t *testing.T) {
	gen := newTestGenerator(template.NewMock(), game.NewMock())

	two, one := 2, 1
	gm := &game.Game{
		ID:              "g1",
		HomeTeamName:    "Perth Thunder",
		AwayTeamName:    "Melbourne Ice",
		HomeScore:       5,
		AwayScore:       5,
		CurrentGameTime: "12:30",
		CurrentPeriod:   3,
		Venue:           "Perth Ice Arena",
	}
	data := EventData{
		EventType:    "GOAL",
		PlayerName:   "Smith",
		PlayerNumber: "17",
		TeamName:     "Perth Thunder",
		GameTime:     "15:04",
		Period:       2,
		HomeScore:    &two,
		AwayScore:    &one,
	}

	ctx := gen.BuildContext(data, gm)
	assert.Equal(t, "Smith", ctx["playerName"])
	assert.Equal(t, "17", ctx["playerNumber"])
	assert.Equal(t, "2", ctx["homeScore"], "event snapshot wins over live game score")
	assert.Equal(t, "1", ctx["awayScore"])
	assert.Equal(t, "lead", ctx["scoreStatus"])
	assert.Equal(t, "15:04", ctx["timeRemaining"], "event game time wins over live clock")
	assert.Equal(t, "second period", ctx["period"])
	assert.Equal(t, "second period", ctx["periodNumber"])
	assert.Equal(t, "Perth Thunder", ctx["homeTeam"])
	assert.Equal(t, "Melbourne Ice", ctx["awayTeam"])
	assert.Equal(t, "Perth Ice Arena", ctx["venue"])
	assert.Equal(t, "", ctx["penaltyType"])
}

func TestBuildContext_Fallbacks(t *testing.T) {
	gen := newTestGenerator(template.NewMock(), game.NewMock())

	gm := &game.Game{HomeScore: 3, AwayScore: 4, CurrentGameTime: "08:00", CurrentPeriod: 4}
	ctx := gen.BuildContext(EventData{EventType: "GOAL"}, gm)
	assert.Equal(t, "3", ctx["homeScore"], "live game score when no snapshot")
	assert.Equal(t, "trail", ctx["scoreStatus"])
	assert.Equal(t, "08:00", ctx["timeRemaining"])
	assert.Equal(t, "overtime", ctx["period"])
	assert.Equal(t, "Perth Thunder", ctx["team"], "configured display name when no team on the event")
	assert.Equal(t, "Perth Ice Arena", ctx["venue"], "default venue when the game has none")

	ctx = gen.BuildContext(EventData{EventType: "GOAL"}, nil)
	assert.Equal(t, "0", ctx["homeScore"])
	assert.Equal(t, "0", ctx["awayScore"])
	assert.Equal(t, "tied", ctx["scoreStatus"])
}

func TestGenerate(t *testing.T) {
	templates := template.NewMock()
	templates.GetTemplatesByEventTypeFunc = func(eventType string) ([]template.Template, error) {
		return []template.Template{{
			ID:        "tpl-goal",
			Name:      "Goal call",
			EventType: "goal",
			Text:      "{{playerName}} scores for {{team}}! {{homeTeam}} {{homeScore}}, {{awayTeam}} {{awayScore}}",
			IsDefault: true,
		}}, nil
	}
	games := game.NewMock()
	games.GetFunc = func(gameID string) (*game.Game, error) {
		return &game.Game{ID: gameID, HomeTeamName: "Perth Thunder", AwayTeamName: "Melbourne Ice", HomeScore: 1, AwayScore: 0}, nil
	}
	gen := newTestGenerator(templates, games)

	res, err := gen.Generate(EventData{GameID: "g1", EventType: "GOAL", PlayerName: "Smith", TeamName: "Perth Thunder"}, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Smith scores for Perth Thunder! Perth Thunder 1, Melbourne Ice 0", res.Text)
	assert.Equal(t, "tpl-goal", res.TemplateID)
	assert.Equal(t, "Goal call", res.TemplateName)
}

func TestGenerate_OverridesWin(t *testing.T) {
	templates := template.NewMock()
	templates.GetTemplatesByEventTypeFunc = func(eventType string) ([]template.Template, error) {
		return []template.Template{{ID: "tpl", EventType: "announcement", Text: "{{playerName}} / {{sponsor}}"}}, nil
	}
	gen := newTestGenerator(templates, game.NewMock())

	res, err := gen.Generate(
		EventData{EventType: "announcement", PlayerName: "Smith"},
		"",
		map[string]string{"playerName": "Jones", "sponsor": "Acme"},
	)
	require.NoError(t, err)
	assert.Equal(t, "Jones / Acme", res.Text, "override keys take precedence over standard keys")
}

func TestGenerate_MissingGame(t *testing.T) {
	templates := template.NewMock()
	templates.GetTemplatesByEventTypeFunc = func(eventType string) ([]template.Template, error) {
		return []template.Template{{ID: "tpl", EventType: "goal", Text: "x"}}, nil
	}
	gen := newTestGenerator(templates, game.NewMock())

	_, err := gen.Generate(EventData{GameID: "ghost", EventType: "GOAL"}, "", nil)
	assert.Equal(t, apperr.KindReference, apperr.KindOf(err))
}
