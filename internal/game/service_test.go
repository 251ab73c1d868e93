package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoodPie/aihl-media-app/internal/apperr"
	"github.com/GoodPie/aihl-media-app/internal/database"
	"github.com/GoodPie/aihl-media-app/internal/game"
	"github.com/GoodPie/aihl-media-app/internal/league"
)

// setupService wires a game service against an in-memory database with two
// known teams.
func setupService(t *testing.T) (*game.Service, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	leagueStore := league.New(db)
	require.NoError(t, leagueStore.CreateTeam(&league.Team{ID: "t1", Name: "Perth Thunder"}))
	require.NoError(t, leagueStore.CreateTeam(&league.Team{ID: "t2", Name: "Melbourne Ice"}))

	return game.NewService(game.NewStore(db), leagueStore), teardown
}

func createTestGame(t *testing.T, svc *game.Service) *game.Game {
	t.Helper()
	g, err := svc.Create(game.CreateParams{HomeTeamID: "t1", AwayTeamID: "t2", GameDate: "2024-05-01"})
	require.NoError(t, err)
	return g
}

func TestCreate_Defaults(t *testing.T) {
	svc, teardown := setupService(t)
	defer teardown()

	g := createTestGame(t, svc)
	assert.Equal(t, game.StatusScheduled, g.Status)
	assert.Equal(t, 1, g.CurrentPeriod)
	assert.Equal(t, "20:00", g.CurrentGameTime)
	assert.Equal(t, 0, g.HomeScore)
	assert.Equal(t, 0, g.AwayScore)
	assert.Equal(t, "Perth Thunder", g.HomeTeamName)
	assert.Equal(t, "Melbourne Ice", g.AwayTeamName)
	assert.NotEmpty(t, g.ID)
}

func TestCreate_Failures(t *testing.T) {
	svc, teardown := setupService(t)
	defer teardown()

	_, err := svc.Create(game.CreateParams{HomeTeamID: "t1"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.Create(game.CreateParams{HomeTeamID: "t1", AwayTeamID: "ghost", GameDate: "2024-05-01"})
	assert.Equal(t, apperr.KindReference, apperr.KindOf(err))

	_, err = svc.Create(game.CreateParams{GameID: "g1", HomeTeamID: "t1", AwayTeamID: "t2", GameDate: "2024-05-01"})
	require.NoError(t, err)
	_, err = svc.Create(game.CreateParams{GameID: "g1", HomeTeamID: "t1", AwayTeamID: "t2", GameDate: "2024-05-02"})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestStart(t *testing.T) {
	svc, teardown := setupService(t)
	defer teardown()

	g := createTestGame(t, svc)

	started, err := svc.Start(g.ID)
	require.NoError(t, err)
	assert.Equal(t, game.StatusInProgress, started.Status)
	assert.NotZero(t, started.StartTime)

	_, err = svc.Start(g.ID)
	assert.Equal(t, apperr.KindState, apperr.KindOf(err), "starting an in-progress game must fail")

	_, err = svc.Stop(g.ID)
	require.NoError(t, err)
	_, err = svc.Start(g.ID)
	assert.Equal(t, apperr.KindState, apperr.KindOf(err), "starting a completed game must fail")

	_, err = svc.Start("ghost")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestStop_RequiresInProgress(t *testing.T) {
	svc, teardown := setupService(t)
	defer teardown()

	g := createTestGame(t, svc)
	_, err := svc.Stop(g.ID)
	assert.Equal(t, apperr.KindState, apperr.KindOf(err))
}

func TestUpdateScore(t *testing.T) {
	svc, teardown := setupService(t)
	defer teardown()

	g := createTestGame(t, svc)

	two := 2
	_, err := svc.UpdateScore(g.ID, game.ScoreUpdate{HomeScore: &two})
	assert.Equal(t, apperr.KindState, apperr.KindOf(err), "score is immutable before start")

	_, err = svc.Start(g.ID)
	require.NoError(t, err)

	_, err = svc.UpdateScore(g.ID, game.ScoreUpdate{})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	updated, err := svc.UpdateScore(g.ID, game.ScoreUpdate{HomeScore: &two})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.HomeScore)
	assert.Equal(t, 0, updated.AwayScore, "partial update must not touch the other side")

	neg := -1
	_, err = svc.UpdateScore(g.ID, game.ScoreUpdate{AwayScore: &neg})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestUpdateTime(t *testing.T) {
	svc, teardown := setupService(t)
	defer teardown()

	g := createTestGame(t, svc)
	_, err := svc.Start(g.ID)
	require.NoError(t, err)

	updated, err := svc.UpdateTime(g.ID, "5:43")
	require.NoError(t, err)
	assert.Equal(t, "5:43", updated.CurrentGameTime)

	for _, bad := range []string{"5:7", "20:60", "1:2:3", "abc", ""} {
		_, err = svc.UpdateTime(g.ID, bad)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err), "clock %q should be rejected", bad)
	}
}

func TestAdvancePeriod_CapAndClockReset(t *testing.T) {
	svc, teardown := setupService(t)
	defer teardown()

	g := createTestGame(t, svc)
	_, err := svc.AdvancePeriod(g.ID)
	assert.Equal(t, apperr.KindState, apperr.KindOf(err), "period is immutable before start")

	_, err = svc.Start(g.ID)
	require.NoError(t, err)

	updated, err := svc.AdvancePeriod(g.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.CurrentPeriod)
	assert.Equal(t, "20:00", updated.CurrentGameTime)

	updated, err = svc.AdvancePeriod(g.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.CurrentPeriod)
	assert.Equal(t, "20:00", updated.CurrentGameTime)

	updated, err = svc.AdvancePeriod(g.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.CurrentPeriod, "period 4 is overtime")
	assert.Equal(t, "5:00", updated.CurrentGameTime, "overtime clock starts at 5:00")

	updated, err = svc.AdvancePeriod(g.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.CurrentPeriod, "period 5 is the shootout")
	assert.Equal(t, "5:00", updated.CurrentGameTime)

	_, err = svc.AdvancePeriod(g.ID)
	assert.Equal(t, apperr.KindState, apperr.KindOf(err), "advancing past period 5 must fail")

	final, err := svc.Get(g.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, final.CurrentPeriod, "a failed advance must not change the period")
}

func TestList(t *testing.T) {
	svc, teardown := setupService(t)
	defer teardown()

	g1, err := svc.Create(game.CreateParams{HomeTeamID: "t1", AwayTeamID: "t2", GameDate: "2024-05-02"})
	require.NoError(t, err)
	g2, err := svc.Create(game.CreateParams{HomeTeamID: "t2", AwayTeamID: "t1", GameDate: "2024-05-01"})
	require.NoError(t, err)
	_, err = svc.Start(g2.ID)
	require.NoError(t, err)

	scheduled, err := svc.List(game.ListFilter{Status: game.StatusScheduled})
	require.NoError(t, err)
	require.Len(t, scheduled, 1)
	assert.Equal(t, g1.ID, scheduled[0].ID)

	byTeam, err := svc.List(game.ListFilter{TeamID: "t1"})
	require.NoError(t, err)
	assert.Len(t, byTeam, 2, "team filter must match home and away sides")

	byDate, err := svc.List(game.ListFilter{Date: "2024-05-01"})
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	assert.Equal(t, g2.ID, byDate[0].ID)

	all, err := svc.List(game.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestList_StatusOrdersByDate(t *testing.T) {
	svc, teardown := setupService(t)
	defer teardown()

	_, err := svc.Create(game.CreateParams{GameID: "late", HomeTeamID: "t1", AwayTeamID: "t2", GameDate: "2024-06-01"})
	require.NoError(t, err)
	_, err = svc.Create(game.CreateParams{GameID: "early", HomeTeamID: "t1", AwayTeamID: "t2", GameDate: "2024-04-01"})
	require.NoError(t, err)

	scheduled, err := svc.List(game.ListFilter{Status: game.StatusScheduled})
	require.NoError(t, err)
	require.Len(t, scheduled, 2)
	assert.Equal(t, "early", scheduled[0].ID)
	assert.Equal(t, "late", scheduled[1].ID)
}

func TestGenericUpdate(t *testing.T) {
	svc, teardown := setupService(t)
	defer teardown()

	g := createTestGame(t, svc)

	_, err := svc.Update(g.ID, map[string]any{"homeScore": 3})
	assert.Equal(t, apperr.KindState, apperr.KindOf(err), "live fields stay guarded in generic updates")

	_, err = svc.Update(g.ID, map[string]any{"status": "paused"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	updated, err := svc.Update(g.ID, map[string]any{"status": "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, game.StatusCancelled, updated.Status)

	_, err = svc.Update(g.ID, map[string]any{"homeTeamId": "ghost"})
	assert.Equal(t, apperr.KindReference, apperr.KindOf(err))

	updated, err = svc.Update(g.ID, map[string]any{"homeTeamId": "t2"})
	require.NoError(t, err)
	assert.Equal(t, "t2", updated.HomeTeamID)
	assert.Equal(t, "Melbourne Ice", updated.HomeTeamName, "team names are re-denormalized on reference change")
}

func TestDelete(t *testing.T) {
	svc, teardown := setupService(t)
	defer teardown()

	g := createTestGame(t, svc)
	require.NoError(t, svc.Delete(g.ID))

	err := svc.Delete(g.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
