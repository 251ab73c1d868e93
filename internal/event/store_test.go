package event_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoodPie/aihl-media-app/internal/apperr"
	"github.com/GoodPie/aihl-media-app/internal/database"
	"github.com/GoodPie/aihl-media-app/internal/event"
)

func setupTestDB(t *testing.T) (event.EventStore, *sql.DB, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	// Satisfy the foreign keys on events.game_id.
	_, err = db.Exec("INSERT INTO teams (id, name) VALUES ('T1', 'Perth Thunder'), ('T2', 'Melbourne Ice')")
	require.NoError(t, err)
	_, err = db.Exec(
		"INSERT INTO games (id, status, game_date, home_team_id, away_team_id) VALUES ('g1', 'in_progress', '2026-06-01', 'T1', 'T2')",
	)
	require.NoError(t, err)

	return event.NewStore(db), db, teardown
}

func TestEventCRUD(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	ev := &event.Event{
		GameID:        "g1",
		EventType:     "GOAL",
		TeamID:        "T1",
		TeamName:      "Perth Thunder",
		PlayerName:    "Jamie Woodman",
		PlayerNumber:  "17",
		GameTime:      "12:45",
		Period:        2,
		HomeScore:     2,
		AwayScore:     1,
		GeneratedText: "GOAL! Scored by #17 Jamie Woodman!",
		TemplateID:    "tpl-1",
	}
	require.NoError(t, store.Create(ev))
	assert.NotEmpty(t, ev.ID, "id should be minted on create")

	got, err := store.Get(ev.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "GOAL", got.EventType)
	assert.Equal(t, "Jamie Woodman", got.PlayerName)
	assert.Equal(t, 2, got.HomeScore)
	assert.Equal(t, "GOAL! Scored by #17 Jamie Woodman!", got.GeneratedText)

	require.NoError(t, store.Update(ev.ID, map[string]any{"description": "power play goal"}))
	got, err = store.Get(ev.ID)
	require.NoError(t, err)
	assert.Equal(t, "power play goal", got.Description)

	require.NoError(t, store.Delete(ev.ID))
	got, err = store.Get(ev.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	err = store.Delete(ev.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCreate_DuplicateID(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.Create(&event.Event{ID: "e1", GameID: "g1", EventType: "GOAL"}))
	err := store.Create(&event.Event{ID: "e1", GameID: "g1", EventType: "GOAL"})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestList_Filters(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	_, err := db.Exec("INSERT INTO games (id, status, game_date, home_team_id, away_team_id) VALUES ('g2', 'in_progress', '2026-06-02', 'T2', 'T1')")
	require.NoError(t, err)

	require.NoError(t, store.Create(&event.Event{ID: "e1", GameID: "g1", EventType: "GOAL"}))
	require.NoError(t, store.Create(&event.Event{ID: "e2", GameID: "g1", EventType: "PENALTY"}))
	require.NoError(t, store.Create(&event.Event{ID: "e3", GameID: "g2", EventType: "GOAL"}))

	all, err := store.List(event.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byGame, err := store.List(event.ListFilter{GameID: "g1"})
	require.NoError(t, err)
	assert.Len(t, byGame, 2)

	byType, err := store.List(event.ListFilter{EventType: "GOAL"})
	require.NoError(t, err)
	assert.Len(t, byType, 2)

	both, err := store.List(event.ListFilter{GameID: "g1", EventType: "GOAL"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "e1", both[0].ID)

	limited, err := store.List(event.ListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestUpdate_DatabaseFailure(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.Create(&event.Event{ID: "e1", GameID: "g1", EventType: "GOAL"}))
	require.NoError(t, db.Close())

	err := store.Update("e1", map[string]any{"description": "x"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err), "a storage failure is not a validation error")
}

func TestUpdate_NoFields(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.Create(&event.Event{ID: "e1", GameID: "g1", EventType: "GOAL"}))
	err := store.Update("e1", map[string]any{"notAColumn": "x"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	err = store.Update("ghost", map[string]any{"description": "x"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
