package http

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/GoodPie/aihl-media-app/internal/auth"
	"github.com/GoodPie/aihl-media-app/internal/config"
	"github.com/GoodPie/aihl-media-app/internal/database"
	"github.com/GoodPie/aihl-media-app/internal/event"
	"github.com/GoodPie/aihl-media-app/internal/game"
	"github.com/GoodPie/aihl-media-app/internal/league"
	"github.com/GoodPie/aihl-media-app/internal/metrics"
	"github.com/GoodPie/aihl-media-app/internal/notifier"
	"github.com/GoodPie/aihl-media-app/internal/pubsub"
	"github.com/GoodPie/aihl-media-app/internal/template"
	"github.com/GoodPie/aihl-media-app/internal/textgen"
)

const testJWTSecret = "test-jwt-secret"

// setupTestServer initializes a new server with a test database and mock clients.
func setupTestServer(t *testing.T) (*Server, *notifier.MockNotifier, *pubsub.MockPubSubClient, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	cfg := config.Config{
		Version: "test",
		Auth:    config.AuthConfig{JWTSecret: testJWTSecret},
		Broadcast: config.BroadcastConfig{
			HomeTeamName: "Perth Thunder",
			DefaultVenue: "Perth Ice Arena",
		},
	}

	leagueStore := league.New(db)
	gameStore := game.NewStore(db)
	templateStore := template.New(db)
	eventStore := event.NewStore(db)

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)
	pubsubMock := pubsub.NewMock("TEST")
	notifierMock := notifier.NewMock()
	authSvc := auth.NewService(cfg.Auth.JWTSecret, time.Hour)

	games := game.NewService(gameStore, leagueStore)
	generator := textgen.New(templateStore, gameStore, cfg.Broadcast)
	events := event.NewService(eventStore, games, leagueStore, generator, pubsubMock, metricsSvc)

	server := NewServer(leagueStore, games, events, templateStore, metricsSvc, metricsHandler, cfg, notifierMock, authSvc, pubsubMock)

	teardown := func() {
		if dbTeardown != nil {
			dbTeardown()
		}
		db.Close()
	}
	return server, notifierMock, pubsubMock, teardown
}

func authToken(t *testing.T) string {
	t.Helper()
	svc := auth.NewService(testJWTSecret, time.Hour)
	token, err := svc.GenerateToken("test-user", auth.RoleOperator, time.Hour)
	require.NoError(t, err)
	return token
}

// doJSON performs an authenticated JSON request against the server.
func doJSON(t *testing.T, server *Server, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+authToken(t))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func TestStatusHandler(t *testing.T) {
	server, _, _, teardown := setupTestServer(t)
	defer teardown()

	req := httptest.NewRequest("GET", "/status", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])
}

func TestAuthRequired(t *testing.T) {
	server, _, _, teardown := setupTestServer(t)
	defer teardown()

	req := httptest.NewRequest("GET", "/teams", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest("GET", "/teams", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, server, "GET", "/teams", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptionsShortCircuits(t *testing.T) {
	server, _, _, teardown := setupTestServer(t)
	defer teardown()

	req := httptest.NewRequest("OPTIONS", "/games", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Body.String())
}

func TestCategoriesReadableWithoutAuth(t *testing.T) {
	server, _, _, teardown := setupTestServer(t)
	defer teardown()

	req := httptest.NewRequest("GET", "/categories", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Writes still require a token.
	req = httptest.NewRequest("POST", "/categories", strings.NewReader(`{"name":"Goals"}`))
	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestErrorEnvelope(t *testing.T) {
	server, _, _, teardown := setupTestServer(t)
	defer teardown()

	rec := doJSON(t, server, "GET", "/games/ghost", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "NotFoundError", body["errorType"])
	assert.NotEmpty(t, body["message"])
}

func createTestTeams(t *testing.T, server *Server) (string, string) {
	t.Helper()

	rec := doJSON(t, server, "POST", "/teams", map[string]string{"teamName": "Perth Thunder"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	home := decodeBody[league.Team](t, rec)

	rec = doJSON(t, server, "POST", "/teams", map[string]string{"teamName": "Melbourne Ice"})
	require.Equal(t, http.StatusCreated, rec.Code)
	away := decodeBody[league.Team](t, rec)

	return home.ID, away.ID
}

func TestGameLifecycle(t *testing.T) {
	server, _, pubsubMock, teardown := setupTestServer(t)
	defer teardown()

	homeID, awayID := createTestTeams(t, server)

	rec := doJSON(t, server, "POST", "/games", map[string]string{
		"homeTeamId": homeID,
		"awayTeamId": awayID,
		"gameDate":   "2026-06-01",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	g := decodeBody[game.Game](t, rec)
	assert.Equal(t, game.StatusScheduled, g.Status)
	assert.Equal(t, 0, g.HomeScore)
	assert.Equal(t, 1, g.CurrentPeriod)
	assert.Equal(t, "20:00", g.CurrentGameTime)

	// Mutating a scheduled game fails.
	rec = doJSON(t, server, "PUT", "/games/"+g.ID+"/update-score", map[string]int{"homeScore": 1})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "StateError", decodeBody[map[string]string](t, rec)["errorType"])

	rec = doJSON(t, server, "PUT", "/games/"+g.ID+"/start", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	g = decodeBody[game.Game](t, rec)
	assert.Equal(t, game.StatusInProgress, g.Status)

	// Starting again fails.
	rec = doJSON(t, server, "PUT", "/games/"+g.ID+"/start", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// A home-side goal bumps the score and publishes a broadcast.
	rec = doJSON(t, server, "POST", "/events", map[string]string{
		"gameId":    g.ID,
		"eventType": "GOAL",
		"teamId":    homeID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	ev := decodeBody[event.Event](t, rec)
	assert.Equal(t, 1, ev.HomeScore)
	assert.Equal(t, 0, ev.AwayScore)
	assert.Len(t, pubsubMock.SendMessageCalls, 1)

	rec = doJSON(t, server, "GET", "/games/"+g.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	g = decodeBody[game.Game](t, rec)
	assert.Equal(t, 1, g.HomeScore)

	// Three period advances from 1 land in overtime with the short clock.
	for i := 0; i < 3; i++ {
		rec = doJSON(t, server, "PUT", "/games/"+g.ID+"/next-period", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	g = decodeBody[game.Game](t, rec)
	assert.Equal(t, 4, g.CurrentPeriod)
	assert.Equal(t, "5:00", g.CurrentGameTime)

	rec = doJSON(t, server, "PUT", "/games/"+g.ID+"/next-period", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, server, "PUT", "/games/"+g.ID+"/next-period", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "StateError", decodeBody[map[string]string](t, rec)["errorType"])

	rec = doJSON(t, server, "PUT", "/games/"+g.ID+"/stop", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	g = decodeBody[game.Game](t, rec)
	assert.Equal(t, game.StatusCompleted, g.Status)
}

func TestUpdateTimeValidation(t *testing.T) {
	server, _, _, teardown := setupTestServer(t)
	defer teardown()

	homeID, awayID := createTestTeams(t, server)
	rec := doJSON(t, server, "POST", "/games", map[string]string{
		"homeTeamId": homeID, "awayTeamId": awayID, "gameDate": "2026-06-01",
	})
	g := decodeBody[game.Game](t, rec)
	doJSON(t, server, "PUT", "/games/"+g.ID+"/start", nil)

	rec = doJSON(t, server, "PUT", "/games/"+g.ID+"/update-time", map[string]string{"currentGameTime": "12:99"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ValidationError", decodeBody[map[string]string](t, rec)["errorType"])

	rec = doJSON(t, server, "PUT", "/games/"+g.ID+"/update-time", map[string]string{"currentGameTime": "12:45"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "12:45", decodeBody[game.Game](t, rec).CurrentGameTime)
}

func TestGenerateTextAction(t *testing.T) {
	server, _, _, teardown := setupTestServer(t)
	defer teardown()

	rec := doJSON(t, server, "POST", "/templates", map[string]any{
		"eventType": "GOAL",
		"text":      "GOAL! {{playerName}} scores for {{team}}!",
		"isDefault": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, server, "POST", "/events?action=generate-text", map[string]any{
		"eventType":  "GOAL",
		"playerName": "Jamie Woodman",
		"teamName":   "Perth Thunder",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	result := decodeBody[textgen.Result](t, rec)
	assert.Equal(t, "GOAL! Jamie Woodman scores for Perth Thunder!", result.Text)

	// No template for the type is a hard failure on the direct endpoint.
	rec = doJSON(t, server, "POST", "/events?action=generate-text", map[string]any{"eventType": "FIGHT"})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NoTemplateError", decodeBody[map[string]string](t, rec)["errorType"])
}

func TestSetDefaultTemplateEndpoint(t *testing.T) {
	server, _, _, teardown := setupTestServer(t)
	defer teardown()

	rec := doJSON(t, server, "POST", "/categories", map[string]string{"name": "Goals"})
	require.Equal(t, http.StatusCreated, rec.Code)
	cat := decodeBody[template.Category](t, rec)

	rec = doJSON(t, server, "POST", "/templates", map[string]any{
		"categoryId": cat.ID, "eventType": "GOAL", "text": "a", "isDefault": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	tplA := decodeBody[template.Template](t, rec)

	rec = doJSON(t, server, "POST", "/templates", map[string]any{
		"categoryId": cat.ID, "eventType": "GOAL", "text": "b",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	tplB := decodeBody[template.Template](t, rec)

	rec = doJSON(t, server, "PUT", "/templates/"+tplB.ID+"/default", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[template.Template](t, rec).IsDefault)

	rec = doJSON(t, server, "GET", "/templates/"+tplA.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeBody[template.Template](t, rec).IsDefault)
}

func TestBroadcastPushHandler(t *testing.T) {
	server, notifierMock, _, teardown := setupTestServer(t)
	defer teardown()

	broadcast := notifier.Broadcast{
		EventID:      "e1",
		EventType:    "GOAL",
		Text:         "GOAL! Scored by #17 Jamie Woodman!",
		HomeTeamName: "Perth Thunder",
		AwayTeamName: "Melbourne Ice",
		HomeScore:    1,
	}
	raw, err := msgpack.Marshal(&broadcast)
	require.NoError(t, err)

	envelope := fmt.Sprintf(`{"subscription":"test-sub","message":{"data":%q}}`, base64.StdEncoding.EncodeToString(raw))
	req := httptest.NewRequest("POST", "/pubsub/broadcast", strings.NewReader(envelope))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Len(t, notifierMock.SendEventBroadcastCalls, 1)
	got := notifierMock.SendEventBroadcastCalls[0]
	assert.Equal(t, "e1", got.EventID)
	assert.Equal(t, "GOAL! Scored by #17 Jamie Woodman!", got.Text)
}

func TestBroadcastPushHandler_BadEnvelope(t *testing.T) {
	server, notifierMock, _, teardown := setupTestServer(t)
	defer teardown()

	req := httptest.NewRequest("POST", "/pubsub/broadcast", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest("POST", "/pubsub/broadcast", strings.NewReader(`{"message":{"data":"!!!"}}`))
	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, notifierMock.SendEventBroadcastCalls)
}

func TestPlayerCRUD(t *testing.T) {
	server, _, _, teardown := setupTestServer(t)
	defer teardown()

	homeID, _ := createTestTeams(t, server)

	rec := doJSON(t, server, "POST", "/players", map[string]string{
		"teamId": homeID, "playerName": "Jamie Woodman", "jerseyNumber": "17", "position": "forward",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	p := decodeBody[league.Player](t, rec)

	rec = doJSON(t, server, "GET", "/teams/"+homeID+"/players", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	roster := decodeBody[[]league.Player](t, rec)
	require.Len(t, roster, 1)
	assert.Equal(t, "Jamie Woodman", roster[0].Name)

	rec = doJSON(t, server, "PUT", "/players/"+p.ID, map[string]string{"jerseyNumber": "19"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "19", decodeBody[league.Player](t, rec).JerseyNumber)

	// Unknown team on create is a reference failure.
	rec = doJSON(t, server, "POST", "/players", map[string]string{"teamId": "ghost", "playerName": "X"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ReferenceError", decodeBody[map[string]string](t, rec)["errorType"])

	rec = doJSON(t, server, "DELETE", "/players/"+p.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, server, "GET", "/players/"+p.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
