package http

import (
	"net/http"

	"github.com/GoodPie/aihl-media-app/internal/auth"
	"github.com/GoodPie/aihl-media-app/internal/config"
	"github.com/GoodPie/aihl-media-app/internal/event"
	"github.com/GoodPie/aihl-media-app/internal/game"
	"github.com/GoodPie/aihl-media-app/internal/league"
	"github.com/GoodPie/aihl-media-app/internal/metrics"
	"github.com/GoodPie/aihl-media-app/internal/notifier"
	"github.com/GoodPie/aihl-media-app/internal/pubsub"
	"github.com/GoodPie/aihl-media-app/internal/template"
)

func NewServer(leagueStore league.Store, games *game.Service, events *event.Service, templates template.Store, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notif notifier.Notifier, authSvc auth.Service, pubsubClient pubsub.PubSubClient) *Server {
	server := &Server{
		League:         leagueStore,
		Games:          games,
		Events:         events,
		Templates:      templates,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notif,
		Auth:           authSvc,
		Router:         http.NewServeMux(),
		pubsub:         pubsubClient,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// Writes require a bearer token; health, metrics, the Pub/Sub push
	// endpoint and category reads are public.
	authed := s.authMiddleware

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /status", Chain(s.StatusHandler(), paramsMiddleware))
	s.Router.Handle("POST /pubsub/broadcast", Chain(s.BroadcastPushHandler(), paramsMiddleware))

	s.Router.Handle("GET /teams", Chain(s.ListTeamsHandler(), paramsMiddleware, authed))
	s.Router.Handle("POST /teams", Chain(s.CreateTeamHandler(), paramsMiddleware, authed))
	s.Router.Handle("GET /teams/{teamID}", Chain(s.GetTeamHandler(), paramsMiddleware, authed))
	s.Router.Handle("PUT /teams/{teamID}", Chain(s.UpdateTeamHandler(), paramsMiddleware, authed))
	s.Router.Handle("DELETE /teams/{teamID}", Chain(s.DeleteTeamHandler(), paramsMiddleware, authed))
	s.Router.Handle("GET /teams/{teamID}/players", Chain(s.ListTeamPlayersHandler(), paramsMiddleware, authed))

	s.Router.Handle("GET /players", Chain(s.ListPlayersHandler(), paramsMiddleware, authed))
	s.Router.Handle("POST /players", Chain(s.CreatePlayerHandler(), paramsMiddleware, authed))
	s.Router.Handle("GET /players/{playerID}", Chain(s.GetPlayerHandler(), paramsMiddleware, authed))
	s.Router.Handle("PUT /players/{playerID}", Chain(s.UpdatePlayerHandler(), paramsMiddleware, authed))
	s.Router.Handle("DELETE /players/{playerID}", Chain(s.DeletePlayerHandler(), paramsMiddleware, authed))

	s.Router.Handle("GET /games", Chain(s.ListGamesHandler(), paramsMiddleware, authed))
	s.Router.Handle("POST /games", Chain(s.CreateGameHandler(), paramsMiddleware, authed))
	s.Router.Handle("GET /games/{gameID}", Chain(s.GetGameHandler(), paramsMiddleware, authed))
	s.Router.Handle("PUT /games/{gameID}", Chain(s.UpdateGameHandler(), paramsMiddleware, authed))
	s.Router.Handle("DELETE /games/{gameID}", Chain(s.DeleteGameHandler(), paramsMiddleware, authed))
	s.Router.Handle("PUT /games/{gameID}/start", Chain(s.StartGameHandler(), paramsMiddleware, authed))
	s.Router.Handle("PUT /games/{gameID}/stop", Chain(s.StopGameHandler(), paramsMiddleware, authed))
	s.Router.Handle("PUT /games/{gameID}/update-score", Chain(s.UpdateScoreHandler(), paramsMiddleware, authed))
	s.Router.Handle("PUT /games/{gameID}/update-time", Chain(s.UpdateTimeHandler(), paramsMiddleware, authed))
	s.Router.Handle("PUT /games/{gameID}/next-period", Chain(s.NextPeriodHandler(), paramsMiddleware, authed))

	s.Router.Handle("GET /events", Chain(s.ListEventsHandler(), paramsMiddleware, authed))
	s.Router.Handle("POST /events", Chain(s.CreateEventHandler(), paramsMiddleware, authed))
	s.Router.Handle("GET /events/{eventID}", Chain(s.GetEventHandler(), paramsMiddleware, authed))
	s.Router.Handle("PUT /events/{eventID}", Chain(s.UpdateEventHandler(), paramsMiddleware, authed))
	s.Router.Handle("DELETE /events/{eventID}", Chain(s.DeleteEventHandler(), paramsMiddleware, authed))

	s.Router.Handle("GET /templates", Chain(s.ListTemplatesHandler(), paramsMiddleware, authed))
	s.Router.Handle("POST /templates", Chain(s.CreateTemplateHandler(), paramsMiddleware, authed))
	s.Router.Handle("GET /templates/{templateID}", Chain(s.GetTemplateHandler(), paramsMiddleware, authed))
	s.Router.Handle("PUT /templates/{templateID}", Chain(s.UpdateTemplateHandler(), paramsMiddleware, authed))
	s.Router.Handle("DELETE /templates/{templateID}", Chain(s.DeleteTemplateHandler(), paramsMiddleware, authed))
	s.Router.Handle("PUT /templates/{templateID}/default", Chain(s.SetDefaultTemplateHandler(), paramsMiddleware, authed))

	s.Router.Handle("GET /categories", Chain(s.ListCategoriesHandler(), paramsMiddleware))
	s.Router.Handle("POST /categories", Chain(s.CreateCategoryHandler(), paramsMiddleware, authed))
	s.Router.Handle("GET /categories/{categoryID}", Chain(s.GetCategoryHandler(), paramsMiddleware))
	s.Router.Handle("PUT /categories/{categoryID}", Chain(s.UpdateCategoryHandler(), paramsMiddleware, authed))
	s.Router.Handle("DELETE /categories/{categoryID}", Chain(s.DeleteCategoryHandler(), paramsMiddleware, authed))

	s.Router.Handle("GET /variables", Chain(s.ListVariablesHandler(), paramsMiddleware, authed))
	s.Router.Handle("POST /variables", Chain(s.CreateVariableHandler(), paramsMiddleware, authed))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	corsMiddleware(s.Router).ServeHTTP(w, r)
}
