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

type Server struct {
	League         league.Store
	Games          *game.Service
	Events         *event.Service
	Templates      template.Store
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Auth           auth.Service
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
