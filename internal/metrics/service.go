package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		EventsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "media_events_created_total",
			Help: "The total number of game events created.",
		}),
		TextGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "media_text_generations_total",
			Help: "The total number of successful broadcast text generations.",
		}),
		TextGenFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "media_text_generation_failures_total",
			Help: "The total number of failed broadcast text generations.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "media_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "media_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		BroadcastsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "media_broadcasts_published_total",
			Help: "The total number of event broadcasts published to Pub/Sub.",
		}),
		EventDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "media_event_creation_duration_seconds",
			Help:    "The duration of individual event creations.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "media_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.EventsCreated,
		s.TextGenerated,
		s.TextGenFailed,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.BroadcastsPublished,
		s.EventDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncEventsCreated() {
	s.EventsCreated.Inc()
}

func (s *Service) IncTextGenerated() {
	s.TextGenerated.Inc()
}

func (s *Service) IncTextGenFailed() {
	s.TextGenFailed.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) IncBroadcastsPublished() {
	s.BroadcastsPublished.Inc()
}

func (s *Service) ObserveEventDuration(duration float64) {
	s.EventDuration.Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
