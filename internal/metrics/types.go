package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	EventsCreated       prometheus.Counter
	TextGenerated       prometheus.Counter
	TextGenFailed       prometheus.Counter
	SlackNotifSent      prometheus.Counter
	SlackNotifFailed    prometheus.Counter
	BroadcastsPublished prometheus.Counter
	EventDuration       prometheus.Histogram
	StartupTimeSeconds  prometheus.Gauge
}
