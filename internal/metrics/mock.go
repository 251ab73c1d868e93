package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a no-op Metrics implementation that records call counts for tests.
type Mock struct {
	mu sync.Mutex

	EventsCreatedCount       int
	TextGeneratedCount       int
	TextGenFailedCount       int
	SlackNotifSentCount      int
	SlackNotifFailedCount    int
	BroadcastsPublishedCount int
	EventDurations           []float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncEventsCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EventsCreatedCount++
}

func (m *Mock) IncTextGenerated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TextGeneratedCount++
}

func (m *Mock) IncTextGenFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TextGenFailedCount++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifSentCount++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifFailedCount++
}

func (m *Mock) IncBroadcastsPublished() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BroadcastsPublishedCount++
}

func (m *Mock) ObserveEventDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EventDurations = append(m.EventDurations, duration)
}

func (m *Mock) SetStartupTime(duration float64) {}
