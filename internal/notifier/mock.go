package notifier

import "sync"

var _ Notifier = (*MockNotifier)(nil)

// MockNotifier is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type MockNotifier struct {
	mu sync.Mutex

	SendEventBroadcastFunc func(b *Broadcast, dryRun bool) error

	SendEventBroadcastCalls []*Broadcast
}

// NewMock creates a new mock instance.
func NewMock() *MockNotifier {
	return &MockNotifier{}
}

// Reset clears all call records.
func (m *MockNotifier) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendEventBroadcastCalls = nil
}

func (m *MockNotifier) SendEventBroadcast(b *Broadcast, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendEventBroadcastCalls = append(m.SendEventBroadcastCalls, b)
	if m.SendEventBroadcastFunc != nil {
		return m.SendEventBroadcastFunc(b, dryRun)
	}
	return nil
}
