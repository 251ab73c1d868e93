package event

import "sync"

// MockStore is a mock implementation of the EventStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	CreateFunc func(ev *Event) error
	GetFunc    func(eventID string) (*Event, error)
	UpdateFunc func(eventID string, fields map[string]any) error
	DeleteFunc func(eventID string) error
	ListFunc   func(filter ListFilter) ([]Event, error)

	CreateCalls []*Event
	UpdateCalls []struct {
		EventID string
		Fields  map[string]any
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Create(ev *Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls = append(m.CreateCalls, ev)
	if m.CreateFunc != nil {
		return m.CreateFunc(ev)
	}
	return nil
}

func (m *MockStore) Get(eventID string) (*Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(eventID)
	}
	return nil, nil
}

func (m *MockStore) Update(eventID string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls = append(m.UpdateCalls, struct {
		EventID string
		Fields  map[string]any
	}{eventID, fields})
	if m.UpdateFunc != nil {
		return m.UpdateFunc(eventID, fields)
	}
	return nil
}

func (m *MockStore) Delete(eventID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteFunc != nil {
		return m.DeleteFunc(eventID)
	}
	return nil
}

func (m *MockStore) List(filter ListFilter) ([]Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListFunc != nil {
		return m.ListFunc(filter)
	}
	return nil, nil
}
