package game

import "sync"

// MockStore is a mock implementation of the GameStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	CreateFunc func(g *Game) error
	GetFunc    func(gameID string) (*Game, error)
	UpdateFunc func(gameID string, fields map[string]any) error
	DeleteFunc func(gameID string) error
	ListFunc   func(filter ListFilter) ([]Game, error)

	CreateCalls []*Game
	UpdateCalls []struct {
		GameID string
		Fields map[string]any
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Create(g *Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls = append(m.CreateCalls, g)
	if m.CreateFunc != nil {
		return m.CreateFunc(g)
	}
	return nil
}

func (m *MockStore) Get(gameID string) (*Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(gameID)
	}
	return nil, nil
}

func (m *MockStore) Update(gameID string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls = append(m.UpdateCalls, struct {
		GameID string
		Fields map[string]any
	}{gameID, fields})
	if m.UpdateFunc != nil {
		return m.UpdateFunc(gameID, fields)
	}
	return nil
}

func (m *MockStore) Delete(gameID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteFunc != nil {
		return m.DeleteFunc(gameID)
	}
	return nil
}

func (m *MockStore) List(filter ListFilter) ([]Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListFunc != nil {
		return m.ListFunc(filter)
	}
	return nil, nil
}
