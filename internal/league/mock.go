package league

import "sync"

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	CreateTeamFunc   func(team *Team) error
	GetTeamFunc      func(teamID string) (*Team, error)
	UpdateTeamFunc   func(teamID string, fields map[string]any) error
	DeleteTeamFunc   func(teamID string) error
	ListTeamsFunc    func() ([]Team, error)
	CreatePlayerFunc func(player *Player) error
	GetPlayerFunc    func(playerID string) (*Player, error)
	UpdatePlayerFunc func(playerID string, fields map[string]any) error
	DeletePlayerFunc func(playerID string) error
	ListPlayersFunc  func(teamID string) ([]Player, error)

	GetTeamCalls   []string
	GetPlayerCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) CreateTeam(team *Team) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateTeamFunc != nil {
		return m.CreateTeamFunc(team)
	}
	return nil
}

func (m *MockStore) GetTeam(teamID string) (*Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetTeamCalls = append(m.GetTeamCalls, teamID)
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(teamID)
	}
	return nil, nil
}

func (m *MockStore) UpdateTeam(teamID string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateTeamFunc != nil {
		return m.UpdateTeamFunc(teamID, fields)
	}
	return nil
}

func (m *MockStore) DeleteTeam(teamID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteTeamFunc != nil {
		return m.DeleteTeamFunc(teamID)
	}
	return nil
}

func (m *MockStore) ListTeams() ([]Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc()
	}
	return nil, nil
}

func (m *MockStore) CreatePlayer(player *Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreatePlayerFunc != nil {
		return m.CreatePlayerFunc(player)
	}
	return nil
}

func (m *MockStore) GetPlayer(playerID string) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerCalls = append(m.GetPlayerCalls, playerID)
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(playerID)
	}
	return nil, nil
}

func (m *MockStore) UpdatePlayer(playerID string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdatePlayerFunc != nil {
		return m.UpdatePlayerFunc(playerID, fields)
	}
	return nil
}

func (m *MockStore) DeletePlayer(playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeletePlayerFunc != nil {
		return m.DeletePlayerFunc(playerID)
	}
	return nil
}

func (m *MockStore) ListPlayers(teamID string) ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc(teamID)
	}
	return nil, nil
}
