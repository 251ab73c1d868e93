package league

// Store defines the interface for interacting with team and player data.
// Lookups return (nil, nil) when the row does not exist; callers decide
// whether that is a NotFoundError or a ReferenceError.
type Store interface {
	CreateTeam(team *Team) error
	GetTeam(teamID string) (*Team, error)
	UpdateTeam(teamID string, fields map[string]any) error
	DeleteTeam(teamID string) error
	ListTeams() ([]Team, error)

	CreatePlayer(player *Player) error
	GetPlayer(playerID string) (*Player, error)
	UpdatePlayer(playerID string, fields map[string]any) error
	DeletePlayer(playerID string) error
	ListPlayers(teamID string) ([]Player, error)
}
