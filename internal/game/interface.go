package game

// GameStore defines the persistence interface for games. Get returns
// (nil, nil) when the game does not exist.
type GameStore interface {
	Create(g *Game) error
	Get(gameID string) (*Game, error)
	Update(gameID string, fields map[string]any) error
	Delete(gameID string) error
	List(filter ListFilter) ([]Game, error)
}
