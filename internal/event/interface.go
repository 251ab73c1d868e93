package event

// EventStore defines the interface for interacting with event data.
// Get returns (nil, nil) when the row does not exist.
type EventStore interface {
	Create(ev *Event) error
	Get(eventID string) (*Event, error)
	Update(eventID string, fields map[string]any) error
	Delete(eventID string) error
	List(filter ListFilter) ([]Event, error)
}
