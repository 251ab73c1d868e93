package textgen

// EventData carries everything the generator needs about an event. It is
// deliberately independent of the event package so both saved events and
// manual, unsaved event descriptions can be rendered.
type EventData struct {
	GameID          string
	EventType       string
	PlayerName      string
	PlayerNumber    string
	TeamName        string
	GameTime        string
	Period          int
	HomeScore       *int
	AwayScore       *int
	PenaltyType     string
	PenaltyDuration string
}

// Result is the outcome of a successful generation.
type Result struct {
	Text         string `json:"text"`
	TemplateID   string `json:"templateId"`
	TemplateName string `json:"templateName,omitempty"`
}
