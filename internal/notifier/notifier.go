package notifier

// Broadcast is the channel-agnostic payload for an event announcement. It is
// also the message body published to the event-broadcast topic.
type Broadcast struct {
	EventID       string `json:"eventId"`
	GameID        string `json:"gameId"`
	EventType     string `json:"eventType"`
	Text          string `json:"text"`
	HomeTeamName  string `json:"homeTeamName"`
	AwayTeamName  string `json:"awayTeamName"`
	HomeScore     int    `json:"homeScore"`
	AwayScore     int    `json:"awayScore"`
	PeriodLabel   string `json:"periodLabel"`
	TimeRemaining string `json:"timeRemaining"`
}

// Notifier delivers event broadcasts to an external channel.
type Notifier interface {
	SendEventBroadcast(b *Broadcast, dryRun bool) error
}
