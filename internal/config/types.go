package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Version       string
	Turso         TursoConfig
	Auth          AuthConfig
	Slack         SlackConfig
	ProjectID     string
	Broadcast     BroadcastConfig
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type AuthConfig struct {
	JWTSecret string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

// BroadcastConfig holds the display defaults used when assembling
// text-generation contexts.
type BroadcastConfig struct {
	HomeTeamName string
	DefaultVenue string
}
