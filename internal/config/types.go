package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Turso         TursoConfig
	Slack         SlackConfig
	Inngest       InngestConfig
	ProjectID     string
	// SweepCron is the crontab expression for expiring stale challenges.
	SweepCron string
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
type SlackConfig struct {
	Token     string
	ChannelID string
}
type InngestConfig struct {
	AppID      string
	SigningKey string
	EventKey   string
	// Dev points the SDK at a local Inngest dev server.
	Dev bool
}

// Enabled reports whether Slack notifications can be sent.
func (c SlackConfig) Enabled() bool {
	return c.Token != "" && c.ChannelID != ""
}

// Enabled reports whether the managed Inngest scheduler should be used.
func (c InngestConfig) Enabled() bool {
	return c.AppID != "" && (c.SigningKey != "" || c.Dev)
}
