package config

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	defaultMigrationsDir = "./migrations"
	defaultSweepCron     = "*/5 * * * *"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	cfg := Config{
		DBName:        getEnv("DB_NAME"),
		Port:          getEnv("PORT"),
		MigrationsDir: getEnvOrDefault("MIGRATIONS_DIR", defaultMigrationsDir),
		Turso: TursoConfig{
			PrimaryURL: os.Getenv("TURSO_PRIMARY_URL"),
			AuthToken:  os.Getenv("TURSO_AUTH_TOKEN"),
		},
		Slack: SlackConfig{
			Token:     os.Getenv("SLACK_BOT_TOKEN"),
			ChannelID: os.Getenv("SLACK_CHANNEL_ID"),
		},
		Inngest: InngestConfig{
			AppID:      os.Getenv("INNGEST_APP_ID"),
			SigningKey: os.Getenv("INNGEST_SIGNING_KEY"),
			EventKey:   os.Getenv("INNGEST_EVENT_KEY"),
			Dev:        os.Getenv("INNGEST_DEV") == "1",
		},
		ProjectID: os.Getenv("GCP_PROJECT"),
		SweepCron: getEnvOrDefault("CHALLENGE_SWEEP_CRON", defaultSweepCron),
	}
	return cfg
}

func getEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
