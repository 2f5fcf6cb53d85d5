package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_NAME", "test.db")
	t.Setenv("PORT", "8080")
	t.Setenv("MIGRATIONS_DIR", "")
	t.Setenv("CHALLENGE_SWEEP_CRON", "")
	t.Setenv("SLACK_BOT_TOKEN", "")
	t.Setenv("INNGEST_APP_ID", "")

	cfg := Load()

	assert.Equal(t, "test.db", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, defaultMigrationsDir, cfg.MigrationsDir)
	assert.Equal(t, defaultSweepCron, cfg.SweepCron)
	assert.False(t, cfg.Slack.Enabled())
	assert.False(t, cfg.Inngest.Enabled())
}

func TestLoad_Optional(t *testing.T) {
	t.Setenv("DB_NAME", "test.db")
	t.Setenv("PORT", "9000")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-token")
	t.Setenv("SLACK_CHANNEL_ID", "C123")
	t.Setenv("INNGEST_APP_ID", "pingponghub")
	t.Setenv("INNGEST_SIGNING_KEY", "signkey-test")
	t.Setenv("CHALLENGE_SWEEP_CRON", "0 * * * *")
	t.Setenv("INNGEST_DEV", "1")

	cfg := Load()

	assert.True(t, cfg.Slack.Enabled())
	assert.True(t, cfg.Inngest.Enabled())
	assert.Equal(t, "0 * * * *", cfg.SweepCron)
	assert.True(t, cfg.Inngest.Dev)
}
