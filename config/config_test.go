package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Database.DSN)
	assert.Equal(t, 72*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "", cfg.Scheduler.PlanRefreshCron)
	assert.Equal(t, 10, cfg.News.DefaultLimit)
	assert.True(t, cfg.News.SeedOnStart)
	assert.Equal(t, "*", cfg.Cors.AllowedOrigin)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/nutriplan")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PLAN_REFRESH_CRON", "0 30 2 * * *")

	var cfg Config
	cfg.Server.Port = "8080"
	applyEnvOverrides(&cfg)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres://u:p@localhost:5432/nutriplan", cfg.Database.DSN)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, "0 30 2 * * *", cfg.Scheduler.PlanRefreshCron)
}
