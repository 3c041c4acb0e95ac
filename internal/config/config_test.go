package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "HOST", "DATABASE_URL", "DB_MAX_OPEN_CONNS", "INIT_FROM",
		"IMPORT_SCHEDULE", "STATIC_PATH", "CORS_ALLOW_ORIGIN", "LOG_LEVEL",
		"SHUTDOWN_TIMEOUT_IN_SECONDS",
	} {
		t.Setenv(key, "")
	}

	cfg := NewConfig()

	assert.Equal(t, int32(3000), cfg.Port)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, "sqlite:db/quotes.db", cfg.Database.URL)
	assert.Equal(t, 10, cfg.MaxOpenConns)
	assert.Empty(t, cfg.InitFrom)
	assert.Empty(t, cfg.Schedule)
	assert.Equal(t, "./assets/static", cfg.StaticPath)
	assert.Equal(t, "*", cfg.CORSAllowOrigin)
	assert.Equal(t, 2, cfg.ShutdownTimeoutInSeconds)
	assert.Equal(t, logger.Warn, cfg.GormLogLevel())
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("DATABASE_URL", "sqlite:/tmp/q.db")
	t.Setenv("DB_MAX_OPEN_CONNS", "4")
	t.Setenv("INIT_FROM", "quotes.json")
	t.Setenv("IMPORT_SCHEDULE", "@hourly")
	t.Setenv("LOG_LEVEL", "silent")

	cfg := NewConfig()

	assert.Equal(t, int32(8080), cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "sqlite:/tmp/q.db", cfg.Database.URL)
	assert.Equal(t, 4, cfg.MaxOpenConns)
	assert.Equal(t, "quotes.json", cfg.InitFrom)
	assert.Equal(t, "@hourly", cfg.Schedule)
	assert.Equal(t, logger.Silent, cfg.GormLogLevel())
}

func TestGormLogLevel(t *testing.T) {
	tests := map[string]logger.LogLevel{
		"silent":  logger.Silent,
		"ERROR":   logger.Error,
		"warn":    logger.Warn,
		"info":    logger.Info,
		"verbose": logger.Warn,
	}
	for level, want := range tests {
		t.Run(level, func(t *testing.T) {
			cfg := &Config{Global: Global{LogLevel: level}}
			assert.Equal(t, want, cfg.GormLogLevel())
		})
	}
}
