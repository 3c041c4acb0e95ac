package config

import (
	"strings"

	"github.com/spf13/viper"
	"gorm.io/gorm/logger"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Import
		UI
	}

	HTTP struct {
		Port            int32
		Host            string
		CORSAllowOrigin string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
		LogLevel                 string
	}
	Database struct {
		URL          string
		MaxOpenConns int
	}
	Import struct {
		InitFrom string // JSON quote file imported before serving
		Schedule string // Cron format: "0 * * * *" = hourly re-import of InitFrom
	}
	UI struct {
		StaticPath string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("cors_allow_origin", "*")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("log_level", "warn")
	v.SetDefault("database_url", DefaultDatabaseURL)
	v.SetDefault("db_max_open_conns", 10)
	v.SetDefault("init_from", "")
	v.SetDefault("import_schedule", "")
	v.SetDefault("static_path", DefaultStaticPath)

	return &Config{
		HTTP: HTTP{
			Port:            v.GetInt32("PORT"),
			Host:            v.GetString("HOST"),
			CORSAllowOrigin: v.GetString("CORS_ALLOW_ORIGIN"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
			LogLevel:                 v.GetString("LOG_LEVEL"),
		},
		Database: Database{
			URL:          v.GetString("DATABASE_URL"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		},
		Import: Import{
			InitFrom: v.GetString("INIT_FROM"),
			Schedule: v.GetString("IMPORT_SCHEDULE"),
		},
		UI: UI{
			StaticPath: v.GetString("STATIC_PATH"),
		},
	}
}

// GormLogLevel maps LOG_LEVEL onto gorm's logger levels. Unknown values fall back to warn.
func (c *Config) GormLogLevel() logger.LogLevel {
	switch strings.ToLower(c.LogLevel) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
