package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Name       string
	Port       string
	Debug      bool
	LogPath    string
	Production bool
}

type DatabaseConfig struct {
	URL         string
	MaxConns    int32
	MinConns    int32
	OpTimeout   time.Duration
	MaxAttempts int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "bus-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("PRODUCTION", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_MAX_ATTEMPTS", 3)

	// .env is optional, the process environment alone is enough
	if err := viper.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	production := viper.GetBool("PRODUCTION")

	config := &Config{
		App: AppConfig{
			Name:       viper.GetString("APP_NAME"),
			Port:       viper.GetString("PORT"),
			Debug:      viper.GetBool("DEBUG"),
			LogPath:    viper.GetString("LOG_PATH"),
			Production: production,
		},
		Database: DatabaseConfig{
			URL:         viper.GetString("DATABASE_URL"),
			MaxConns:    viper.GetInt32("DB_MAX_CONNS"),
			MaxAttempts: viper.GetInt("DB_MAX_ATTEMPTS"),
		},
	}

	// No embedded fallback credentials: an unset DATABASE_URL is fatal.
	if config.Database.URL == "" {
		return nil, errors.New("DATABASE_URL is required and has no default")
	}

	// Production gets a bigger pool and tighter per-operation deadlines.
	if production {
		if config.Database.MaxConns == 0 {
			config.Database.MaxConns = 20
		}
		config.Database.MinConns = 5
		config.Database.OpTimeout = 5 * time.Second
	} else {
		if config.Database.MaxConns == 0 {
			config.Database.MaxConns = 5
		}
		config.Database.MinConns = 1
		config.Database.OpTimeout = 15 * time.Second
	}

	return config, nil
}
