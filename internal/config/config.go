package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env      string `mapstructure:"env"`       // current application environment (local, dev, prod etc)
	DeckPath string `mapstructure:"deck_path"` // path to a deck JSON document; empty means the built-in deck
	Strategy string `mapstructure:"strategy"`  // card presentation order: "linear" or "shuffle"
	LogFile  string `mapstructure:"log_file"`  // file session logs are written to; empty disables logging
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.config/flip")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("deck_path", "")
	v.SetDefault("strategy", "linear")
	v.SetDefault("log_file", "")

	// Configure environment variable handling and key mapping.
	v.SetEnvPrefix("flip")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("deck_path", "FLIP_DECK")
	_ = v.BindEnv("log_file", "FLIP_LOG_FILE")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
