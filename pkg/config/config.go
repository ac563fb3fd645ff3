package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	User    UserConfig    `mapstructure:"user"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds the chatbot service endpoint configuration
type ServerConfig struct {
	URL        string        `mapstructure:"url"`
	Timeout    time.Duration `mapstructure:"-"`
	TimeoutStr string        `mapstructure:"timeout"`
}

// UserConfig identifies the portfolio owner on the backend
type UserConfig struct {
	ID string `mapstructure:"id"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	LogFile  string `mapstructure:"log_file"`
	Preserve bool   `mapstructure:"preserve"`
	Level    string `mapstructure:"level"`
}

// Global config instance
var cfg *Config

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		panic("config not initialized")
	}
	return cfg
}

// Load loads configuration from file and environment
func Load(cfgFile string) (*Config, error) {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome == "" {
			xdgConfigHome = filepath.Join(home, ".config")
		}

		viper.AddConfigPath("./.foliochat")
		viper.AddConfigPath(filepath.Join(xdgConfigHome, "foliochat"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("settings")
	}

	viper.AutomaticEnv()
	bindEnvironmentVariables()

	// Missing config file is fine, defaults apply.
	_ = viper.ReadInConfig()

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := processDurations(cfg); err != nil {
		return nil, fmt.Errorf("failed to process durations: %w", err)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.url", "http://localhost:8000")
	viper.SetDefault("server.timeout", "30s")

	viper.SetDefault("user.id", "default_user")

	viper.SetDefault("logging.log_file", "./.foliochat/system.log")
	viper.SetDefault("logging.preserve", false)
	viper.SetDefault("logging.level", "info")
}

func bindEnvironmentVariables() {
	viper.BindEnv("server.url", "FOLIOCHAT_SERVER_URL")
	viper.BindEnv("server.timeout", "FOLIOCHAT_SERVER_TIMEOUT")
	viper.BindEnv("user.id", "FOLIOCHAT_USER_ID")
	viper.BindEnv("logging.log_file", "FOLIOCHAT_LOG_FILE")
	viper.BindEnv("logging.level", "FOLIOCHAT_LOG_LEVEL")
	viper.BindEnv("logging.preserve", "FOLIOCHAT_LOG_PRESERVE")
}

// processDurations converts string durations to time.Duration (viper doesn't
// handle time.Duration directly)
func processDurations(cfg *Config) error {
	if cfg.Server.TimeoutStr != "" {
		d, err := time.ParseDuration(cfg.Server.TimeoutStr)
		if err != nil {
			return fmt.Errorf("invalid server.timeout: %w", err)
		}
		cfg.Server.Timeout = d
	} else if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	return nil
}

// GetConfigFileUsed returns the path to the config file being used
func GetConfigFileUsed() string {
	return viper.ConfigFileUsed()
}
