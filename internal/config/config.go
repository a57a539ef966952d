// Package config loads the scrambles-matcher configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SCRAMBLES_MATCHER_WCA_ACCESS_TOKEN.
const EnvPrefix = "SCRAMBLES_MATCHER"

// Config holds application configuration.
type Config struct {
	WCA    WCAConfig    `mapstructure:"wca"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

// WCAConfig holds WCA API settings.
type WCAConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	ClientID          string        `mapstructure:"client_id"`
	ClientSecret      string        `mapstructure:"client_secret"`
	RedirectURL       string        `mapstructure:"redirect_url"`
	AccessToken       string        `mapstructure:"access_token"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Timeout           time.Duration `mapstructure:"timeout"`
}

// ServerConfig holds HTTP import service settings.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	// RateLimit is the per-IP request rate in requests per second.
	RateLimit float64 `mapstructure:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File redirects logs to a file; the terminal UI requires it to log at all.
	File string `mapstructure:"file"`
}

// Load reads configuration from an optional .env file, the config file and
// the environment. An empty path searches the user config directory.
func Load(path string) (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("wca.base_url", "https://www.worldcubeassociation.org")
	v.SetDefault("wca.client_id", "")
	v.SetDefault("wca.client_secret", "")
	v.SetDefault("wca.redirect_url", "urn:ietf:wg:oauth:2.0:oob")
	v.SetDefault("wca.access_token", "")
	v.SetDefault("wca.requests_per_second", 5.0)
	v.SetDefault("wca.timeout", 30*time.Second)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.rate_limit", 5.0)
	v.SetDefault("server.rate_burst", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "scrambles-matcher"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit path must exist; the default location may not.
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// SlogLevel returns the configured log level, defaulting to info.
func (c LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}
