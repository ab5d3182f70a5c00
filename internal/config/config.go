package config

import (
	"fmt"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Environment variables that override values from the configuration file.
const (
	EnvAPIKey   = "TRELLO_API_KEY"
	EnvToken    = "TRELLO_TOKEN"
	EnvBoardID  = "TRELLO_BOARD_ID"
	EnvLogLevel = "TRELLOBOARD_LOG_LEVEL"
)

// Config represents the entire YAML configuration.
type Config struct {
	Trello   TrelloConfig `yaml:"trello" json:"trello"`
	LogLevel string       `yaml:"logLevel" json:"logLevel"`
}

// TrelloConfig holds the board identity, credentials and transport settings.
type TrelloConfig struct {
	APIKey        string        `yaml:"apiKey" json:"-"`
	Token         string        `yaml:"token" json:"-"`
	BoardID       string        `yaml:"boardId" json:"boardId"`
	BaseURL       string        `yaml:"baseUrl,omitempty" json:"baseUrl,omitempty"`
	AvatarBaseURL string        `yaml:"avatarBaseUrl,omitempty" json:"avatarBaseUrl,omitempty"`
	Timeout       time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty"`
	Concurrency   int           `yaml:"concurrency,omitempty" json:"concurrency,omitempty"`
}

// Validate checks the Trello section.
func (t TrelloConfig) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.APIKey, validation.Required.Error("is required (set "+EnvAPIKey+")")),
		validation.Field(&t.Token, validation.Required.Error("is required (set "+EnvToken+")")),
		validation.Field(&t.BoardID, validation.Required.Error("is required (set "+EnvBoardID+")")),
		validation.Field(&t.Timeout, validation.Min(time.Duration(0))),
		validation.Field(&t.Concurrency, validation.Min(0)),
	)
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Trello),
		validation.Field(&c.LogLevel, validation.In("trace", "debug", "info", "warn", "error", "off")),
	)
}

// ApplyEnv overrides configuration values with any set environment variables.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvAPIKey); ok {
		c.Trello.APIKey = v
	}
	if v, ok := os.LookupEnv(EnvToken); ok {
		c.Trello.Token = v
	}
	if v, ok := os.LookupEnv(EnvBoardID); ok {
		c.Trello.BoardID = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}
}

// ConfigProvider is an interface for loading a configuration.
type ConfigProvider interface {
	LoadConfig(path string) (*Config, error)
}

// Global references
var (
	provider     ConfigProvider
	loadedConfig *Config
	ErrNotLoaded = fmt.Errorf("configuration not loaded")
)

// SetProvider sets the configuration provider.
func SetProvider(p ConfigProvider) {
	provider = p
}

// Load uses the current provider to load configuration from the given path,
// applies environment overrides and validates the result.
// An empty path starts from an empty configuration, so the environment alone can configure the client.
func Load(path string) error {
	cfg := &Config{}
	if path != "" {
		if provider == nil {
			return fmt.Errorf("no config provider set")
		}
		var err error
		cfg, err = provider.LoadConfig(path)
		if err != nil {
			return err
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	loadedConfig = cfg
	return nil
}

func GetLoadedConfig() *Config {
	return loadedConfig
}

// GetTrelloConfig returns the Trello section of the loaded configuration.
func GetTrelloConfig() (TrelloConfig, error) {
	if loadedConfig == nil {
		return TrelloConfig{}, ErrNotLoaded
	}
	return loadedConfig.Trello, nil
}
