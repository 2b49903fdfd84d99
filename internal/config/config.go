package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jjenkins/clients/internal/model"
)

// ConfigName is the base name of the config file searched for in the working directory
const ConfigName = "clients"

// Config holds the application configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store"`
	Feed   FeedConfig   `mapstructure:"feed"`
	Fields []FieldLabel `mapstructure:"fields"`
}

// ServerConfig configures the web server
type ServerConfig struct {
	Port              string        `mapstructure:"port"`
	SessionExpiration time.Duration `mapstructure:"session_expiration"`
}

// StoreConfig selects where client records come from
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// FeedConfig configures the remote client list feed used by import
type FeedConfig struct {
	URL        string        `mapstructure:"url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max_retries"`
}

// FieldLabel overrides the display label of a catalogue field
type FieldLabel struct {
	Value string `mapstructure:"value"`
	Label string `mapstructure:"label"`
}

// DriverMemory serves the built-in client list without a database
const DriverMemory = "memory"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.session_expiration", 30*time.Minute)
	v.SetDefault("store.driver", DriverMemory)
	v.SetDefault("store.dsn", "")
	v.SetDefault("feed.url", "")
	v.SetDefault("feed.timeout", 30*time.Second)
	v.SetDefault("feed.max_retries", 3)
}

// Default returns the configuration used when no file or environment overrides exist
func Default() *Config {
	cfg, _ := decode(newViper())
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("CLIENTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from path, or from clients.yaml in the working directory
// when path is empty. A missing default file is not an error.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the store driver and the field label overrides
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory:
	case "postgres", "sqlite":
		if c.Store.DSN == "" {
			return fmt.Errorf("store.dsn is required for driver %q", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	_, err := c.Catalogue()
	return err
}

// Catalogue returns the field catalogue with configured label overrides applied
func (c *Config) Catalogue() (model.Catalogue, error) {
	catalogue := model.DefaultCatalogue()

	overrides := make(map[string]string, len(c.Fields))
	for _, f := range c.Fields {
		if _, ok := catalogue.Lookup(f.Value); !ok {
			return nil, fmt.Errorf("fields: unknown field %q", f.Value)
		}
		overrides[f.Value] = f.Label
	}

	return catalogue.WithLabels(overrides), nil
}
