package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the quiz client configuration.
type Config struct {
	ServerURL string            `yaml:"serverUrl"`
	UserUID   string            `yaml:"userUid"`
	Locale    string            `yaml:"locale"`
	Labels    map[string]string `yaml:"labels"`
}

// Load reads, parses, and validates a client config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize fills in defaults for optional fields.
func Normalize(cfg *Config) {
	if cfg.ServerURL == "" {
		cfg.ServerURL = "http://localhost:3001"
	}
	if cfg.Locale == "" {
		cfg.Locale = "en"
	}
}

// Validate reports the first configuration problem.
func Validate(cfg *Config) error {
	if cfg.UserUID == "" {
		return fmt.Errorf("config: userUid is required")
	}
	return nil
}
