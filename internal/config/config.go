package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	Store     StoreConfig     `yaml:"store"`
	Document  DocumentConfig  `yaml:"document"`
	Reminder  ReminderConfig  `yaml:"reminder"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"` // "stdio" or "http"
}

type StoreConfig struct {
	// Backend selects persistence: "sqlite", "file" or "memory".
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

type DocumentConfig struct {
	// Path of the manuscript file sampled by update_progress.
	Path string `yaml:"path"`
}

type ReminderConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Transport: TransportConfig{
			Mode: "stdio",
		},
		Store: StoreConfig{
			Backend: "sqlite",
			Path:    "penlight.db",
		},
		Document: DocumentConfig{
			Path: "manuscript.md",
		},
		Reminder: ReminderConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("PENLIGHT_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("PENLIGHT_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("PENLIGHT_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PENLIGHT_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if mode := os.Getenv("PENLIGHT_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if backend := os.Getenv("PENLIGHT_STORE_BACKEND"); backend != "" {
		cfg.Store.Backend = backend
	}
	if path := os.Getenv("PENLIGHT_STORE_PATH"); path != "" {
		cfg.Store.Path = path
	}
	if path := os.Getenv("PENLIGHT_DOCUMENT_PATH"); path != "" {
		cfg.Document.Path = path
	}
	if level := os.Getenv("PENLIGHT_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Transport.Mode {
	case "stdio", "http":
	default:
		return fmt.Errorf("invalid transport mode %q", c.Transport.Mode)
	}
	switch c.Store.Backend {
	case "sqlite", "file", "memory":
	default:
		return fmt.Errorf("invalid store backend %q", c.Store.Backend)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
