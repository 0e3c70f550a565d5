package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/aoc.yaml"

// Config represents the solver service configuration file.
type Config struct {
	InputsDir string    `yaml:"inputs_dir"`
	LogLevel  string    `yaml:"log_level"`
	API       APIConfig `yaml:"api"`
	MCP       MCPConfig `yaml:"mcp"`
}

type APIConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type MCPConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default is used when no config file is present.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.InputsDir == "" {
		cfg.InputsDir = "data"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.API.Port == "" {
		cfg.API.Port = "18082"
	}
	if len(cfg.API.AllowedOrigins) == 0 {
		cfg.API.AllowedOrigins = []string{"*"}
	}
	if cfg.MCP.Name == "" {
		cfg.MCP.Name = "aoc-solver"
	}
	if cfg.MCP.Version == "" {
		cfg.MCP.Version = "1.0.0"
	}
}

func (c *Config) Validate() error {
	for _, r := range c.API.Port {
		if r < '0' || r > '9' {
			return fmt.Errorf("invalid api port %q", c.API.Port)
		}
	}
	return nil
}
