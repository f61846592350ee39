package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the complete server configuration.
// All fields must have explicit defaults or be required.
type Config struct {
	Server ServerConfig `yaml:"server"`
}

// ServerConfig defines HTTP server settings.
type ServerConfig struct {
	HealthPort    int   `yaml:"health_port"`     // Port for the /healthz endpoint
	HTTPPort      int   `yaml:"http_port"`       // Port for /api and /ws endpoints
	MaxUploadSize int64 `yaml:"max_upload_size"` // Maximum accepted request body, in bytes
}

// Load reads configuration from a YAML file.
// Returns an error if the file cannot be read or decoded.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields

	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

// setDefaults applies explicit default values to unset fields.
func (c *Config) setDefaults() {
	if c.Server.HealthPort == 0 {
		c.Server.HealthPort = 8080
	}
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8081
	}
	if c.Server.MaxUploadSize == 0 {
		c.Server.MaxUploadSize = 256 << 20 // 256 MiB
	}
}
