// Package config loads the monitor daemon configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Camera    CameraConfig    `yaml:"camera"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Stream    StreamConfig    `yaml:"stream"`
}

// ---- CAMERA ----

type CameraConfig struct {
	// Bus is the I2C bus name; empty selects the first available.
	Bus string `yaml:"bus"`
	// Address is the 7-bit device address; 0 selects the default.
	Address uint8 `yaml:"address"`
	SpeedHz int64 `yaml:"speed_hz"`
}

// ---- TELEMETRY ----

type TelemetryConfig struct {
	BrokerURL  string `yaml:"broker_url"`
	Topic      string `yaml:"topic"`
	IntervalMs int    `yaml:"interval_ms"`
}

// ---- STREAM ----

type StreamConfig struct {
	Listen string `yaml:"listen"`
}

// Load reads, normalizes and validates a configuration file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
