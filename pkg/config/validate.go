package config

import (
	"fmt"
)

// Validate checks configuration correctness. It performs declarative
// validation only and MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg.Camera.Address > 0x7F {
		return fmt.Errorf(
			"config: camera address %#x does not fit 7 bits",
			cfg.Camera.Address,
		)
	}
	if cfg.Camera.SpeedHz < 0 {
		return fmt.Errorf("config: camera speed_hz must be >= 0")
	}
	if cfg.Telemetry.BrokerURL == "" {
		return fmt.Errorf("config: telemetry broker_url is required")
	}
	if cfg.Telemetry.IntervalMs < 100 {
		return fmt.Errorf(
			"config: telemetry interval_ms %d is below the 100ms floor",
			cfg.Telemetry.IntervalMs,
		)
	}
	return nil
}
