package config

// Normalize fills defaults in place. It runs before Validate.
func Normalize(cfg *Config) {
	if cfg.Camera.Address == 0 {
		cfg.Camera.Address = 0x2A
	}
	if cfg.Telemetry.IntervalMs == 0 {
		cfg.Telemetry.IntervalMs = 10000
	}
	if cfg.Telemetry.Topic == "" {
		cfg.Telemetry.Topic = "camera/status"
	}
	if cfg.Stream.Listen == "" {
		cfg.Stream.Listen = ":8089"
	}
}
