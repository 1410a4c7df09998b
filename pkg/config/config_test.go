package config

import (
	"os"
	"path/filepath"
	"testing"
)

func valid() *Config {
	cfg := &Config{}
	cfg.Telemetry.BrokerURL = "mqtt://broker:1883"
	Normalize(cfg)
	return cfg
}

// ---- tests ----

func TestValidate_Defaults(t *testing.T) {
	cfg := valid()
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Camera.Address != 0x2A {
		t.Fatalf("default address not applied: %#x", cfg.Camera.Address)
	}
	if cfg.Telemetry.IntervalMs != 10000 {
		t.Fatalf("default interval not applied: %d", cfg.Telemetry.IntervalMs)
	}
}

func TestValidate_AddressTooWide(t *testing.T) {
	cfg := valid()
	cfg.Camera.Address = 0x80
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for 8-bit address")
	}
}

func TestValidate_MissingBroker(t *testing.T) {
	cfg := valid()
	cfg.Telemetry.BrokerURL = ""
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for missing broker_url")
	}
}

func TestValidate_IntervalFloor(t *testing.T) {
	cfg := valid()
	cfg.Telemetry.IntervalMs = 50
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for sub-100ms interval")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lepmon.yaml")
	doc := `
camera:
  bus: "1"
  address: 0x2A
telemetry:
  broker_url: mqtt://broker:1883/cameras
  topic: lab/thermal
  interval_ms: 1000
stream:
  listen: ":9090"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Telemetry.Topic != "lab/thermal" {
		t.Fatalf("topic = %q", cfg.Telemetry.Topic)
	}
	if cfg.Stream.Listen != ":9090" {
		t.Fatalf("listen = %q", cfg.Stream.Listen)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lepmon.yaml")
	if err := os.WriteFile(path, []byte("camera: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
