package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeConfig writes a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "client.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

// =============================================================================
// Load Tests
// =============================================================================

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
broker:
  host: "mqtt.example.org"
  port: 8883
  tls: true
  client_id: "my-device"
auth:
  username: "device"
  password: "secret"
qos: 2
keep_alive: 10
logging:
  level: "debug"
  format: "text"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Broker.Host != "mqtt.example.org" || cfg.Broker.Port != 8883 || !cfg.Broker.TLS {
		t.Errorf("Broker = %+v", cfg.Broker)
	}
	if cfg.Auth.Username != "device" || cfg.Auth.Password != "secret" {
		t.Errorf("Auth = %+v", cfg.Auth)
	}
	if cfg.QoS != 2 {
		t.Errorf("QoS = %d, want 2", cfg.QoS)
	}
	if cfg.KeepAlive != 10 {
		t.Errorf("KeepAlive = %d, want 10", cfg.KeepAlive)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
broker:
  host: "mqtt.example.org"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Broker.Port != 1883 {
		t.Errorf("Broker.Port = %d, want default 1883", cfg.Broker.Port)
	}
	if cfg.QoS != 1 {
		t.Errorf("QoS = %d, want default 1", cfg.QoS)
	}
	if cfg.Reconnect.InitialDelay != 1 || cfg.Reconnect.MaxDelay != 60 {
		t.Errorf("Reconnect = %+v, want defaults", cfg.Reconnect)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want default json", cfg.Logging.Format)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "broker: [not a mapping")
	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DITTO_MQTT_HOST", "env.example.org")
	t.Setenv("DITTO_MQTT_CLIENT_ID", "env-client")
	t.Setenv("DITTO_MQTT_USERNAME", "env-user")
	t.Setenv("DITTO_MQTT_PASSWORD", "env-pass")

	path := writeConfig(t, `
broker:
  host: "file.example.org"
  client_id: "file-client"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Broker.Host != "env.example.org" {
		t.Errorf("Broker.Host = %q, env override not applied", cfg.Broker.Host)
	}
	if cfg.Broker.ClientID != "env-client" {
		t.Errorf("Broker.ClientID = %q", cfg.Broker.ClientID)
	}
	if cfg.Auth.Username != "env-user" || cfg.Auth.Password != "env-pass" {
		t.Errorf("Auth = %+v", cfg.Auth)
	}
}

// =============================================================================
// Validation Tests
// =============================================================================

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr string
	}{
		{"valid defaults", func(c *Config) {}, ""},
		{"missing host", func(c *Config) { c.Broker.Host = "" }, "broker.host"},
		{"port too low", func(c *Config) { c.Broker.Port = 0 }, "broker.port"},
		{"port too high", func(c *Config) { c.Broker.Port = 70000 }, "broker.port"},
		{"invalid qos", func(c *Config) { c.QoS = 3 }, "qos"},
		{"zero keep alive", func(c *Config) { c.KeepAlive = 0 }, "keep_alive"},
		{"max delay below initial", func(c *Config) { c.Reconnect.MaxDelay = 0 }, "reconnect"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestGetKeepAlive(t *testing.T) {
	cfg := Default()
	cfg.KeepAlive = 45
	if got := cfg.GetKeepAlive(); got != 45*time.Second {
		t.Errorf("GetKeepAlive() = %v, want 45s", got)
	}
}
