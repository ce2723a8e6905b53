package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	// Create a temporary config file
	content := `
hub:
  url: "http://192.168.1.10"
  username: "bridge"
  password: "secret"
database:
  path: "/tmp/test.db"
  wal_mode: true
  busy_timeout: 5
mqtt:
  broker:
    host: "localhost"
    port: 1883
    client_id: "test-client"
  qos: 1
devices:
  - name: "Kitchen light"
    ids: [12]
    characteristics: ["On", "Brightness"]
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Hub.URL != "http://192.168.1.10" {
		t.Errorf("Hub.URL = %q, want %q", cfg.Hub.URL, "http://192.168.1.10")
	}

	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "/tmp/test.db")
	}

	if cfg.MQTT.Broker.Host != "localhost" {
		t.Errorf("MQTT.Broker.Host = %q, want %q", cfg.MQTT.Broker.Host, "localhost")
	}

	if len(cfg.Devices) != 1 || cfg.Devices[0].Name != "Kitchen light" {
		t.Errorf("Devices = %+v, want one kitchen light binding", cfg.Devices)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("invalid: [yaml: content"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	content := `
hub:
  url: ""
database:
  path: "/tmp/test.db"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected validation error for empty hub.url, got nil")
	}
}

func TestConfig_Validate(t *testing.T) {
	validHub := HubConfig{
		URL:            "http://hc.local",
		Username:       "bridge",
		Password:       "secret",
		PollInterval:   10,
		RequestTimeout: 5,
	}

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: &Config{
				Hub:      validHub,
				Database: DatabaseConfig{Path: "/data/hcbridge.db"},
				MQTT:     MQTTConfig{QoS: 1},
			},
			wantErr: false,
		},
		{
			name: "missing hub URL",
			config: &Config{
				Hub:      HubConfig{Username: "bridge", Password: "secret", PollInterval: 10},
				Database: DatabaseConfig{Path: "/data/hcbridge.db"},
				MQTT:     MQTTConfig{QoS: 1},
			},
			wantErr: true,
		},
		{
			name: "missing hub credentials",
			config: &Config{
				Hub:      HubConfig{URL: "http://hc.local", PollInterval: 10},
				Database: DatabaseConfig{Path: "/data/hcbridge.db"},
				MQTT:     MQTTConfig{QoS: 1},
			},
			wantErr: true,
		},
		{
			name: "zero poll interval",
			config: &Config{
				Hub: HubConfig{
					URL: "http://hc.local", Username: "bridge", Password: "secret",
				},
				Database: DatabaseConfig{Path: "/data/hcbridge.db"},
				MQTT:     MQTTConfig{QoS: 1},
			},
			wantErr: true,
		},
		{
			name: "missing database path",
			config: &Config{
				Hub:      validHub,
				Database: DatabaseConfig{Path: ""},
				MQTT:     MQTTConfig{QoS: 1},
			},
			wantErr: true,
		},
		{
			name: "invalid QoS",
			config: &Config{
				Hub:      validHub,
				Database: DatabaseConfig{Path: "/data/hcbridge.db"},
				MQTT:     MQTTConfig{QoS: 3},
			},
			wantErr: true,
		},
		{
			name: "device without ids",
			config: &Config{
				Hub:      validHub,
				Database: DatabaseConfig{Path: "/data/hcbridge.db"},
				MQTT:     MQTTConfig{QoS: 1},
				Devices: []DeviceConfig{
					{Name: "broken", Characteristics: []string{"On"}},
				},
			},
			wantErr: true,
		},
		{
			name: "device without characteristics",
			config: &Config{
				Hub:      validHub,
				Database: DatabaseConfig{Path: "/data/hcbridge.db"},
				MQTT:     MQTTConfig{QoS: 1},
				Devices: []DeviceConfig{
					{Name: "broken", IDs: []int{3}},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_GetDurations(t *testing.T) {
	cfg := &Config{
		Hub: HubConfig{
			PollInterval:   10,
			RequestTimeout: 5,
		},
	}

	if got := cfg.GetPollInterval().Seconds(); got != 10 {
		t.Errorf("GetPollInterval() = %v, want 10", got)
	}

	if got := cfg.GetRequestTimeout().Seconds(); got != 5 {
		t.Errorf("GetRequestTimeout() = %v, want 5", got)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := defaultConfig()

	// Set environment variables
	t.Setenv("HCBRIDGE_HUB_URL", "http://hub.example.com")
	t.Setenv("HCBRIDGE_HUB_USERNAME", "envuser")
	t.Setenv("HCBRIDGE_HUB_PASSWORD", "envpass")
	t.Setenv("HCBRIDGE_DATABASE_PATH", "/custom/path.db")
	t.Setenv("HCBRIDGE_MQTT_HOST", "mqtt.example.com")
	t.Setenv("HCBRIDGE_MQTT_USERNAME", "testuser")
	t.Setenv("HCBRIDGE_MQTT_PASSWORD", "testpass")
	t.Setenv("HCBRIDGE_INFLUXDB_TOKEN", "secret-token")

	applyEnvOverrides(cfg)

	if cfg.Hub.URL != "http://hub.example.com" {
		t.Errorf("Hub.URL = %q, want %q", cfg.Hub.URL, "http://hub.example.com")
	}

	if cfg.Hub.Username != "envuser" || cfg.Hub.Password != "envpass" {
		t.Errorf("Hub credentials = %q/%q, want envuser/envpass", cfg.Hub.Username, cfg.Hub.Password)
	}

	if cfg.Database.Path != "/custom/path.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "/custom/path.db")
	}

	if cfg.MQTT.Broker.Host != "mqtt.example.com" {
		t.Errorf("MQTT.Broker.Host = %q, want %q", cfg.MQTT.Broker.Host, "mqtt.example.com")
	}

	if cfg.MQTT.Auth.Username != "testuser" {
		t.Errorf("MQTT.Auth.Username = %q, want %q", cfg.MQTT.Auth.Username, "testuser")
	}

	if cfg.MQTT.Auth.Password != "testpass" {
		t.Errorf("MQTT.Auth.Password = %q, want %q", cfg.MQTT.Auth.Password, "testpass")
	}

	if cfg.InfluxDB.Token != "secret-token" {
		t.Errorf("InfluxDB.Token = %q, want %q", cfg.InfluxDB.Token, "secret-token")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Hub.URL == "" {
		t.Error("defaultConfig should have non-empty Hub.URL")
	}

	if cfg.Database.Path == "" {
		t.Error("defaultConfig should have non-empty Database.Path")
	}

	if cfg.MQTT.Broker.Port != 1883 {
		t.Errorf("defaultConfig MQTT.Broker.Port = %d, want 1883", cfg.MQTT.Broker.Port)
	}

	if cfg.Hub.PollInterval != 10 {
		t.Errorf("defaultConfig Hub.PollInterval = %d, want 10", cfg.Hub.PollInterval)
	}
}
