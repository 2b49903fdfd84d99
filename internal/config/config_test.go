package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want \"8080\"", cfg.Server.Port)
	}
	if cfg.Server.SessionExpiration != 30*time.Minute {
		t.Errorf("SessionExpiration = %v, want 30m", cfg.Server.SessionExpiration)
	}
	if cfg.Store.Driver != DriverMemory {
		t.Errorf("Driver = %q, want %q", cfg.Store.Driver, DriverMemory)
	}
	if cfg.Feed.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.Feed.MaxRetries)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clients.yaml")
	content := `server:
  port: "9090"
  session_expiration: 5m
store:
  driver: sqlite
  dsn: "file:clients.db"
fields:
  - value: name
    label: Full Name
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, want \"9090\"", cfg.Server.Port)
	}
	if cfg.Server.SessionExpiration != 5*time.Minute {
		t.Errorf("SessionExpiration = %v, want 5m", cfg.Server.SessionExpiration)
	}
	if cfg.Store.Driver != "sqlite" || cfg.Store.DSN != "file:clients.db" {
		t.Errorf("Store = %+v", cfg.Store)
	}

	catalogue, err := cfg.Catalogue()
	if err != nil {
		t.Fatalf("Catalogue() error = %v", err)
	}
	if len(catalogue) != 7 {
		t.Fatalf("len(catalogue) = %d, want 7", len(catalogue))
	}
	if catalogue[1].Value != "name" || catalogue[1].Label != "Full Name" {
		t.Errorf("catalogue[1] = %+v, want name relabelled", catalogue[1])
	}
	if catalogue[0].Label != "Client ID" {
		t.Errorf("catalogue[0].Label = %q, want unchanged", catalogue[0].Label)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"postgres with dsn", func(c *Config) { c.Store.Driver = "postgres"; c.Store.DSN = "postgres://x" }, false},
		{"postgres without dsn", func(c *Config) { c.Store.Driver = "postgres" }, true},
		{"unknown driver", func(c *Config) { c.Store.Driver = "mongo" }, true},
		{"unknown field label", func(c *Config) { c.Fields = []FieldLabel{{Value: "phone", Label: "Phone"}} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("CLIENTS_SERVER_PORT", "7000")
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != "7000" {
		t.Errorf("Port = %q, want \"7000\"", cfg.Server.Port)
	}
}
