package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadLayersFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := []byte("store:\n  driver: memory\nlog:\n  level: debug\nwater:\n  goal: 10\nserver:\n  token_ttl: 30m\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MINDMEAL_LOG_LEVEL", "warn")

	cfg, err := Load(viper.New(), path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Store.Driver != "memory" {
		t.Fatalf("expected driver from file, got %q", cfg.Store.Driver)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("expected env override for log level, got %q", cfg.Log.Level)
	}
	if cfg.Water.Goal != 10 {
		t.Fatalf("expected water goal 10, got %d", cfg.Water.Goal)
	}
	if cfg.Server.TokenTTL != 30*time.Minute {
		t.Fatalf("expected token ttl 30m, got %s", cfg.Server.TokenTTL)
	}
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	cfg := &Config{Store: StoreConfig{Driver: "mongo"}, Water: WaterConfig{Goal: 8}}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected unknown driver to fail")
	}
	cfg = &Config{Store: StoreConfig{Driver: "postgres"}, Water: WaterConfig{Goal: 8}}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected postgres without dsn to fail")
	}
}

func TestMaskedHidesSecrets(t *testing.T) {
	cfg := &Config{Server: ServerConfig{JWTSecret: "super-secret-value"}}
	masked := cfg.Masked()
	if masked["server.jwt_secret"] != "supe...alue" {
		t.Fatalf("unexpected masked secret %q", masked["server.jwt_secret"])
	}
	if masked["store.redis_password"] != "<not set>" {
		t.Fatalf("expected unset marker, got %q", masked["store.redis_password"])
	}
}
