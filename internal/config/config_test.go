package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with defaults: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Game.Language != "de" {
		t.Errorf("default language = %s, want de", cfg.Game.Language)
	}
	if cfg.Cleanup.Retention != 14*24*time.Hour {
		t.Errorf("default retention = %v", cfg.Cleanup.Retention)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("GAME_DEFAULT_DIFFICULTY", "hard")
	t.Setenv("PROVIDER_TOPICS", "essen, reise,")
	t.Setenv("PROVIDER_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Game.DefaultDifficulty != "hard" {
		t.Errorf("difficulty = %s", cfg.Game.DefaultDifficulty)
	}
	if len(cfg.Providers.Topics) != 2 || cfg.Providers.Topics[1] != "reise" {
		t.Errorf("topics = %v", cfg.Providers.Topics)
	}
	if cfg.Providers.Timeout != 3*time.Second {
		t.Errorf("timeout = %v", cfg.Providers.Timeout)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("SERVER_PORT", "0")
	if _, err := Load(); err == nil {
		t.Error("expected validation error for port 0")
	}
}

func TestValidateRejectsBadDifficulty(t *testing.T) {
	t.Setenv("GAME_DEFAULT_DIFFICULTY", "extreme")
	if _, err := Load(); err == nil {
		t.Error("expected validation error for unknown difficulty")
	}
}
