package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "2000" {
		t.Errorf("Port: got %q want %q", cfg.Port, "2000")
	}
	if cfg.JWTIssuer != "inventory-api" {
		t.Errorf("JWTIssuer: got %q want %q", cfg.JWTIssuer, "inventory-api")
	}
	if cfg.JWTTTLMinutes != 30 {
		t.Errorf("JWTTTLMinutes: got %d want 30", cfg.JWTTTLMinutes)
	}
	if cfg.JWTSecret != "" {
		t.Errorf("JWTSecret must have no default, got %q", cfg.JWTSecret)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL_MINUTES", "15")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("Port: got %q want %q", cfg.Port, "9000")
	}
	if cfg.JWTSecret != "test-secret" {
		t.Errorf("JWTSecret: got %q", cfg.JWTSecret)
	}
	if cfg.JWTTTLMinutes != 15 {
		t.Errorf("JWTTTLMinutes: got %d want 15", cfg.JWTTTLMinutes)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q want %q", cfg.LogLevel, "debug")
	}
}

func TestLoadIgnoresBadTTL(t *testing.T) {
	t.Setenv("JWT_TTL_MINUTES", "not-a-number")

	cfg := Load()
	if cfg.JWTTTLMinutes != 30 {
		t.Errorf("JWTTTLMinutes: got %d want default 30", cfg.JWTTTLMinutes)
	}
}
