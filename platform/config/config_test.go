package config

import (
	"errors"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 4101 || cfg.APIPrefix != "/api/v1" || cfg.MaxSimulations != 1000 || cfg.DefaultSimulations != 2 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Addr() != "0.0.0.0:4101" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Fatalf("unexpected origins %v", cfg.AllowedOrigins)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SECRET_KEY", "a-real-key")
	t.Setenv("DEBUG", "true")
	t.Setenv("PORT", "9000")
	t.Setenv("API_PREFIX", "api/v2/")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("DB_ADDR", "localhost:5432")
	t.Setenv("MAX_SIMULATIONS", "50")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Debug {
		t.Fatalf("production must force debug off")
	}
	if cfg.Port != 9000 || cfg.APIPrefix != "/api/v2" || cfg.MaxSimulations != 50 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected origins %v", cfg.AllowedOrigins)
	}
	if cfg.SecretKey != "a-real-key" || cfg.StatusEvery != 100 {
		t.Fatalf("unexpected secret or status interval %+v", cfg)
	}
	if cfg.Database.Addr != "localhost:5432" {
		t.Fatalf("nested database config not parsed: %+v", cfg.Database)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-numeric PORT")
	}
}

func TestLoadRejectsDefaultAboveMax(t *testing.T) {
	t.Setenv("MAX_SIMULATIONS", "5")
	t.Setenv("DEFAULT_SIMULATIONS", "10")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when default exceeds max")
	}
}

func TestLoadRejectsDefaultSecretInProduction(t *testing.T) {
	tests := []struct {
		env    string
		secret string
		set    bool
		err    error
	}{
		{env: "production", err: ErrDefaultSecret},
		{env: "Production", secret: DefaultSecretKey, set: true, err: ErrDefaultSecret},
		{env: "production", secret: "", set: true, err: ErrDefaultSecret},
		{env: "production", secret: "s3cr3t-from-vault", set: true},
		{env: "development"},
		{env: "testing", secret: DefaultSecretKey, set: true},
	}
	for _, tt := range tests {
		t.Run(tt.env+"/"+tt.secret, func(t *testing.T) {
			t.Setenv("ENVIRONMENT", tt.env)
			if tt.set {
				t.Setenv("SECRET_KEY", tt.secret)
			}
			_, err := Load()
			if !errors.Is(err, tt.err) {
				t.Fatalf("Load() error = %v, want %v", err, tt.err)
			}
		})
	}
}
