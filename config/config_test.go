package config

import (
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET is unset")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("TOKEN_TTL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port: got %q want 8080", cfg.Port)
	}
	if cfg.BcryptCost != bcrypt.DefaultCost {
		t.Errorf("BcryptCost: got %d want %d", cfg.BcryptCost, bcrypt.DefaultCost)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("TokenTTL: got %v want 1h", cfg.TokenTTL)
	}
	if string(cfg.JWTSecret) != "s3cret" {
		t.Errorf("JWTSecret: got %q", cfg.JWTSecret)
	}
}

func TestLoad_RejectsBadOverrides(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"non-numeric cost", "BCRYPT_COST", "lots"},
		{"cost out of range", "BCRYPT_COST", "99"},
		{"bad ttl", "TOKEN_TTL", "soon"},
		{"negative ttl", "TOKEN_TTL", "-5m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "s")
			t.Setenv(tt.key, tt.val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.val)
			}
		})
	}
}

func TestInitDB_MigratesModels(t *testing.T) {
	db, err := InitDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("InitDB error: %v", err)
	}
	for _, table := range []string{"users", "activities", "food_donations"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("missing table %q", table)
		}
	}
}
