package config

import "testing"

// TestLoadDefaults ensures the defaults apply with a clean environment.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port == "" {
		t.Fatal("port default missing")
	}
	if cfg.MaxDuelTicks <= 0 {
		t.Fatalf("max duel ticks = %d, want positive", cfg.MaxDuelTicks)
	}
}

// TestLoadFromEnv ensures env vars override defaults.
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", ":memory:")
	t.Setenv("MAX_DUEL_TICKS", "100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("port = %q, want 9090", cfg.Port)
	}
	if cfg.DBPath != ":memory:" {
		t.Fatalf("db path = %q, want :memory:", cfg.DBPath)
	}
	if cfg.MaxDuelTicks != 100 {
		t.Fatalf("max duel ticks = %d, want 100", cfg.MaxDuelTicks)
	}
}
