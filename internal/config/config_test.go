package config

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DefaultDays != 30 {
		t.Errorf("DefaultDays = %d, want 30", cfg.General.DefaultDays)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if cfg.Baseline != DefaultBaseline() {
		t.Errorf("Baseline = %+v, want defaults", cfg.Baseline)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DefaultDays = 7
	cfg.Appearance.Theme = "terminal"
	cfg.Factors = map[string]float64{"car_km": 0.25}
	cfg.Baseline.CarKmPerDay = 20

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.DefaultDays != 7 {
		t.Errorf("DefaultDays = %d, want 7", got.General.DefaultDays)
	}
	if got.Appearance.Theme != "terminal" {
		t.Errorf("Theme = %q, want terminal", got.Appearance.Theme)
	}
	if got.Factors["car_km"] != 0.25 {
		t.Errorf("Factors[car_km] = %v, want 0.25", got.Factors["car_km"])
	}
	if got.Baseline.CarKmPerDay != 20 {
		t.Errorf("Baseline.CarKmPerDay = %v, want 20", got.Baseline.CarKmPerDay)
	}
}

func TestDBPathPrecedence(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cfg := DefaultConfig()

	t.Setenv("ECOLOG_DB", "/tmp/env.db")
	cfg.General.DBPath = "/tmp/cfg.db"
	if p := DBPath(cfg); p != "/tmp/env.db" {
		t.Errorf("DBPath with env = %q, want /tmp/env.db", p)
	}

	t.Setenv("ECOLOG_DB", "")
	if p := DBPath(cfg); p != "/tmp/cfg.db" {
		t.Errorf("DBPath with config = %q, want /tmp/cfg.db", p)
	}

	cfg.General.DBPath = ""
	if p := DBPath(cfg); filepath.Base(p) != "ecolog.db" {
		t.Errorf("DBPath default = %q, want .../ecolog.db", p)
	}
}
