package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseAim(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultAimConfig() {
		t.Errorf("embedded defaults = %+v, hardcoded = %+v", cfg, DefaultAimConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadAimCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aim.yaml")
	data := "session:\n  duration_secs: 30\n  default_difficulty: easy\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAim(path)
	if err != nil {
		t.Fatalf("LoadAim() failed: %v", err)
	}

	if cfg.Session.DurationSecs != 30 {
		t.Errorf("DurationSecs = %d, expected 30", cfg.Session.DurationSecs)
	}
	if cfg.Session.DefaultDifficulty != "easy" {
		t.Errorf("DefaultDifficulty = %q, expected easy", cfg.Session.DefaultDifficulty)
	}
	// Untouched keys keep their defaults
	if cfg.Session.MaxTargets != 3 {
		t.Errorf("MaxTargets = %d, expected default 3", cfg.Session.MaxTargets)
	}
	if cfg.Session.RespawnDelay() != 120*time.Millisecond {
		t.Errorf("RespawnDelay() = %v, expected 120ms", cfg.Session.RespawnDelay())
	}
}

func TestLoadAimCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadAim(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("session: [not, a, map]"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAim(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("session:\n  max_targets: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAim(invalid); err == nil || !strings.Contains(err.Error(), "max_targets") {
		t.Errorf("zero max_targets should fail validation, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AimConfig)
		ok     bool
	}{
		{"defaults", func(*AimConfig) {}, true},
		{"zero duration", func(c *AimConfig) { c.Session.DurationSecs = 0 }, false},
		{"negative respawn delay", func(c *AimConfig) { c.Session.RespawnDelayMs = -1 }, false},
		{"zero respawn delay", func(c *AimConfig) { c.Session.RespawnDelayMs = 0 }, true},
		{"unknown difficulty", func(c *AimConfig) { c.Session.DefaultDifficulty = "insane" }, false},
		{"zero cell width", func(c *AimConfig) { c.Display.CellWidthPx = 0 }, false},
		{"empty key", func(c *AimConfig) { c.Storage.BestScoreKey = "" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultAimConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, expected error")
			}
		})
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyHard, false},
		{"easy", DifficultyEasy, false},
		{"medium", DifficultyMedium, false},
		{"hard", DifficultyHard, false},
		{"normal", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficultyPreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficultyPreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDifficultyPreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
