// Package config provides YAML-based configuration loading for the aim trainer.
package config

import (
	"errors"
	"fmt"
	"time"
)

// AimConfig contains all tunables for the aim trainer.
type AimConfig struct {
	Session SessionConfig `yaml:"session"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
}

// SessionConfig defines the timed session rules.
type SessionConfig struct {
	DurationSecs      int    `yaml:"duration_secs"`
	MaxTargets        int    `yaml:"max_targets"`
	RespawnDelayMs    int    `yaml:"respawn_delay_ms"`
	DefaultDifficulty string `yaml:"default_difficulty"` // "easy", "medium" or "hard"
}

// DisplayConfig defines how the terminal maps to play-area pixels.
type DisplayConfig struct {
	CellWidthPx  float64 `yaml:"cell_width_px"`
	CellHeightPx float64 `yaml:"cell_height_px"`
	MissFlashMs  int     `yaml:"miss_flash_ms"`
}

// StorageConfig names the persisted best-score entry.
type StorageConfig struct {
	BestScoreKey string `yaml:"best_score_key"`
}

// DifficultyPreset is a named difficulty selectable from the CLI or config.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset validates a preset name.
// An empty string selects hard, the mode the Play button starts.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyHard, nil
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// RespawnDelay returns the hit-to-respawn delay as a duration.
func (c SessionConfig) RespawnDelay() time.Duration {
	return time.Duration(c.RespawnDelayMs) * time.Millisecond
}

// MissFlash returns the miss feedback duration.
func (c DisplayConfig) MissFlash() time.Duration {
	return time.Duration(c.MissFlashMs) * time.Millisecond
}

// Validate checks that every value is usable.
func (c AimConfig) Validate() error {
	var errs []error

	if c.Session.DurationSecs <= 0 {
		errs = append(errs, fmt.Errorf("session.duration_secs must be positive, got %d", c.Session.DurationSecs))
	}
	if c.Session.MaxTargets <= 0 {
		errs = append(errs, fmt.Errorf("session.max_targets must be positive, got %d", c.Session.MaxTargets))
	}
	if c.Session.RespawnDelayMs < 0 {
		errs = append(errs, fmt.Errorf("session.respawn_delay_ms must not be negative, got %d", c.Session.RespawnDelayMs))
	}
	if _, err := ParseDifficultyPreset(c.Session.DefaultDifficulty); err != nil {
		errs = append(errs, err)
	}
	if c.Display.CellWidthPx <= 0 || c.Display.CellHeightPx <= 0 {
		errs = append(errs, fmt.Errorf("display cell size must be positive, got %vx%v", c.Display.CellWidthPx, c.Display.CellHeightPx))
	}
	if c.Display.MissFlashMs < 0 {
		errs = append(errs, fmt.Errorf("display.miss_flash_ms must not be negative, got %d", c.Display.MissFlashMs))
	}
	if c.Storage.BestScoreKey == "" {
		errs = append(errs, errors.New("storage.best_score_key must not be empty"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid aim config: %w", errors.Join(errs...))
	}
	return nil
}
