package config

import (
	_ "embed"
)

//go:embed defaults/aim.yaml
var defaultAimYAML []byte

// DefaultAimConfig returns the built-in aim trainer configuration.
// It mirrors defaults/aim.yaml and is used if the embedded file cannot be parsed.
func DefaultAimConfig() AimConfig {
	return AimConfig{
		Session: SessionConfig{
			DurationSecs:      60,
			MaxTargets:        3,
			RespawnDelayMs:    120,
			DefaultDifficulty: string(DifficultyHard),
		},
		Display: DisplayConfig{
			CellWidthPx:  8,
			CellHeightPx: 16,
			MissFlashMs:  220,
		},
		Storage: StorageConfig{
			BestScoreKey: "aimlab_best",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultAimYAML
}
