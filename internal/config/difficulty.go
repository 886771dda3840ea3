package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the valid presets in increasing difficulty.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset validates a preset name. The empty string is accepted and means
// "no preset".
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// ApplyPreset modifies the settings based on a difficulty preset.
// The fixed preset keeps the configured speed and disables speed-up.
func ApplyPreset(s *Settings, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		s.Speed = 4
		s.FoodToSpeedUp = 6
	case DifficultyNormal:
		s.Speed = 6
		s.FoodToSpeedUp = 4
	case DifficultyHard:
		s.Speed = 10
		s.FoodToSpeedUp = 2
	case DifficultyFixed:
		s.FoodToSpeedUp = 0
	}
}
