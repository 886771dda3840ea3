// Package config provides YAML-based settings loading, difficulty presets and
// validation of the game parameters.
package config

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/theme"
)

// Validation errors returned by Settings.GameConfig.
var (
	ErrZeroWidth     = errors.New("width must be positive")
	ErrZeroHeight    = errors.New("height must be positive")
	ErrZeroSpeed     = errors.New("speed must be positive")
	ErrZeroLength    = errors.New("snake length must be positive")
	ErrLengthTooLong = errors.New("snake length must not exceed the board width")
)

// Settings contains everything a play session is configured with.
type Settings struct {
	Width         int              `yaml:"width"`
	Height        int              `yaml:"height"`
	Fullscreen    bool             `yaml:"fullscreen"`
	Walls         bool             `yaml:"walls"`
	SnakeLength   int              `yaml:"snake_length"`
	Food          uint32           `yaml:"food"`
	Speed         uint32           `yaml:"speed"`
	FoodToSpeedUp uint32           `yaml:"food_to_speed_up"` // 0 disables speed-up
	Seed          uint64           `yaml:"seed"`             // 0 picks a random seed
	HideScore     bool             `yaml:"hide_score"`
	Difficulty    DifficultyPreset `yaml:"difficulty"`
	Theme         ThemeSettings    `yaml:"theme"`
	DB            string           `yaml:"db"`
	Themes        theme.Custom     `yaml:"themes"`
}

// ThemeSettings selects themes by name.
type ThemeSettings struct {
	Snake string `yaml:"snake"`
	Board string `yaml:"board"`
	Food  string `yaml:"food"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Width:         25,
		Height:        15,
		SnakeLength:   3,
		Food:          1,
		Speed:         6,
		FoodToSpeedUp: 4,
		Theme: ThemeSettings{
			Snake: theme.DefaultSnake,
			Board: theme.DefaultBoard,
			Food:  theme.DefaultFood,
		},
		DB: "~/.snek/scores.db",
	}
}

// FitTerminal sizes the board to fill a terminal of cols by rows, leaving
// room for the border. Each cell is two columns wide.
func (s *Settings) FitTerminal(cols, rows int) {
	s.Width = (cols - 2) / 2
	s.Height = rows - 2
}

// WallPolicy returns the edge behaviour selected by the settings.
func (s Settings) WallPolicy() core.WallPolicy {
	if s.Walls {
		return core.WallsSolid
	}
	return core.WallsWrap
}

// Validate checks the board and snake parameters.
func (s Settings) Validate() error {
	var err error
	switch {
	case s.Width <= 0:
		err = ErrZeroWidth
	case s.Height <= 0:
		err = ErrZeroHeight
	case s.Speed == 0:
		err = ErrZeroSpeed
	case s.SnakeLength <= 0:
		err = ErrZeroLength
	case s.SnakeLength > s.Width:
		err = ErrLengthTooLong
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// GameConfig validates the settings and converts them into game parameters.
// A zero seed is replaced with a random one.
func (s Settings) GameConfig() (core.GameConfig, error) {
	if err := s.Validate(); err != nil {
		return core.GameConfig{}, err
	}

	seed := s.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	return core.GameConfig{
		Width:          s.Width,
		Height:         s.Height,
		InitialLength:  s.SnakeLength,
		InitialSpeed:   s.Speed,
		FoodCount:      s.Food,
		FoodPerSpeedUp: s.FoodToSpeedUp,
		Walls:          s.WallPolicy(),
		Seed:           seed,
	}, nil
}

// ResolveTheme installs any custom themes and looks up the selected ones.
func (s Settings) ResolveTheme() (theme.Theme, error) {
	if !s.Themes.Empty() {
		if err := s.Themes.Install(); err != nil {
			return theme.Theme{}, err
		}
	}

	th, err := theme.Resolve(s.Theme.Snake, s.Theme.Board, s.Theme.Food)
	if err != nil {
		return theme.Theme{}, err
	}
	th.ShowScore = !s.HideScore
	return th, nil
}
