// Package theme holds the glyph sets used to draw the snake, the board and the
// food. Built-in themes register themselves in init(); user themes declared in
// the config file are installed on top of them.
package theme

import (
	"fmt"

	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/registry"
	"github.com/vovakirdan/snek/internal/snake"
)

// Registries of available themes, keyed by name.
var (
	Snakes = registry.New[*Snake]("snake theme")
	Boards = registry.New[*Board]("board theme")
	Foods  = registry.New[*Food]("food theme")
)

// Default theme names.
const (
	DefaultSnake = "braille"
	DefaultBoard = "rounded"
	DefaultFood  = "emoji"
)

// Snake is the glyph set for snake tiles.
// Every glyph should render as one board cell (two columns for the built-ins).
type Snake struct {
	HeadUp    string `yaml:"head_up"`
	HeadDown  string `yaml:"head_down"`
	HeadLeft  string `yaml:"head_left"`
	HeadRight string `yaml:"head_right"`

	TailUp    string `yaml:"tail_up"`
	TailDown  string `yaml:"tail_down"`
	TailLeft  string `yaml:"tail_left"`
	TailRight string `yaml:"tail_right"`

	BodyVertical   string `yaml:"body_vertical"`
	BodyHorizontal string `yaml:"body_horizontal"`

	CornerUpLeft    string `yaml:"corner_up_left"`
	CornerUpRight   string `yaml:"corner_up_right"`
	CornerDownLeft  string `yaml:"corner_down_left"`
	CornerDownRight string `yaml:"corner_down_right"`
}

// Glyph returns the glyph for a snake tile kind, or "" for other kinds.
func (s *Snake) Glyph(k snake.TileKind) string {
	switch k {
	case snake.TileHeadUp:
		return s.HeadUp
	case snake.TileHeadDown:
		return s.HeadDown
	case snake.TileHeadLeft:
		return s.HeadLeft
	case snake.TileHeadRight:
		return s.HeadRight
	case snake.TileTailUp:
		return s.TailUp
	case snake.TileTailDown:
		return s.TailDown
	case snake.TileTailLeft:
		return s.TailLeft
	case snake.TileTailRight:
		return s.TailRight
	case snake.TileBodyVertical:
		return s.BodyVertical
	case snake.TileBodyHorizontal:
		return s.BodyHorizontal
	case snake.TileCornerUpLeft:
		return s.CornerUpLeft
	case snake.TileCornerUpRight:
		return s.CornerUpRight
	case snake.TileCornerDownLeft:
		return s.CornerDownLeft
	case snake.TileCornerDownRight:
		return s.CornerDownRight
	default:
		return ""
	}
}

func (s *Snake) validate() error {
	for k := snake.TileHeadUp; k <= snake.TileCornerDownRight; k++ {
		if s.Glyph(k) == "" {
			return fmt.Errorf("missing %s glyph", k)
		}
	}
	return nil
}

// Border is the frame drawn around the board.
type Border struct {
	Horizontal  string `yaml:"horizontal"`
	Vertical    string `yaml:"vertical"`
	TopLeft     string `yaml:"top_left"`
	TopRight    string `yaml:"top_right"`
	BottomLeft  string `yaml:"bottom_left"`
	BottomRight string `yaml:"bottom_right"`
}

// Board is the glyph set for the playing field.
// A nil Border draws the field without a frame.
type Board struct {
	Border *Border `yaml:"border"`
	Empty  string  `yaml:"empty"`
}

func (b *Board) validate() error {
	if b.Empty == "" {
		return fmt.Errorf("missing empty cell glyph")
	}
	if br := b.Border; br != nil {
		for _, g := range []string{br.Horizontal, br.Vertical, br.TopLeft, br.TopRight, br.BottomLeft, br.BottomRight} {
			if g == "" {
				return fmt.Errorf("border needs all six glyphs")
			}
		}
	}
	return nil
}

// Food is the glyph and color set for food items.
// An empty Colors list draws food in the terminal's default color.
type Food struct {
	Glyphs []string
	Colors []core.Color
}

// Glyph selects a glyph from the low 16 bits of a food identifier.
func (f *Food) Glyph(id uint32) string {
	return f.Glyphs[int(id&0xFFFF)%len(f.Glyphs)]
}

// Color selects a color from the high 16 bits of a food identifier.
// Returns false when the theme has no colors.
func (f *Food) Color(id uint32) (core.Color, bool) {
	if len(f.Colors) == 0 {
		return core.ColorDefault, false
	}
	return f.Colors[int(id>>16)%len(f.Colors)], true
}

// Theme is a resolved combination of the three glyph sets.
type Theme struct {
	Snake     *Snake
	Board     *Board
	Food      *Food
	ShowScore bool
}

// Resolve looks up the named themes.
func Resolve(snakeName, boardName, foodName string) (Theme, error) {
	s, err := Snakes.Get(snakeName)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}
	b, err := Boards.Get(boardName)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}
	f, err := Foods.Get(foodName)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}
	return Theme{Snake: s, Board: b, Food: f, ShowScore: true}, nil
}
