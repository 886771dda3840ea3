package theme

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/snek/internal/core"
)

// FoodSpec is the config file form of a food theme.
type FoodSpec struct {
	Glyphs []string `yaml:"glyphs"`
	Colors []string `yaml:"colors"`
}

// Custom holds user-defined themes as read from the config file.
type Custom struct {
	Snake map[string]Snake    `yaml:"snake"`
	Board map[string]Board    `yaml:"board"`
	Food  map[string]FoodSpec `yaml:"food"`
}

// Empty reports whether no custom themes are declared.
func (c Custom) Empty() bool {
	return len(c.Snake) == 0 && len(c.Board) == 0 && len(c.Food) == 0
}

// Install validates the custom themes and adds them to the registries.
// A custom theme replaces a built-in with the same name. Nothing is installed
// if any theme is invalid.
func (c Custom) Install() error {
	snakes := make(map[string]*Snake, len(c.Snake))
	for _, name := range sortedKeys(c.Snake) {
		s := c.Snake[name]
		if err := s.validate(); err != nil {
			return fmt.Errorf("theme: snake theme %q: %w", name, err)
		}
		snakes[name] = &s
	}

	boards := make(map[string]*Board, len(c.Board))
	for _, name := range sortedKeys(c.Board) {
		b := c.Board[name]
		if err := b.validate(); err != nil {
			return fmt.Errorf("theme: board theme %q: %w", name, err)
		}
		boards[name] = &b
	}

	foods := make(map[string]*Food, len(c.Food))
	for _, name := range sortedKeys(c.Food) {
		f, err := c.Food[name].build()
		if err != nil {
			return fmt.Errorf("theme: food theme %q: %w", name, err)
		}
		foods[name] = f
	}

	for name, s := range snakes {
		Snakes.Set(name, s)
	}
	for name, b := range boards {
		Boards.Set(name, b)
	}
	for name, f := range foods {
		Foods.Set(name, f)
	}
	return nil
}

func (fs FoodSpec) build() (*Food, error) {
	if len(fs.Glyphs) == 0 {
		return nil, fmt.Errorf("needs at least one glyph")
	}
	f := &Food{Glyphs: fs.Glyphs}
	for _, name := range fs.Colors {
		c, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("unknown color %q", name)
		}
		f.Colors = append(f.Colors, c)
	}
	return f, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
