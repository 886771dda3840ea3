package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/snake"
)

func TestBuiltinsRegistered(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{"snake", Snakes.Names(), []string{"basic", "braille", "line", "retro"}},
		{"board", Boards.Names(), []string{"ascii", "classic", "double", "empty", "retro", "rounded"}},
		{"food", Foods.Names(), []string{"armenian", "ascii", "braille", "chess", "emoji", "greek", "math", "retro", "star"}},
	}

	for _, tc := range tests {
		for _, want := range tc.want {
			found := false
			for _, n := range tc.names {
				if n == want {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("%s theme %q is not registered", tc.name, want)
			}
		}
	}
}

func TestBuiltinsValid(t *testing.T) {
	for _, name := range []string{"basic", "braille", "line", "retro"} {
		s, err := Snakes.Get(name)
		if err != nil {
			t.Fatalf("Get(%q) error = %v", name, err)
		}
		if err := s.validate(); err != nil {
			t.Errorf("snake theme %q: %v", name, err)
		}
		for k := snake.TileHeadUp; k <= snake.TileCornerDownRight; k++ {
			if w := lipgloss.Width(s.Glyph(k)); w != 2 {
				t.Errorf("snake theme %q: %s glyph is %d columns wide", name, k, w)
			}
		}
	}

	for _, name := range Boards.Names() {
		b, _ := Boards.Get(name)
		if err := b.validate(); err != nil {
			t.Errorf("board theme %q: %v", name, err)
		}
	}
}

func TestSnakeGlyphNonSnakeKinds(t *testing.T) {
	s, _ := Snakes.Get("line")
	if g := s.Glyph(snake.TileEmpty); g != "" {
		t.Errorf("Glyph(empty) = %q, expected none", g)
	}
	if g := s.Glyph(snake.TileFood); g != "" {
		t.Errorf("Glyph(food) = %q, expected none", g)
	}
	if g := s.Glyph(snake.TileCornerDownLeft); g != "┓ " {
		t.Errorf("Glyph(corner-down-left) = %q, expected the down/left connector", g)
	}
}

func TestFoodSelection(t *testing.T) {
	f := &Food{
		Glyphs: []string{"a", "b", "c"},
		Colors: []core.Color{core.ColorRed, core.ColorBlue},
	}

	tests := []struct {
		id    uint32
		glyph string
		color core.Color
	}{
		{0x00000000, "a", core.ColorRed},
		{0x00000001, "b", core.ColorRed},
		{0x00000005, "c", core.ColorRed},
		{0x00010000, "a", core.ColorBlue},
		{0x00030004, "b", core.ColorBlue},
		{0xFFFFFFFF, "a", core.ColorBlue},
	}

	for _, tc := range tests {
		if got := f.Glyph(tc.id); got != tc.glyph {
			t.Errorf("Glyph(%#x) = %q, expected %q", tc.id, got, tc.glyph)
		}
		got, ok := f.Color(tc.id)
		if !ok || got != tc.color {
			t.Errorf("Color(%#x) = %v, %v, expected %v", tc.id, got, ok, tc.color)
		}
	}
}

func TestFoodWithoutColors(t *testing.T) {
	f, err := Foods.Get("emoji")
	if err != nil {
		t.Fatalf("Get(emoji) error = %v", err)
	}
	if _, ok := f.Color(0x12345678); ok {
		t.Error("emoji food should have no colors")
	}
}

func TestResolve(t *testing.T) {
	th, err := Resolve(DefaultSnake, DefaultBoard, DefaultFood)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if th.Board.Border == nil {
		t.Error("default board should have a border")
	}
	if !th.ShowScore {
		t.Error("ShowScore should default to true")
	}

	if _, err := Resolve("braille", "nope", "emoji"); err == nil || !strings.Contains(err.Error(), "nope") {
		t.Errorf("Resolve() error = %v, expected unknown board theme", err)
	}
}

func TestCustomInstall(t *testing.T) {
	src := `
snake:
  test-dots:
    head_up: "oo"
    head_down: "oo"
    head_left: "oo"
    head_right: "oo"
    tail_up: ".."
    tail_down: ".."
    tail_left: ".."
    tail_right: ".."
    body_vertical: "::"
    body_horizontal: "::"
    corner_up_left: "++"
    corner_up_right: "++"
    corner_down_left: "++"
    corner_down_right: "++"
board:
  test-plain:
    empty: ". "
  test-framed:
    empty: "  "
    border:
      horizontal: "="
      vertical: "!"
      top_left: "+"
      top_right: "+"
      bottom_left: "+"
      bottom_right: "+"
food:
  test-fruit:
    glyphs: ["@@", "%%"]
    colors: [red, Grey]
`
	var c Custom
	if err := yaml.Unmarshal([]byte(src), &c); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if c.Empty() {
		t.Fatal("expected custom themes to be parsed")
	}
	if err := c.Install(); err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	th, err := Resolve("test-dots", "test-framed", "test-fruit")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if th.Snake.Glyph(snake.TileTailLeft) != ".." {
		t.Errorf("tail glyph = %q", th.Snake.Glyph(snake.TileTailLeft))
	}
	if th.Board.Border == nil || th.Board.Border.Vertical != "!" {
		t.Errorf("border = %+v", th.Board.Border)
	}
	if got, _ := th.Food.Color(0x00010000); got != core.ColorGray {
		t.Errorf("Color() = %v, expected gray", got)
	}

	plain, _ := Boards.Get("test-plain")
	if plain.Border != nil {
		t.Error("board without border keys should have no border")
	}
}

func TestCustomInstallRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		custom Custom
	}{
		{"snake missing glyphs", Custom{Snake: map[string]Snake{"test-bad-snake": {HeadUp: "xx"}}}},
		{"board without empty", Custom{Board: map[string]Board{"test-bad-board": {}}}},
		{"partial border", Custom{Board: map[string]Board{"test-bad-border": {Empty: "  ", Border: &Border{Horizontal: "-"}}}}},
		{"food without glyphs", Custom{Food: map[string]FoodSpec{"test-bad-food": {}}}},
		{"food with unknown color", Custom{Food: map[string]FoodSpec{"test-bad-color": {Glyphs: []string{"x"}, Colors: []string{"chartreuse"}}}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.custom.Install(); err == nil {
				t.Error("Install() should fail")
			}
		})
	}

	for _, name := range []string{"test-bad-snake", "test-bad-board", "test-bad-border", "test-bad-food", "test-bad-color"} {
		if Snakes.Exists(name) || Boards.Exists(name) || Foods.Exists(name) {
			t.Errorf("invalid theme %q should not be installed", name)
		}
	}
}
