package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snek/internal/snake"
	"github.com/vovakirdan/snek/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Long: `Shows the snake, board and food themes that can be passed to
--snake-theme, --board-theme and --food-theme. Custom themes declared in the
config file are listed too.`,
	Args: cobra.NoArgs,
	RunE: runThemes,
}

func runThemes(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if !settings.Themes.Empty() {
		if err := settings.Themes.Install(); err != nil {
			return err
		}
	}

	fmt.Println("Snake themes:")
	for _, name := range theme.Snakes.Names() {
		s, _ := theme.Snakes.Get(name)
		preview := s.Glyph(snake.TileTailLeft) + s.Glyph(snake.TileBodyHorizontal) + s.Glyph(snake.TileHeadRight)
		fmt.Printf("  %-12s %s%s\n", name, preview, defaultMark(name, theme.DefaultSnake))
	}

	fmt.Println()
	fmt.Println("Board themes:")
	for _, name := range theme.Boards.Names() {
		b, _ := theme.Boards.Get(name)
		preview := strings.Repeat(b.Empty, 3)
		if b.Border != nil {
			preview = b.Border.TopLeft + strings.Repeat(b.Border.Horizontal, 2) + b.Border.TopRight
		}
		fmt.Printf("  %-12s %s%s\n", name, preview, defaultMark(name, theme.DefaultBoard))
	}

	fmt.Println()
	fmt.Println("Food themes:")
	for _, name := range theme.Foods.Names() {
		f, _ := theme.Foods.Get(name)
		n := min(len(f.Glyphs), 6)
		fmt.Printf("  %-12s %s%s\n", name, strings.Join(f.Glyphs[:n], ""), defaultMark(name, theme.DefaultFood))
	}

	return nil
}

func defaultMark(name, def string) string {
	if name == def {
		return "  (default)"
	}
	return ""
}
