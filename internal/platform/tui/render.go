package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/snake"
	"github.com/vovakirdan/snek/internal/theme"
)

// colorStyles maps core.Color to lipgloss styles.
// lipgloss drops the colors on its own when the terminal has none or NO_COLOR
// is set.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	scoreStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	wonStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	lostStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// scoreLabel is the text shown for the score.
func scoreLabel(score uint32) string {
	return fmt.Sprintf("Score: %d", score)
}

// RenderBoard draws a derived board with the given theme.
// With a bordered board theme the score is written into the top border,
// otherwise it gets a line of its own above the field.
func RenderBoard(b *snake.Board, th theme.Theme, score uint32) string {
	var sb strings.Builder
	cellWidth := lipgloss.Width(th.Board.Empty)
	border := th.Board.Border

	if border != nil {
		sb.WriteString(topBorder(border, b.W*cellWidth, cellWidth, score, th.ShowScore))
		sb.WriteByte('\n')
	} else if th.ShowScore {
		sb.WriteString(scoreStyle.Render(scoreLabel(score)))
		sb.WriteByte('\n')
	}

	for y := range b.H {
		if y > 0 {
			sb.WriteByte('\n')
		}
		if border != nil {
			sb.WriteString(border.Vertical)
		}
		for _, tile := range b.Row(y) {
			sb.WriteString(renderTile(tile, th))
		}
		if border != nil {
			sb.WriteString(border.Vertical)
		}
	}

	if border != nil {
		sb.WriteByte('\n')
		sb.WriteString(border.BottomLeft)
		sb.WriteString(strings.Repeat(border.Horizontal, b.W*cellWidth))
		sb.WriteString(border.BottomRight)
	}

	return sb.String()
}

// topBorder builds the top frame line, inset with the score one cell from the
// left corner when it fits.
func topBorder(border *theme.Border, inner, cellWidth int, score uint32, showScore bool) string {
	if !showScore {
		return border.TopLeft + strings.Repeat(border.Horizontal, inner) + border.TopRight
	}

	label := scoreLabel(score)
	pad := cellWidth - 1
	rest := inner - pad - lipgloss.Width(label)
	if rest < 0 {
		return border.TopLeft + strings.Repeat(border.Horizontal, inner) + border.TopRight
	}

	return border.TopLeft +
		strings.Repeat(border.Horizontal, pad) +
		scoreStyle.Render(label) +
		strings.Repeat(border.Horizontal, rest) +
		border.TopRight
}

func renderTile(tile snake.Tile, th theme.Theme) string {
	switch tile.Kind {
	case snake.TileEmpty:
		return th.Board.Empty
	case snake.TileFood:
		glyph := th.Food.Glyph(tile.FoodID)
		if c, ok := th.Food.Color(tile.FoodID); ok {
			return styleFor(c).Render(glyph)
		}
		return glyph
	default:
		return th.Snake.Glyph(tile.Kind)
	}
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
