package theme

import "github.com/vovakirdan/snek/internal/core"

func init() {
	Snakes.Register("braille", &Snake{
		HeadUp: "⢰⡆", HeadDown: "⠸⠇", HeadLeft: "⠰⠶", HeadRight: "⠶⠆",
		TailUp: "⢰⡀", TailDown: "⠈⠇", TailLeft: "⠠⠴", TailRight: "⠖⠂",
		BodyVertical: "⢸⡇", BodyHorizontal: "⠶⠶",
		CornerUpLeft: "⠾⠇", CornerUpRight: "⠸⠷", CornerDownLeft: "⢶⡆", CornerDownRight: "⢰⡶",
	})
	Snakes.Register("line", &Snake{
		HeadUp: "╻ ", HeadDown: "╹ ", HeadLeft: " ━", HeadRight: "━ ",
		TailUp: "╻ ", TailDown: "╹ ", TailLeft: " ━", TailRight: "━ ",
		BodyVertical: "┃ ", BodyHorizontal: "━━",
		CornerUpLeft: "┛ ", CornerUpRight: "┗━", CornerDownLeft: "┓ ", CornerDownRight: "┏━",
	})
	Snakes.Register("basic", uniformSnake("[]"))
	Snakes.Register("retro", uniformSnake("██"))

	Boards.Register("double", &Board{
		Border: &Border{Horizontal: "═", Vertical: "║", TopLeft: "╔", TopRight: "╗", BottomLeft: "╚", BottomRight: "╝"},
		Empty:  "  ",
	})
	Boards.Register("rounded", &Board{
		Border: &Border{Horizontal: "─", Vertical: "│", TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯"},
		Empty:  "  ",
	})
	Boards.Register("ascii", &Board{
		Border: &Border{Horizontal: "-", Vertical: "|", TopLeft: "*", TopRight: "*", BottomLeft: "*", BottomRight: "*"},
		Empty:  "  ",
	})
	Boards.Register("classic", &Board{Empty: "` "})
	Boards.Register("empty", &Board{Empty: "  "})
	Boards.Register("retro", &Board{Empty: "░░"})

	rainbow := []core.Color{core.ColorBlue, core.ColorCyan, core.ColorGreen, core.ColorMagenta, core.ColorYellow, core.ColorRed}

	Foods.Register("emoji", &Food{Glyphs: []string{
		"🍎", "🍇", "🍈", "🍉", "🍊", "🍋", "🍌", "🍍", "🥭", "🍏", "🍐", "🍑", "🍒",
		"🍓", "🥝", "🍅", "🌽", "🧀", "🍪", "🍰", "🧁", "🥧",
	}})
	Foods.Register("ascii", &Food{
		Glyphs: []string{"<>", "$$", "{}", "<3", "()", ";;", "&&", "%%", "69"},
		Colors: rainbow,
	})
	Foods.Register("star", &Food{
		Glyphs: []string{"★ "},
		Colors: []core.Color{core.ColorBlue, core.ColorCyan, core.ColorMagenta, core.ColorYellow, core.ColorRed},
	})
	Foods.Register("armenian", &Food{
		Glyphs: []string{
			"ա ", "բ ", "գ ", "դ ", "ե ", "զ ", "է ", "ը ", "թ ", "ժ ", "ի ", "լ ", "խ ",
			"ծ ", "կ ", "հ ", "ձ ", "ղ ", "ճ ", "մ ", "յ ", "ն ", "շ ", "ո ", "չ ", "պ ",
			"ջ ", "ռ ", "ս ", "վ ", "տ ", "ր ", "ց ", "ու", "փ ", "ք ", "օ ", "ֆ ", "և ",
		},
		Colors: rainbow,
	})
	Foods.Register("greek", &Food{
		Glyphs: []string{
			"α ", "β ", "γ ", "δ ", "ε ", "ζ ", "η ", "θ ", "ι ", "κ ", "λ ", "μ ", "ν ",
			"ξ ", "ο ", "π ", "ρ ", "ς ", "σ ", "τ ", "υ ", "φ ", "χ ", "ψ ", "ω ",
		},
		Colors: rainbow,
	})
	Foods.Register("retro", &Food{Glyphs: []string{"██"}, Colors: []core.Color{core.ColorRed}})
	Foods.Register("braille", &Food{
		Glyphs: []string{"⢾⡷", "⢎⡱", "⡱⢎", "⣏⣹"},
		Colors: rainbow,
	})
	Foods.Register("math", &Food{
		Glyphs: []string{
			"∫ ", "∬ ", "∭ ", "⨌ ", "∀ ", "∃ ", "∈ ", "∑ ", "∞ ", "∅ ", "⊆ ", "≥ ", "≈ ",
			"∆x", "∆y", "⇌ ", "± ", "≽ ", "≡ ", "ℝ ", "ℂ ", "ƒ′",
		},
		Colors: []core.Color{core.ColorBlue, core.ColorCyan, core.ColorGreen, core.ColorMagenta, core.ColorYellow},
	})
	Foods.Register("chess", &Food{Glyphs: []string{"♚ ", "♛ ", "♜ ", "♝ ", "♞ ", "♟ "}})
}

// uniformSnake draws every segment with the same glyph.
func uniformSnake(g string) *Snake {
	return &Snake{
		HeadUp: g, HeadDown: g, HeadLeft: g, HeadRight: g,
		TailUp: g, TailDown: g, TailLeft: g, TailRight: g,
		BodyVertical: g, BodyHorizontal: g,
		CornerUpLeft: g, CornerUpRight: g, CornerDownLeft: g, CornerDownRight: g,
	}
}
