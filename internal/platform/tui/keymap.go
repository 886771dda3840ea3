package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snek/internal/core"
)

// KeyMap defines the key bindings used during a game.
// It translates Bubble Tea key messages into platform-neutral inputs, which
// keeps the bindings in one place and testable.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns WASD, arrow and vim bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up", "k"),
			key.WithHelp("w/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down", "j"),
			key.WithHelp("s/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left", "h"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right", "l"),
			key.WithHelp("d/→", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Quit},
	}
}

// Input translates a key message. Unbound keys yield InputNone.
func (k KeyMap) Input(msg tea.KeyMsg) core.Input {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Quit()
	case key.Matches(msg, k.Up):
		return core.Move(core.DirUp)
	case key.Matches(msg, k.Down):
		return core.Move(core.DirDown)
	case key.Matches(msg, k.Left):
		return core.Move(core.DirLeft)
	case key.Matches(msg, k.Right):
		return core.Move(core.DirRight)
	}
	return core.Input{}
}
