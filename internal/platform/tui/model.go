package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/snake"
	"github.com/vovakirdan/snek/internal/storage"
	"github.com/vovakirdan/snek/internal/theme"
)

// ResultSaver persists finished games. *storage.Store implements it.
type ResultSaver interface {
	SaveResult(r storage.Result) (storage.Result, error)
}

// Options configures a play session.
type Options struct {
	Theme    theme.Theme
	Store    ResultSaver // nil disables persistence
	Logger   *log.Logger // nil discards logs
	ShowHelp bool        // Draw the key help line under the board
}

// Outcome describes how a session ended.
type Outcome struct {
	Status      snake.Status
	Score       uint32
	Length      int
	Interrupted bool            // The player quit before the game ended
	Saved       *storage.Result // Set when the result was stored
}

// Model is the Bubble Tea model for a single game.
type Model struct {
	game     *snake.Game
	turns    snake.TurnBuffer
	board    *snake.Board
	opts     Options
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	quitting bool
	finished bool
	saved    *storage.Result
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *snake.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		board:  snake.Derive(game),
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	if m.game.Status().Finished() {
		// Nothing to play, e.g. the board has no room for food.
		return tea.Quit
	}
	return tickCmd(m.game.FrameTime())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleInput(m.keys.Input(msg))

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m.handleInput(core.Resize())

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleInput processes platform inputs in arrival order.
func (m Model) handleInput(in core.Input) (tea.Model, tea.Cmd) {
	switch in.Kind {
	case core.InputQuit:
		m.quitting = true
		m.logger.Debug("quit requested", "tick", m.game.Tick(), "score", m.game.Score())
		return m, tea.Quit

	case core.InputResize:
		// Redraw from a blank screen so no stale frame remains.
		return m, tea.ClearScreen

	case core.InputMove:
		if m.finished {
			return m, nil
		}
		if m.turns.Offer(in.Dir, m.game.Direction()) {
			m.logger.Debug("turn queued", "dir", in.Dir, "pending", m.turns.Len())
		}
	}

	return m, nil
}

// handleTick steps the simulation once and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.finished {
		return m, nil
	}

	turn := m.turns.NextTurn(m.game.Direction())
	res := m.game.Step(turn)
	m.board.Derive(m.game)

	if res.Ate {
		m.logger.Debug("food eaten", "score", m.game.Score(), "length", m.game.Len(), "head", m.game.Head())
	}
	if res.SpeedChanged {
		m.logger.Debug("speed up", "speed", m.game.Speed(), "frame", m.game.FrameTime())
	}

	if res.Status.Finished() {
		return m.finish()
	}

	return m, tickCmd(m.game.FrameTime())
}

// finish records the result and ends the program.
func (m Model) finish() (tea.Model, tea.Cmd) {
	m.finished = true
	snap := m.game.Snapshot()
	m.logger.Debug("game over", "status", snap.Status, "score", snap.Score, "tick", snap.Tick, "length", len(snap.Snake))

	// Save score on game over (once)
	if m.opts.Store != nil && m.game.Score() > 0 {
		outcome := storage.OutcomeDead
		if m.game.Status() == snake.StatusWin {
			outcome = storage.OutcomeWin
		}
		cfg := m.game.Config()
		saved, err := m.opts.Store.SaveResult(storage.Result{
			Variant: cfg.Variant(),
			Score:   int(m.game.Score()),
			Outcome: outcome,
			Seed:    cfg.Seed,
			Length:  m.game.Len(),
		})
		if err != nil {
			// Best-effort save, the session still ends normally.
			m.logger.Warn("cannot save result", "err", err)
		} else {
			m.saved = &saved
			m.logger.Debug("result saved", "run", saved.RunID, "variant", saved.Variant)
		}
	}

	return m, tea.Quit
}

// Outcome reports how the session ended.
func (m Model) Outcome() Outcome {
	return Outcome{
		Status:      m.game.Status(),
		Score:       m.game.Score(),
		Length:      m.game.Len(),
		Interrupted: m.quitting && !m.game.Status().Finished(),
		Saved:       m.saved,
	}
}

// View renders the board. The last frame stays on the terminal after exit.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(RenderBoard(m.board, m.opts.Theme, m.game.Score()))

	if m.opts.ShowHelp && !m.finished && !m.quitting {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	}
	b.WriteString("\n")

	return b.String()
}

// Run plays one game in the terminal and reports how it ended.
// The board is drawn inline rather than on the alternate screen so the final
// frame remains visible afterwards.
func Run(cfg core.GameConfig, opts Options) (Outcome, error) {
	model := NewModel(snake.New(cfg), opts)

	p := tea.NewProgram(model)

	finalModel, err := p.Run()
	if err != nil {
		return Outcome{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return model.Outcome(), nil
	}

	return m.Outcome(), nil
}

// ResultLine returns the message printed after the game, or "" if none.
func ResultLine(o Outcome) string {
	switch {
	case o.Status == snake.StatusWin:
		return wonStyle.Render("You Won!")
	case o.Status == snake.StatusDead:
		return lostStyle.Render("Game Over!") + " " + scoreLabel(o.Score)
	default:
		return ""
	}
}
