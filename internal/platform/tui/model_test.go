package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snek/internal/core"
	"github.com/vovakirdan/snek/internal/snake"
	"github.com/vovakirdan/snek/internal/storage"
)

type fakeSaver struct {
	saved []storage.Result
	err   error
}

func (f *fakeSaver) SaveResult(r storage.Result) (storage.Result, error) {
	if f.err != nil {
		return storage.Result{}, f.err
	}
	r.ID = int64(len(f.saved) + 1)
	r.RunID = "run-test"
	f.saved = append(f.saved, r)
	return r, nil
}

func newTestModel(t *testing.T, cfg core.GameConfig, opts Options) Model {
	t.Helper()
	if opts.Theme.Snake == nil {
		opts.Theme = mustTheme(t, "basic", "ascii", "ascii")
	}
	return NewModel(snake.New(cfg), opts)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func tick() TickMsg {
	return TickMsg(time.Now())
}

var openBoard = core.GameConfig{
	Width:         10,
	Height:        10,
	InitialLength: 3,
	InitialSpeed:  5,
	Seed:          7,
}

func TestModelTickSteps(t *testing.T) {
	m := newTestModel(t, openBoard, Options{})
	head := m.game.Head()

	m, cmd := update(t, m, tick())
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if m.game.Tick() != 1 {
		t.Errorf("Tick() = %d, expected 1", m.game.Tick())
	}
	if got, want := m.game.Head(), head.MoveWrapping(core.DirRight, 10, 10); got != want {
		t.Errorf("Head() = %v, expected %v", got, want)
	}
	if m.board.At(m.game.Head()).Kind != snake.TileHeadRight {
		t.Errorf("board not re-derived after the step")
	}
}

func TestModelQueuedTurns(t *testing.T) {
	m := newTestModel(t, openBoard, Options{})

	// Up then left: a U-turn typed between two steps
	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, runeKey('a'))
	if m.turns.Len() != 2 {
		t.Fatalf("pending turns = %d, expected 2", m.turns.Len())
	}

	m, _ = update(t, m, tick())
	if m.game.Direction() != core.DirUp {
		t.Errorf("after first tick Direction() = %v, expected up", m.game.Direction())
	}
	m, _ = update(t, m, tick())
	if m.game.Direction() != core.DirLeft {
		t.Errorf("after second tick Direction() = %v, expected left", m.game.Direction())
	}
}

func TestModelIgnoresReverse(t *testing.T) {
	m := newTestModel(t, openBoard, Options{})

	m, _ = update(t, m, runeKey('a'))
	m, _ = update(t, m, tick())
	if m.game.Direction() != core.DirRight {
		t.Errorf("Direction() = %v, a reverse must be ignored", m.game.Direction())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, openBoard, Options{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Fatal("ctrl+c should quit")
	}

	o := m.Outcome()
	if !o.Interrupted {
		t.Error("Outcome().Interrupted should be set after quitting")
	}
	if o.Status != snake.StatusOngoing {
		t.Errorf("Outcome().Status = %v, expected ongoing", o.Status)
	}
	if ResultLine(o) != "" {
		t.Errorf("ResultLine() = %q for an interrupted game", ResultLine(o))
	}

	// No step happens once quitting
	m, cmd = update(t, m, tick())
	if cmd != nil || m.game.Tick() != 0 {
		t.Error("tick after quit should be ignored")
	}
}

func TestModelResizeClears(t *testing.T) {
	m := newTestModel(t, openBoard, Options{})

	_, cmd := update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if cmd == nil {
		t.Error("resize should request a clear screen")
	}
}

func TestModelWinSaves(t *testing.T) {
	// The snake fills all but one cell; eating the only food wins.
	cfg := core.GameConfig{
		Width:         4,
		Height:        1,
		InitialLength: 3,
		InitialSpeed:  5,
		FoodCount:     1,
		Walls:         core.WallsSolid,
		Seed:          3,
	}
	saver := &fakeSaver{}
	m := newTestModel(t, cfg, Options{Store: saver})

	m, cmd := update(t, m, tick())
	if !isQuit(cmd) {
		t.Fatal("finished game should quit")
	}

	if len(saver.saved) != 1 {
		t.Fatalf("saved %d results, expected 1", len(saver.saved))
	}
	r := saver.saved[0]
	if r.Variant != "walls-4x1" || r.Score != 1 || r.Outcome != storage.OutcomeWin || r.Length != 4 || r.Seed != 3 {
		t.Errorf("saved %+v", r)
	}

	o := m.Outcome()
	if o.Status != snake.StatusWin || o.Interrupted {
		t.Errorf("Outcome() = %+v", o)
	}
	if o.Saved == nil || o.Saved.RunID != "run-test" {
		t.Errorf("Outcome().Saved = %+v", o.Saved)
	}
	if !strings.Contains(ResultLine(o), "You Won!") {
		t.Errorf("ResultLine() = %q", ResultLine(o))
	}

	// Further ticks do nothing
	m, cmd = update(t, m, tick())
	if cmd != nil || m.game.Tick() != 1 {
		t.Error("tick after the end should be ignored")
	}
	if len(saver.saved) != 1 {
		t.Error("result saved twice")
	}
}

func TestModelDeathWithoutScoreNotSaved(t *testing.T) {
	cfg := core.GameConfig{
		Width:         3,
		Height:        1,
		InitialLength: 3,
		InitialSpeed:  5,
		Walls:         core.WallsSolid,
		Seed:          3,
	}
	saver := &fakeSaver{}
	m := newTestModel(t, cfg, Options{Store: saver})

	m, cmd := update(t, m, tick())
	if !isQuit(cmd) {
		t.Fatal("dead game should quit")
	}
	if len(saver.saved) != 0 {
		t.Errorf("saved %d results for a zero score", len(saver.saved))
	}

	o := m.Outcome()
	if o.Status != snake.StatusDead {
		t.Fatalf("Outcome().Status = %v, expected dead", o.Status)
	}
	line := ResultLine(o)
	if !strings.Contains(line, "Game Over!") || !strings.Contains(line, "Score: 0") {
		t.Errorf("ResultLine() = %q", line)
	}
}

func TestModelSaveErrorIsNotFatal(t *testing.T) {
	cfg := core.GameConfig{
		Width:         4,
		Height:        1,
		InitialLength: 3,
		InitialSpeed:  5,
		FoodCount:     1,
		Seed:          3,
	}
	m := newTestModel(t, cfg, Options{Store: &fakeSaver{err: errors.New("disk full")}})

	m, cmd := update(t, m, tick())
	if !isQuit(cmd) {
		t.Fatal("finished game should quit")
	}
	if m.Outcome().Saved != nil {
		t.Error("Outcome().Saved should be nil when saving failed")
	}
}

func TestModelInitImmediateWin(t *testing.T) {
	cfg := core.GameConfig{
		Width:         2,
		Height:        1,
		InitialLength: 2,
		InitialSpeed:  5,
		FoodCount:     1,
	}
	m := newTestModel(t, cfg, Options{})

	if !isQuit(m.Init()) {
		t.Error("Init() should quit when the game starts finished")
	}
	if m.Outcome().Status != snake.StatusWin {
		t.Errorf("Outcome().Status = %v, expected win", m.Outcome().Status)
	}
}

func TestModelInitSchedulesTick(t *testing.T) {
	m := newTestModel(t, openBoard, Options{})
	if m.Init() == nil {
		t.Error("Init() should schedule the first tick")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, openBoard, Options{ShowHelp: true})

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Errorf("view lacks the score:\n%s", view)
	}
	if !strings.Contains(view, "quit") {
		t.Errorf("view lacks the key help:\n%s", view)
	}
	if !strings.HasSuffix(view, "\n") {
		t.Error("view should end with a newline")
	}

	m.opts.ShowHelp = false
	if strings.Contains(m.View(), "quit") {
		t.Error("help shown although disabled")
	}
}
