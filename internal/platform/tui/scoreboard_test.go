package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snek/internal/storage"
)

type fakeScores struct {
	results map[string][]storage.Result
	err     error
}

func (f *fakeScores) Variants() ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	var names []string
	for _, v := range []string{"walls-10x10", "wrap-25x15"} {
		if _, ok := f.results[v]; ok {
			names = append(names, v)
		}
	}
	return names, nil
}

func (f *fakeScores) TopScores(variant string, limit int) ([]storage.Result, error) {
	rs := f.results[variant]
	if len(rs) > limit {
		rs = rs[:limit]
	}
	return rs, nil
}

func (f *fakeScores) GetStats(variant string) (*storage.Stats, error) {
	st := &storage.Stats{Variant: variant}
	for _, r := range f.results[variant] {
		st.GamesCount++
		st.HighScore = max(st.HighScore, r.Score)
	}
	return st, nil
}

func newFakeScores() *fakeScores {
	at := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	return &fakeScores{results: map[string][]storage.Result{
		"walls-10x10": {
			{Variant: "walls-10x10", Score: 12, Outcome: storage.OutcomeDead, Length: 15, CreatedAt: at},
		},
		"wrap-25x15": {
			{Variant: "wrap-25x15", Score: 40, Outcome: storage.OutcomeWin, Length: 43, CreatedAt: at},
			{Variant: "wrap-25x15", Score: 7, Outcome: storage.OutcomeDead, Length: 10, CreatedAt: at},
		},
	}}
}

func updateScoreboard(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T, expected ScoreboardModel", next)
	}
	return nm
}

func TestScoreboardSelectsCurrentVariant(t *testing.T) {
	m := NewScoreboardModel(newFakeScores(), "wrap-25x15", 100, 30)

	if m.Selected() != "wrap-25x15" {
		t.Errorf("Selected() = %q, expected wrap-25x15", m.Selected())
	}
	if len(m.scores) != 2 {
		t.Errorf("loaded %d scores, expected 2", len(m.scores))
	}
	if rows := m.table.Rows(); len(rows) != 2 || rows[0][1] != "40" || rows[0][3] != "win" {
		t.Errorf("table rows = %v", rows)
	}
}

func TestScoreboardCyclesVariants(t *testing.T) {
	m := NewScoreboardModel(newFakeScores(), "", 100, 30)
	if m.Selected() != "walls-10x10" {
		t.Fatalf("Selected() = %q, expected the first variant", m.Selected())
	}

	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Selected() != "wrap-25x15" {
		t.Errorf("after tab Selected() = %q", m.Selected())
	}
	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Selected() != "walls-10x10" {
		t.Errorf("tab should wrap around, Selected() = %q", m.Selected())
	}
	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Selected() != "wrap-25x15" {
		t.Errorf("left should wrap around, Selected() = %q", m.Selected())
	}
	if len(m.scores) != 2 {
		t.Errorf("scores not reloaded after switching, got %d", len(m.scores))
	}
}

func TestScoreboardView(t *testing.T) {
	for _, width := range []int{60, 120} {
		m := NewScoreboardModel(newFakeScores(), "wrap-25x15", width, 30)
		view := m.View()

		if !strings.Contains(view, "HIGH SCORES - wrap-25x15") {
			t.Errorf("width %d: view lacks the title:\n%s", width, view)
		}
		if !strings.Contains(view, "2 games") {
			t.Errorf("width %d: view lacks the stats line:\n%s", width, view)
		}
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(&fakeScores{}, "", 80, 24)

	if m.Selected() != "" {
		t.Errorf("Selected() = %q on an empty store", m.Selected())
	}
	m = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Errorf("empty view:\n%s", m.View())
	}
}

func TestScoreboardError(t *testing.T) {
	m := NewScoreboardModel(&fakeScores{err: errors.New("locked")}, "", 80, 24)
	if !strings.Contains(m.View(), "locked") {
		t.Errorf("view should show the error:\n%s", m.View())
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(newFakeScores(), "", 80, 24)

	next, cmd := m.Update(runeKey('q'))
	if !isQuit(cmd) {
		t.Error("q should quit the scoreboard")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
