package snake

import (
	"slices"

	"github.com/vovakirdan/snek/internal/core"
)

// Snapshot captures the complete game state for determinism testing and debug
// logging.
type Snapshot struct {
	Tick   uint64
	Score  uint32
	Speed  uint32
	Dir    core.Dir
	Status Status
	Snake  []core.Coord
	Food   []Food
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.tick,
		Score:  g.score,
		Speed:  g.speed,
		Dir:    g.dir,
		Status: g.status,
		Snake:  slices.Clone(g.snake),
		Food:   slices.Clone(g.food),
	}
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(other Snapshot) bool {
	return s.Tick == other.Tick &&
		s.Score == other.Score &&
		s.Speed == other.Speed &&
		s.Dir == other.Dir &&
		s.Status == other.Status &&
		slices.Equal(s.Snake, other.Snake) &&
		slices.Equal(s.Food, other.Food)
}
