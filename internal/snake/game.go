// Package snake implements the snake simulation: the state machine that moves
// the snake and places food, the turn buffer that schedules direction changes,
// and the tile deriver that turns the snake's body into renderable shapes.
//
// The package is deterministic for a given seed and input sequence and has no
// terminal or UI dependencies.
package snake

import (
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/snek/internal/core"
)

// Status is the lifecycle state of a game.
type Status int

const (
	StatusOngoing Status = iota
	StatusDead
	StatusWin
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusOngoing:
		return "ongoing"
	case StatusDead:
		return "dead"
	case StatusWin:
		return "win"
	default:
		return "unknown"
	}
}

// Finished reports whether the status is terminal.
func (s Status) Finished() bool {
	return s != StatusOngoing
}

// Food is a food item on the board.
// ID carries no game meaning; renderers use its low 16 bits to pick a glyph
// and its high 16 bits to pick a color.
type Food struct {
	Pos core.Coord
	ID  uint32
}

// Turn is an optional direction change handed to Step.
type Turn struct {
	Dir core.Dir
	Set bool
}

// NoTurn keeps the current direction.
var NoTurn = Turn{}

// TurnTo requests a change to d.
func TurnTo(d core.Dir) Turn {
	return Turn{Dir: d, Set: true}
}

// StepResult reports what happened during a single Step.
type StepResult struct {
	Ate          bool   // The head landed on food
	SpeedChanged bool   // Speed increased this step
	Status       Status // Status after the step
}

// Game is the snake simulation state.
// It is created once per game and mutated only by Step; once the status is
// terminal it never changes again.
type Game struct {
	cfg    core.GameConfig
	snake  []core.Coord // Head at index 0
	dir    core.Dir
	food   []Food
	status Status
	score  uint32
	speed  uint32
	tick   uint64
	rng    *rand.Rand
}

// New creates a game from a validated config.
// The snake spawns horizontally in the middle row heading right. If the board
// has no room for all requested food the game starts already won.
func New(cfg core.GameConfig) *Game {
	y := cfg.Height / 2
	headX := (cfg.Width-1)/2 + cfg.InitialLength/2
	tailX := headX + 1 - cfg.InitialLength

	body := make([]core.Coord, 0, cfg.InitialLength+1)
	for x := headX; x >= tailX; x-- {
		body = append(body, core.C(x, y))
	}

	g := &Game{
		cfg:    cfg,
		snake:  body,
		dir:    core.DirRight,
		status: StatusOngoing,
		speed:  cfg.InitialSpeed,
		rng:    rand.New(rand.NewSource(int64(cfg.Seed))),
	}

	for range cfg.FoodCount {
		f, ok := g.placeFood()
		if !ok {
			g.status = StatusWin
			break
		}
		g.food = append(g.food, f)
	}

	return g
}

// Step advances the game by one move.
// A set turn replaces the current direction without re-validation; callers
// get valid turns from TurnBuffer. Step is a no-op once the game is finished.
func (g *Game) Step(turn Turn) StepResult {
	if g.status.Finished() {
		return StepResult{Status: g.status}
	}
	g.tick++

	if turn.Set {
		g.dir = turn.Dir
	}

	head := g.snake[0]
	var next core.Coord
	if g.cfg.Walls == core.WallsSolid {
		var ok bool
		next, ok = head.MoveBumping(g.dir, g.cfg.Width, g.cfg.Height)
		if !ok {
			g.status = StatusDead
			return StepResult{Status: g.status}
		}
	} else {
		next = head.MoveWrapping(g.dir, g.cfg.Width, g.cfg.Height)
	}

	// The tail leaves its cell before the collision test, so the head may
	// follow it into that cell.
	last := len(g.snake) - 1
	oldTail := g.snake[last]
	if slices.Contains(g.snake[:last], next) {
		g.status = StatusDead
		return StepResult{Status: g.status}
	}

	copy(g.snake[1:], g.snake[:last])
	g.snake[0] = next

	i := slices.IndexFunc(g.food, func(f Food) bool { return f.Pos == next })
	if i < 0 {
		return StepResult{Status: g.status}
	}

	result := StepResult{Ate: true}
	g.food = slices.Delete(g.food, i, i+1)
	g.snake = append(g.snake, oldTail)

	if f, ok := g.placeFood(); ok {
		g.food = append(g.food, f)
	} else {
		g.status = StatusWin
	}

	g.score++
	if g.cfg.FoodPerSpeedUp != 0 {
		speed := saturatingAdd(g.cfg.InitialSpeed, g.score/g.cfg.FoodPerSpeedUp)
		result.SpeedChanged = speed != g.speed
		g.speed = speed
	}

	result.Status = g.status
	return result
}

// placeFood picks a free cell for a new food item using the game's generator.
func (g *Game) placeFood() (Food, bool) {
	occupied := make(map[core.Coord]struct{}, len(g.snake)+len(g.food))
	for _, c := range g.snake {
		occupied[c] = struct{}{}
	}
	for _, f := range g.food {
		occupied[f.Pos] = struct{}{}
	}
	return PlaceFood(occupied, g.cfg.Width, g.cfg.Height, g.rng)
}

// saturatingAdd adds b to a, clamping at the maximum uint32.
func saturatingAdd(a, b uint32) uint32 {
	if b > math.MaxUint32-a {
		return math.MaxUint32
	}
	return a + b
}

// FrameTime returns how long a step lasts at the current speed.
func (g *Game) FrameTime() time.Duration {
	return time.Second / time.Duration(g.speed)
}

// Config returns the config the game was created with.
func (g *Game) Config() core.GameConfig {
	return g.cfg
}

// Width returns the board width.
func (g *Game) Width() int {
	return g.cfg.Width
}

// Height returns the board height.
func (g *Game) Height() int {
	return g.cfg.Height
}

// Score returns the number of food items eaten.
func (g *Game) Score() uint32 {
	return g.score
}

// Speed returns the current speed in steps per second.
func (g *Game) Speed() uint32 {
	return g.speed
}

// Direction returns the current movement direction.
func (g *Game) Direction() core.Dir {
	return g.dir
}

// Status returns the current status.
func (g *Game) Status() Status {
	return g.status
}

// Tick returns the number of steps taken.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Head returns the head position.
func (g *Game) Head() core.Coord {
	return g.snake[0]
}

// Len returns the snake length.
func (g *Game) Len() int {
	return len(g.snake)
}

// Snake returns a copy of the snake body, head first.
func (g *Game) Snake() []core.Coord {
	return slices.Clone(g.snake)
}

// Food returns a copy of the active food items.
func (g *Game) Food() []Food {
	return slices.Clone(g.food)
}
