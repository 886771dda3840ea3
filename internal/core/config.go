package core

import "fmt"

// WallPolicy decides what happens when the snake reaches the board edge.
type WallPolicy int

const (
	// WallsWrap connects each edge to the opposite one.
	WallsWrap WallPolicy = iota
	// WallsSolid makes leaving the board fatal.
	WallsSolid
)

// String returns the policy name used in score variants and logs.
func (p WallPolicy) String() string {
	if p == WallsSolid {
		return "walls"
	}
	return "wrap"
}

// GameConfig holds the immutable parameters of a single game.
// The config layer guarantees Width, Height, InitialSpeed and InitialLength
// are positive and InitialLength <= Width before a game is built from it.
type GameConfig struct {
	Width          int        // Board width in cells
	Height         int        // Board height in cells
	InitialLength  int        // Snake length at spawn
	InitialSpeed   uint32     // Steps per second at score 0
	FoodCount      uint32     // Food items kept on the board
	FoodPerSpeedUp uint32     // Food needed per +1 speed, 0 disables speed-up
	Walls          WallPolicy // Edge behaviour
	Seed           uint64     // RNG seed for deterministic gameplay
}

// Variant returns a short key describing the board rules, e.g. "walls-25x15".
// Scores are only comparable within a variant.
func (c GameConfig) Variant() string {
	return fmt.Sprintf("%s-%dx%d", c.Walls, c.Width, c.Height)
}
