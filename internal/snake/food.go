package snake

import "github.com/vovakirdan/snek/internal/core"

// Source is the random source the sampler draws from.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Uint32() uint32
}

// PlaceFood picks a uniformly random cell of the w by h board that is not in
// occupied and gives it a random identifier.
// Returns false when every cell is occupied. All occupied cells must lie on
// the board.
//
// The scan is O(w*h) per placement, which is fine for terminal-sized boards.
func PlaceFood(occupied map[core.Coord]struct{}, w, h int, rng Source) (Food, bool) {
	free := w*h - len(occupied)
	if free <= 0 {
		return Food{}, false
	}

	k := rng.Intn(free)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := core.C(x, y)
			if _, taken := occupied[c]; taken {
				continue
			}
			if k == 0 {
				return Food{Pos: c, ID: rng.Uint32()}, true
			}
			k--
		}
	}

	// Unreachable while occupied only holds on-board cells.
	return Food{}, false
}
