package snake

import "github.com/vovakirdan/snek/internal/core"

// TileKind is the shape drawn in one board cell.
type TileKind uint8

const (
	TileEmpty TileKind = iota
	TileFood

	TileHeadUp
	TileHeadDown
	TileHeadLeft
	TileHeadRight

	// Tail kinds name the direction from the segment before the tail toward
	// the tail, i.e. the way the tail end points.
	TileTailUp
	TileTailDown
	TileTailLeft
	TileTailRight

	TileBodyVertical
	TileBodyHorizontal

	// Corner kinds name the two neighbours the segment connects.
	TileCornerUpLeft
	TileCornerUpRight
	TileCornerDownLeft
	TileCornerDownRight
)

var tileKindNames = [...]string{
	TileEmpty:           "empty",
	TileFood:            "food",
	TileHeadUp:          "head-up",
	TileHeadDown:        "head-down",
	TileHeadLeft:        "head-left",
	TileHeadRight:       "head-right",
	TileTailUp:          "tail-up",
	TileTailDown:        "tail-down",
	TileTailLeft:        "tail-left",
	TileTailRight:       "tail-right",
	TileBodyVertical:    "body-vertical",
	TileBodyHorizontal:  "body-horizontal",
	TileCornerUpLeft:    "corner-up-left",
	TileCornerUpRight:   "corner-up-right",
	TileCornerDownLeft:  "corner-down-left",
	TileCornerDownRight: "corner-down-right",
}

// String returns a human-readable name for the tile kind.
func (k TileKind) String() string {
	if int(k) < len(tileKindNames) {
		return tileKindNames[k]
	}
	return "unknown"
}

// IsSnake reports whether the kind is part of the snake.
func (k TileKind) IsSnake() bool {
	return k >= TileHeadUp && k <= TileCornerDownRight
}

// HeadTile returns the head shape for a snake moving in d.
func HeadTile(d core.Dir) TileKind {
	switch d {
	case core.DirUp:
		return TileHeadUp
	case core.DirDown:
		return TileHeadDown
	case core.DirLeft:
		return TileHeadLeft
	default:
		return TileHeadRight
	}
}

// TailTile returns the tail shape for a tail lying in d from its predecessor.
func TailTile(d core.Dir) TileKind {
	switch d {
	case core.DirUp:
		return TileTailUp
	case core.DirDown:
		return TileTailDown
	case core.DirLeft:
		return TileTailLeft
	default:
		return TileTailRight
	}
}

// BodyTile returns the shape of an interior segment whose neighbours lie in
// directions a and b. The order of a and b does not matter.
func BodyTile(a, b core.Dir) TileKind {
	if !a.IsPerpendicular(b) {
		if a.Vertical() {
			return TileBodyVertical
		}
		return TileBodyHorizontal
	}

	v, hz := a, b
	if !v.Vertical() {
		v, hz = b, a
	}
	switch {
	case v == core.DirUp && hz == core.DirLeft:
		return TileCornerUpLeft
	case v == core.DirUp:
		return TileCornerUpRight
	case hz == core.DirLeft:
		return TileCornerDownLeft
	default:
		return TileCornerDownRight
	}
}

// Tile is one cell of a derived board. FoodID is set only for TileFood.
type Tile struct {
	Kind   TileKind
	FoodID uint32
}

// Board is a row-major grid of tiles derived from a game.
type Board struct {
	W, H  int
	Tiles []Tile
}

// NewBoard allocates an empty w by h board.
func NewBoard(w, h int) *Board {
	return &Board{W: w, H: h, Tiles: make([]Tile, w*h)}
}

// Derive builds a fresh board from the game state.
func Derive(g *Game) *Board {
	b := NewBoard(g.Width(), g.Height())
	b.Derive(g)
	return b
}

// At returns the tile at c.
func (b *Board) At(c core.Coord) Tile {
	return b.Tiles[c.Y*b.W+c.X]
}

// Row returns the tiles of row y. The slice aliases the board.
func (b *Board) Row(y int) []Tile {
	return b.Tiles[y*b.W : (y+1)*b.W]
}

func (b *Board) set(c core.Coord, t Tile) {
	b.Tiles[c.Y*b.W+c.X] = t
}

// Derive refills the board from the game state, reusing its storage.
func (b *Board) Derive(g *Game) {
	w, h := g.Width(), g.Height()
	if b.W != w || b.H != h || len(b.Tiles) != w*h {
		b.W, b.H = w, h
		b.Tiles = make([]Tile, w*h)
	} else {
		clear(b.Tiles)
	}

	body := g.snake
	n := len(body)

	for i := 1; i < n-1; i++ {
		el := body[i]
		kind := BodyTile(el.Compare(body[i-1], w, h), el.Compare(body[i+1], w, h))
		b.set(el, Tile{Kind: kind})
	}

	b.set(body[0], Tile{Kind: HeadTile(g.dir)})

	if n > 1 {
		tail := body[n-1]
		b.set(tail, Tile{Kind: TailTile(body[n-2].Compare(tail, w, h))})
	}

	for _, f := range g.food {
		b.set(f.Pos, Tile{Kind: TileFood, FoodID: f.ID})
	}
}
