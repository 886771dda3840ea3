package snake

import "github.com/vovakirdan/snek/internal/core"

// TurnBufferSize is the number of pending turns a TurnBuffer holds.
const TurnBufferSize = 5

// TurnBuffer queues direction changes typed between steps so quick key
// sequences (a U-turn in two presses) survive until the simulation gets to
// them. The zero value is an empty buffer ready to use.
type TurnBuffer struct {
	queue [TurnBufferSize]core.Dir
	size  int
}

// Offer enqueues candidate given the direction the snake currently moves in.
// The first pending turn must be perpendicular to current; later ones must
// differ from the one queued before them. Offers on a full buffer are
// dropped. Returns whether the candidate was enqueued.
func (b *TurnBuffer) Offer(candidate, current core.Dir) bool {
	switch {
	case b.size == 0 && !candidate.IsPerpendicular(current):
		return false
	case b.size > 0 && b.queue[b.size-1] == candidate:
		return false
	case b.size == len(b.queue):
		return false
	}

	b.queue[b.size] = candidate
	b.size++
	return true
}

// NextTurn pops pending turns until one is perpendicular to current and
// returns it. Stale entries are discarded. Returns NoTurn when none is left.
func (b *TurnBuffer) NextTurn(current core.Dir) Turn {
	for b.size > 0 {
		d := b.queue[0]
		copy(b.queue[:], b.queue[1:b.size])
		b.size--

		if d.IsPerpendicular(current) {
			return TurnTo(d)
		}
	}
	return NoTurn
}

// Len returns the number of pending turns.
func (b *TurnBuffer) Len() int {
	return b.size
}

// Reset drops all pending turns.
func (b *TurnBuffer) Reset() {
	b.size = 0
}
