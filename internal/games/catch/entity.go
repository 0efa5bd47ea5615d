// Package catch implements the falling-objects catch game: an actor moves
// along the bottom of a fixed virtual playfield and catches objects that
// fall from the top. Catches score, misses cost lives, and the level rises
// with score.
//
// All coordinates are virtual playfield pixels. The platform layer scales
// them to terminal cells.
package catch

import "github.com/vovakirdan/tui-catch/internal/core"

// Kind is the presentation type of a falling object.
// It has no effect on gameplay.
type Kind int

const (
	KindApple Kind = iota
	KindStar
	KindGem
	KindCoin
	KindCount // Number of kinds, not a kind
)

// String returns the kind name, also used as the sprite id.
func (k Kind) String() string {
	switch k {
	case KindApple:
		return "apple"
	case KindStar:
		return "star"
	case KindGem:
		return "gem"
	case KindCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// Actor is the player-controlled catcher. Y never changes during a run.
type Actor struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Pixels per tick
}

// Rect returns the actor hitbox.
func (a Actor) Rect() core.Rect {
	return core.NewRect(a.X, a.Y, a.Width, a.Height)
}

// FallingObject is a spawned object descending at constant speed.
type FallingObject struct {
	ID            uint64 // Unique within a run
	X, Y          float64
	Width, Height float64
	Speed         float64 // Pixels per tick
	Kind          Kind
}

// Rect returns the object hitbox.
func (o FallingObject) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}
