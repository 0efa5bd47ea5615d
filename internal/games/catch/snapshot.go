package catch

import "math"

// ObjectSnapshot is the render view of one falling object.
type ObjectSnapshot struct {
	ID     uint64
	X, Y   float64
	Width  float64
	Height float64
	Kind   Kind
}

// Snapshot is a read-only view of the world after a step.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	State     string
	Tick      uint64
	Score     int
	Lives     int
	Level     int
	HighScore int
	Interval  int

	ActorX, ActorY          float64
	ActorWidth, ActorHeight float64

	Objects []ObjectSnapshot

	// RNG state when the source exposes it, else 0
	RNGState uint64
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	objects := make([]ObjectSnapshot, len(w.objects))
	for i, obj := range w.objects {
		objects[i] = ObjectSnapshot{
			ID:     obj.ID,
			X:      obj.X,
			Y:      obj.Y,
			Width:  obj.Width,
			Height: obj.Height,
			Kind:   obj.Kind,
		}
	}

	var rngState uint64
	if st, ok := w.rng.(interface{ State() uint64 }); ok {
		rngState = st.State()
	}

	return Snapshot{
		Tick:        w.tick,
		Score:       w.stats.Score,
		Lives:       w.stats.Lives,
		Level:       w.stats.Level,
		Interval:    w.Interval(),
		ActorX:      w.actor.X,
		ActorY:      w.actor.Y,
		ActorWidth:  w.actor.Width,
		ActorHeight: w.actor.Height,
		Objects:     objects,
		RNGState:    rngState,
	}
}

// Hash returns a simple hash of the simulation fields for determinism testing.
// State and HighScore are presentation fields and are not hashed.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)              //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)              //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.ActorX)
	h = h*31 + uint64(len(snap.Objects))
	for _, obj := range snap.Objects {
		h = h*31 + obj.ID
		h = h*31 + math.Float64bits(obj.X)
		h = h*31 + math.Float64bits(obj.Y)
		h = h*31 + uint64(obj.Kind) //#nosec G115 -- hash computation
	}
	h = h*31 + snap.RNGState
	return h
}
