package catch

import (
	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
)

// World is the owned simulation state of one run. It is single-writer:
// only the goroutine that calls Step may touch it.
type World struct {
	cfg      config.CatchConfig
	spawner  *Spawner
	resolver Resolver
	rng      Rand

	actor   Actor
	objects []FallingObject
	stats   Stats
	tick    uint64 // Steps taken this run, also the spawn clock
	over    bool

	events []Event // Reused across steps
}

// NewWorld creates a world ready for its first step.
func NewWorld(cfg config.CatchConfig, rng Rand) *World {
	w := &World{
		cfg:     cfg,
		spawner: NewSpawner(cfg, rng),
		resolver: Resolver{
			FieldHeight:      cfg.Playfield.Height,
			LevelUpThreshold: cfg.Gameplay.LevelUpThreshold,
		},
		rng: rng,
	}
	w.Reset(nil)
	return w
}

// Reset reinitializes actor, objects, stats, tick counter and id counter.
// A nil rng keeps the current random source.
func (w *World) Reset(rng Rand) {
	if rng != nil {
		w.rng = rng
	}
	w.spawner.Reset(w.rng)

	w.actor = Actor{
		X:      (w.cfg.Playfield.Width - w.cfg.Actor.Width) / 2,
		Y:      w.cfg.ActorY(),
		Width:  w.cfg.Actor.Width,
		Height: w.cfg.Actor.Height,
		Speed:  w.cfg.Actor.Speed,
	}
	w.objects = w.objects[:0]
	w.stats = NewStats(w.cfg.Gameplay.StartLives)
	w.tick = 0
	w.over = false
}

// Step advances the world by one tick and returns the outcomes.
// Order: actor movement, object fall, spawn check, resolution.
// Once the game is over Step does nothing and returns nil.
// The returned slice is only valid until the next call.
func (w *World) Step(in core.InputFrame) []Event {
	if w.over {
		return nil
	}

	w.moveActor(in)

	for i := range w.objects {
		w.objects[i].Y += w.objects[i].Speed
	}

	if w.spawner.Due(w.tick, w.stats.Level) {
		w.objects = append(w.objects, w.spawner.Spawn(w.stats.Level))
	}

	w.objects, w.events = w.resolver.Resolve(w.actor, w.objects, &w.stats, w.events[:0])
	w.tick++

	if w.stats.Lives <= 0 {
		w.over = true
	}

	return w.events
}

// moveActor applies held intents. Left and right together cancel out.
func (w *World) moveActor(in core.InputFrame) {
	var vx float64
	if in.Has(core.ActionLeft) {
		vx -= w.actor.Speed
	}
	if in.Has(core.ActionRight) {
		vx += w.actor.Speed
	}

	maxX := w.cfg.Playfield.Width - w.actor.Width
	w.actor.X = core.ClampF(w.actor.X+vx, 0, maxX)
}

// Actor returns the actor.
func (w *World) Actor() Actor {
	return w.actor
}

// Objects returns a copy of the active objects.
func (w *World) Objects() []FallingObject {
	out := make([]FallingObject, len(w.objects))
	copy(out, w.objects)
	return out
}

// Stats returns the current stats.
func (w *World) Stats() Stats {
	return w.stats
}

// Tick returns the number of steps taken this run.
func (w *World) Tick() uint64 {
	return w.tick
}

// Over reports whether lives have run out.
func (w *World) Over() bool {
	return w.over
}

// Interval returns the current spawn interval.
func (w *World) Interval() int {
	return w.spawner.Interval(w.stats.Level)
}
