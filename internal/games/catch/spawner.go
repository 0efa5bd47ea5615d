package catch

import "github.com/vovakirdan/tui-catch/internal/config"

// Spawner decides when new objects appear and rolls their initial state.
type Spawner struct {
	curve   config.Curve
	objects config.ObjectConfig
	fieldW  float64
	rng     Rand
	nextID  uint64
}

// NewSpawner creates a spawner for the given config and random source.
func NewSpawner(cfg config.CatchConfig, rng Rand) *Spawner {
	return &Spawner{
		curve:   config.NewCurve(cfg),
		objects: cfg.Objects,
		fieldW:  cfg.Playfield.Width,
		rng:     rng,
	}
}

// Reset restarts id allocation for a new run.
func (s *Spawner) Reset(rng Rand) {
	if rng != nil {
		s.rng = rng
	}
	s.nextID = 0
}

// Interval returns the spawn interval in ticks at the given level.
func (s *Spawner) Interval(level int) int {
	return s.curve.SpawnInterval(level)
}

// Due reports whether a spawn fires on this tick.
func (s *Spawner) Due(tick uint64, level int) bool {
	interval := uint64(s.Interval(level)) //#nosec G115 -- interval is at least 1
	return tick%interval == 0
}

// Spawn creates a new object fully above the playfield.
// Kind, speed and column are drawn in that order.
func (s *Spawner) Spawn(level int) FallingObject {
	kind := Kind(s.rng.Intn(int(KindCount)))
	speed := s.curve.FallSpeed(level, s.rng.Float64())
	x := s.rng.Float64() * (s.fieldW - s.objects.Width)

	s.nextID++

	return FallingObject{
		ID:     s.nextID,
		X:      x,
		Y:      -s.objects.Height,
		Width:  s.objects.Width,
		Height: s.objects.Height,
		Speed:  speed,
		Kind:   kind,
	}
}

// LastID returns the most recently allocated id, or 0 if none.
func (s *Spawner) LastID() uint64 {
	return s.nextID
}
