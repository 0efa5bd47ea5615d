package catch

// Rand is the random source used by the spawner.
// Inject a seeded source to make runs reproducible.
type Rand interface {
	Intn(n int) int   // Uniform in [0, n)
	Float64() float64 // Uniform in [0, 1)
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG so a run is fully defined by its seed.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// High bits of an LCG are far better distributed than low bits.
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// State returns the internal state, for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}
