// Package replay records the intents of a run and re-simulates it.
// A run is fully defined by its seed, its config and the per-tick held
// intents, so recordings stay small.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/games/catch"
)

// Version is the current recording format version.
const Version = 1

var (
	// ErrUnsupportedVersion is returned when decoding an unknown format.
	ErrUnsupportedVersion = errors.New("replay: unsupported version")
	// ErrMismatch is returned by Verify when a replay diverges.
	ErrMismatch = errors.New("replay: result mismatch")
)

// Intent bits packed per tick.
const (
	bitLeft uint8 = 1 << iota
	bitRight
)

// Span is a run of consecutive ticks with the same intents.
type Span struct {
	Mask  uint8  `msgpack:"m"`
	Ticks uint32 `msgpack:"n"`
}

// Final is the outcome stored alongside the intents.
type Final struct {
	Score int    `msgpack:"score"`
	Level int    `msgpack:"level"`
	Lives int    `msgpack:"lives"`
	Ticks uint64 `msgpack:"ticks"`
	Hash  uint64 `msgpack:"hash"`
}

// Recording is one recorded run.
type Recording struct {
	Version int                `msgpack:"v"`
	Player  string             `msgpack:"player"`
	Seed    int64              `msgpack:"seed"`
	Config  config.CatchConfig `msgpack:"config"`
	Spans   []Span             `msgpack:"spans"`
	Final   Final              `msgpack:"final"`
}

// Ticks returns the number of recorded ticks.
func (r Recording) Ticks() uint64 {
	var n uint64
	for _, s := range r.Spans {
		n += uint64(s.Ticks)
	}
	return n
}

// Recorder accumulates intents for one run.
type Recorder struct {
	rec Recording
}

// NewRecorder starts a recording for a run with the given seed and config.
func NewRecorder(player string, seed int64, cfg config.CatchConfig) *Recorder {
	return &Recorder{rec: Recording{
		Version: Version,
		Player:  player,
		Seed:    seed,
		Config:  cfg,
	}}
}

// Record appends the held intents of one tick.
func (r *Recorder) Record(in core.InputFrame) {
	mask := encode(in)
	if n := len(r.rec.Spans); n > 0 && r.rec.Spans[n-1].Mask == mask {
		r.rec.Spans[n-1].Ticks++
		return
	}
	r.rec.Spans = append(r.rec.Spans, Span{Mask: mask, Ticks: 1})
}

// Finish stores the final snapshot of the run.
func (r *Recorder) Finish(snap catch.Snapshot) {
	r.rec.Final = Final{
		Score: snap.Score,
		Level: snap.Level,
		Lives: snap.Lives,
		Ticks: snap.Tick,
		Hash:  snap.Hash(),
	}
}

// Recording returns the recording so far.
func (r *Recorder) Recording() Recording {
	return r.rec
}

func encode(in core.InputFrame) uint8 {
	var mask uint8
	if in.Has(core.ActionLeft) {
		mask |= bitLeft
	}
	if in.Has(core.ActionRight) {
		mask |= bitRight
	}
	return mask
}

func decode(mask uint8) core.InputFrame {
	in := core.NewInputFrame()
	if mask&bitLeft != 0 {
		in.Set(core.ActionLeft)
	}
	if mask&bitRight != 0 {
		in.Set(core.ActionRight)
	}
	return in
}

// Encode writes a recording as msgpack.
func Encode(w io.Writer, rec Recording) error {
	if err := msgpack.NewEncoder(w).Encode(&rec); err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	return nil
}

// Decode reads a msgpack recording and checks its version.
func Decode(r io.Reader) (Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return Recording{}, fmt.Errorf("replay: decode: %w", err)
	}
	if rec.Version != Version {
		return Recording{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, rec.Version)
	}
	return rec, nil
}

// Save writes a recording to a file.
func Save(path string, rec Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("replay: create %s: %w", path, err)
	}
	if err := Encode(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a recording from a file.
func Load(path string) (Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return Recording{}, fmt.Errorf("replay: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Replay re-simulates a recording headlessly and returns the final snapshot.
// Simulation stops early if the run ends before the intents do.
func Replay(rec Recording) (catch.Snapshot, error) {
	if err := rec.Config.Validate(); err != nil {
		return catch.Snapshot{}, fmt.Errorf("replay: %w", err)
	}

	world := catch.NewWorld(rec.Config, catch.NewSimpleRNG(rec.Seed))
	for _, span := range rec.Spans {
		in := decode(span.Mask)
		for range span.Ticks {
			if world.Over() {
				return world.Snapshot(), nil
			}
			world.Step(in)
		}
	}
	return world.Snapshot(), nil
}

// Verify replays a recording and compares the result with the stored one.
func Verify(rec Recording) error {
	snap, err := Replay(rec)
	if err != nil {
		return err
	}
	got := Final{
		Score: snap.Score,
		Level: snap.Level,
		Lives: snap.Lives,
		Ticks: snap.Tick,
		Hash:  snap.Hash(),
	}
	if got != rec.Final {
		return fmt.Errorf("%w: recorded %+v, replayed %+v", ErrMismatch, rec.Final, got)
	}
	return nil
}
