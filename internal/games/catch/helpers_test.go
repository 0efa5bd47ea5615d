package catch

import (
	"testing"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
)

// stubRand returns fixed values so spawns land where a test wants them.
type stubRand struct {
	n int
	f float64
}

func (r stubRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.n % n
}

func (r stubRand) Float64() float64 {
	return r.f
}

// recordingPort records audio calls in order.
type recordingPort struct {
	calls []string
}

func (p *recordingPort) Play(track string, loop bool) {
	if loop {
		p.calls = append(p.calls, "loop:"+track)
		return
	}
	p.calls = append(p.calls, "play:"+track)
}

func (p *recordingPort) Stop(track string) {
	p.calls = append(p.calls, "stop:"+track)
}

func (p *recordingPort) has(call string) bool {
	for _, c := range p.calls {
		if c == call {
			return true
		}
	}
	return false
}

func testConfig(t *testing.T) config.CatchConfig {
	t.Helper()
	cfg := config.DefaultCatchConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	return cfg
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func countEvents(events []Event, t EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == t {
			n++
		}
	}
	return n
}
