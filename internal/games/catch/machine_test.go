package catch

import (
	"errors"
	"testing"
)

func TestMachineTransitions(t *testing.T) {
	states := []State{StateLoading, StateMenu, StatePlaying, StateGameOver}
	legal := map[[2]State]bool{
		{StateLoading, StateMenu}:     true,
		{StateMenu, StatePlaying}:     true,
		{StatePlaying, StateGameOver}: true,
		{StateGameOver, StateMenu}:    true,
		{StateGameOver, StatePlaying}: true,
	}

	for _, from := range states {
		for _, to := range states {
			m := &Machine{state: from}
			err := m.Transition(to)

			if legal[[2]State{from, to}] {
				if err != nil {
					t.Errorf("%s -> %s: unexpected error %v", from, to, err)
				}
				if m.State() != to {
					t.Errorf("%s -> %s: state = %s", from, to, m.State())
				}
				continue
			}

			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("%s -> %s: error = %v, expected ErrInvalidTransition", from, to, err)
			}
			if m.State() != from {
				t.Errorf("%s -> %s: rejected transition changed state to %s", from, to, m.State())
			}
		}
	}
}

func TestMachineStartsLoading(t *testing.T) {
	m := NewMachine()
	if m.State() != StateLoading {
		t.Errorf("initial state = %s, expected loading", m.State())
	}
	if m.Can(StatePlaying) {
		t.Error("loading should not allow playing")
	}
}
