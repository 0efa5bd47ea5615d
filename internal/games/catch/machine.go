package catch

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a transition is not legal from the
// current state. The state is left unchanged.
var ErrInvalidTransition = errors.New("catch: invalid transition")

// State is the top-level game state.
type State int

const (
	StateLoading State = iota
	StateMenu
	StatePlaying
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// transitions lists every legal edge.
var transitions = map[State][]State{
	StateLoading:  {StateMenu},
	StateMenu:     {StatePlaying},
	StatePlaying:  {StateGameOver},
	StateGameOver: {StateMenu, StatePlaying},
}

// Machine guards the game state. It starts in StateLoading.
type Machine struct {
	state State
}

// NewMachine creates a machine in the loading state.
func NewMachine() *Machine {
	return &Machine{state: StateLoading}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Can reports whether moving to the given state is legal.
func (m *Machine) Can(to State) bool {
	for _, next := range transitions[m.state] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves to the given state or returns ErrInvalidTransition.
func (m *Machine) Transition(to State) error {
	if !m.Can(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.state, to)
	}
	m.state = to
	return nil
}
