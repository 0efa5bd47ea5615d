package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// KeyMap defines the game key bindings.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Start key.Binding
	Menu  key.Binding
	Pause key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Start, k.Pause, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Start, k.Menu, k.Pause, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m", "esc"),
			key.WithHelp("m/esc", "menu"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Menu):
		return core.ActionMenu
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// heldIntents turns key presses into held intents. Terminals report no
// key-up events, so a direction stays asserted for a number of ticks after
// each press; key repeat keeps it alive while the key is down.
type heldIntents struct {
	hold  int
	left  int
	right int
}

func newHeldIntents(holdTicks int) heldIntents {
	return heldIntents{hold: max(holdTicks, 1)}
}

// press asserts a direction and releases the opposite one.
func (h *heldIntents) press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left = h.hold
		h.right = 0
	case core.ActionRight:
		h.right = h.hold
		h.left = 0
	}
}

// frame returns the intents asserted for the next tick.
func (h heldIntents) frame() core.InputFrame {
	in := core.NewInputFrame()
	if h.left > 0 {
		in.Set(core.ActionLeft)
	}
	if h.right > 0 {
		in.Set(core.ActionRight)
	}
	return in
}

// decay counts one tick off each held direction.
func (h *heldIntents) decay() {
	h.left = max(h.left-1, 0)
	h.right = max(h.right-1, 0)
}

// release drops every held direction.
func (h *heldIntents) release() {
	h.left = 0
	h.right = 0
}
