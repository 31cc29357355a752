package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/games/dodge"
)

// KeyMap defines the key bindings for the game.
// Each movement axis has two physical bindings (arrows and WASD).
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Restart key.Binding
	Quit    key.Binding
	Escape  key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Esc only quits from the menu and while playing; after a crash it is ignored
// so a stray press does not throw away the result screen.
func (k KeyMap) MapKey(msg tea.KeyMsg, phase dodge.Phase) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Escape):
		if phase == dodge.PhaseDead {
			return core.ActionNone
		}
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// phaseHelp adapts the key map to the bubbles help view for one phase.
type phaseHelp struct {
	keys  KeyMap
	phase dodge.Phase
}

// ShortHelp returns key bindings for the short help view.
func (h phaseHelp) ShortHelp() []key.Binding {
	switch h.phase {
	case dodge.PhaseMenu:
		return []key.Binding{h.keys.Confirm, h.keys.Escape}
	case dodge.PhaseDead:
		return []key.Binding{h.keys.Restart, h.keys.Quit}
	default:
		return []key.Binding{h.keys.Left, h.keys.Right, h.keys.Up, h.keys.Down, h.keys.Escape}
	}
}

// FullHelp returns key bindings for the full help view.
func (h phaseHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// KeyTracker turns key presses into held-key state.
// Terminals only report presses (and auto-repeats), never releases, so a key
// is considered held until a deadline after its latest press.
type KeyTracker struct {
	deadline map[core.Action]time.Time
	initial  time.Duration
	repeat   time.Duration
	src      core.TimeSource
}

// NewKeyTracker creates a tracker. initial bridges the keyboard's
// auto-repeat delay after the first press; repeat bridges the gap between
// auto-repeats.
func NewKeyTracker(initial, repeat time.Duration, src core.TimeSource) *KeyTracker {
	if src == nil {
		src = core.SystemTime{}
	}
	return &KeyTracker{
		deadline: make(map[core.Action]time.Time),
		initial:  initial,
		repeat:   repeat,
		src:      src,
	}
}

// Press records a press of a movement action. Pressing a direction releases
// its opposite immediately.
func (k *KeyTracker) Press(a core.Action) {
	hold := k.initial
	if k.Held(a) {
		hold = k.repeat
	}
	k.deadline[a] = k.src.Now().Add(hold)

	if opp := opposite(a); opp != core.ActionNone {
		delete(k.deadline, opp)
	}
}

// Held reports whether a is still within its hold window.
func (k *KeyTracker) Held(a core.Action) bool {
	d, ok := k.deadline[a]
	return ok && k.src.Now().Before(d)
}

// ReleaseAll forgets every held key.
func (k *KeyTracker) ReleaseAll() {
	for a := range k.deadline {
		delete(k.deadline, a)
	}
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	}
	return core.ActionNone
}

// isMovement reports whether a is one of the four directions.
func isMovement(a core.Action) bool {
	return opposite(a) != core.ActionNone
}
