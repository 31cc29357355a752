package core

// Action represents a semantic game action, abstracted from physical key presses.
// Several physical keys may map to the same action (arrows and WASD).
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionConfirm        // Enter, Space, click on the start button
	ActionRestart        // R key - restart after a crash
	ActionQuit           // Window close, Esc while playing
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyState answers "is this action currently held".
// The platform implements it on top of whatever the input device offers.
type KeyState interface {
	Held(a Action) bool
}

// InputFrame is the immutable set of input signals for one simulation frame.
type InputFrame struct {
	// Move holds the raw intent, each axis in {-1, 0, 1}.
	Move Vec2

	// Edge-triggered commands observed since the previous frame.
	Quit    bool
	Confirm bool
	Restart bool

	// Pointer is the last known pointer position in world units.
	Pointer    Vec2
	HasPointer bool
}

// Direction returns the movement intent normalized to unit length, so that
// diagonal movement is as fast as movement along one axis.
func (f InputFrame) Direction() Vec2 {
	return f.Move.Normalize()
}

// Sampler is the input sampler: it queues discrete events between frames
// and turns them, together with the held-key state, into one InputFrame.
type Sampler struct {
	pressed    map[Action]bool
	clicked    bool
	pointer    Vec2
	hasPointer bool
	hitRegion  Box
	hasRegion  bool
}

// NewSampler creates an empty sampler.
func NewSampler() *Sampler {
	return &Sampler{pressed: make(map[Action]bool)}
}

// SetHitRegion sets the area in which a primary click counts as Confirm.
func (s *Sampler) SetHitRegion(b Box) {
	s.hitRegion = b
	s.hasRegion = true
}

// Press queues a discrete action for the next frame.
func (s *Sampler) Press(a Action) {
	switch a {
	case ActionConfirm, ActionRestart, ActionQuit:
		s.pressed[a] = true
	}
}

// MovePointer records the pointer position in world units.
func (s *Sampler) MovePointer(p Vec2) {
	s.pointer = p
	s.hasPointer = true
}

// Click records a primary-button press at p (world units).
func (s *Sampler) Click(p Vec2) {
	s.MovePointer(p)
	if s.hasRegion && s.hitRegion.Contains(p) {
		s.clicked = true
	}
}

// Sample builds the frame's InputFrame and clears the queued events.
func (s *Sampler) Sample(keys KeyState) InputFrame {
	f := InputFrame{
		Quit:       s.pressed[ActionQuit],
		Confirm:    s.pressed[ActionConfirm] || s.clicked,
		Restart:    s.pressed[ActionRestart],
		Pointer:    s.pointer,
		HasPointer: s.hasPointer,
	}
	if keys != nil {
		f.Move = Vec2{
			X: axis(keys.Held(ActionRight), keys.Held(ActionLeft)),
			Y: axis(keys.Held(ActionDown), keys.Held(ActionUp)),
		}
	}

	for k := range s.pressed {
		delete(s.pressed, k)
	}
	s.clicked = false
	return f
}

// axis combines an opposed key pair into -1, 0 or 1.
func axis(pos, neg bool) float64 {
	var v float64
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}
