// Package dodge implements "Dodge the Blocks": the player steers a square
// around the playfield while obstacles stream in from the edges. Touching
// any obstacle ends the round.
package dodge

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
)

// Phase is the game's state machine state.
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseDead
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	Phase   Phase
	Quit    bool // The session is over; the loop must stop
	Started bool // A fresh round began this frame
	Crashed bool // The player hit an obstacle this frame
	Spawned int  // Obstacles added this frame
	Removed int  // Obstacles that left the playfield this frame
}

// Game owns one session: the menu, then any number of rounds.
type Game struct {
	cfg     config.DodgeConfig
	field   core.Vec2
	phase   Phase
	quit    bool
	store   *Store
	spawner *Spawner
	motion  Motion
	elapsed time.Duration // Survival time of the current round
	hover   bool          // Pointer is over the start button
}

// New creates a session in the menu phase. The seed drives every random
// spawn decision, so equal seeds and inputs replay identically.
func New(cfg config.DodgeConfig, seed int64) *Game {
	field := core.V(cfg.Playfield.Width, cfg.Playfield.Height)
	rng := rand.New(rand.NewSource(seed))

	return &Game{
		cfg:     cfg,
		field:   field,
		phase:   PhaseMenu,
		store:   NewStore(field.Scale(0.5), cfg.Player.Size),
		spawner: NewSpawner(cfg, rng),
		motion:  NewMotion(cfg),
	}
}

// Step advances the session by one frame.
//
// Order within a frame: quit check, phase transition, then (only while
// playing) spawn, motion and collision. A frame that starts a round does
// not simulate; the new round integrates from the next frame on.
func (g *Game) Step(in core.InputFrame, dt time.Duration) StepResult {
	if g.quit {
		return StepResult{Phase: g.phase, Quit: true}
	}

	if in.Quit {
		g.quit = true
		return StepResult{Phase: g.phase, Quit: true}
	}

	if in.HasPointer {
		g.hover = g.MenuButton().Contains(in.Pointer)
	}

	res := StepResult{Phase: g.phase}
	switch g.phase {
	case PhaseMenu:
		if in.Confirm {
			g.startRound()
			res.Started = true
		}
	case PhaseDead:
		if in.Restart {
			g.startRound()
			res.Started = true
		}
	case PhasePlaying:
		g.simulate(in, dt, &res)
	}

	res.Phase = g.phase
	return res
}

// startRound resets the store and all timers.
func (g *Game) startRound() {
	g.store.Reset(g.field.Scale(0.5), g.cfg.Player.Size)
	g.spawner.Reset()
	g.elapsed = 0
	g.phase = PhasePlaying
}

// simulate runs spawn, motion and collision for one playing frame.
func (g *Game) simulate(in core.InputFrame, dt time.Duration, res *StepResult) {
	if dt < 0 {
		dt = 0
	}
	g.elapsed += dt

	for _, d := range g.spawner.Advance(dt) {
		g.store.Add(d.Entity())
		res.Spawned++
	}

	res.Removed = g.motion.Apply(g.store, in.Direction(), dt)

	if CheckCollision(g.store) {
		g.phase = PhaseDead
		res.Crashed = true
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Done reports whether a quit has been observed.
func (g *Game) Done() bool {
	return g.quit
}

// Elapsed returns the survival time of the current (or last) round.
func (g *Game) Elapsed() time.Duration {
	return g.elapsed
}

// Store exposes the entities for inspection.
func (g *Game) Store() *Store {
	return g.store
}

// Field returns the playfield size.
func (g *Game) Field() core.Vec2 {
	return g.field
}

// MenuButton returns the start button's box; clicks inside it confirm.
func (g *Game) MenuButton() core.Box {
	c := core.V(g.field.X/2, g.field.Y/2+g.cfg.Menu.OffsetY)
	return core.BoxAt(c, g.cfg.Menu.ButtonWidth, g.cfg.Menu.ButtonHeight)
}
