package dodge

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
)

func TestPlayerStaysInBounds(t *testing.T) {
	cfg := config.DefaultConfig()
	m := NewMotion(cfg)
	s := NewStore(core.V(320, 180), cfg.Player.Size)
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 10000; i++ {
		move := core.V(float64(rng.Intn(3)-1), float64(rng.Intn(3)-1))
		dt := time.Duration(rng.Intn(250)) * time.Millisecond
		m.Apply(s, move.Normalize(), dt)

		p := s.Player().Pos
		if p.X < 16 || p.X > 640-16 || p.Y < 16 || p.Y > 360-16 {
			t.Fatalf("frame %d: player at %v left bounds [16,624]x[16,344]", i, p)
		}
	}
}

func TestClampAppliesWithoutIntent(t *testing.T) {
	cfg := config.DefaultConfig()
	m := NewMotion(cfg)
	s := NewStore(core.V(320, 180), cfg.Player.Size)

	// Something else pushed the player outside; a stationary frame must
	// still pull it back.
	s.Player().Pos = core.V(-50, 1000)
	m.Apply(s, core.Vec2{}, 0)

	if got := s.Player().Pos; got != core.V(16, 344) {
		t.Errorf("player Pos = %v, expected clamped (16, 344)", got)
	}
}

func TestDiagonalSpeedEqualsAxisSpeed(t *testing.T) {
	cfg := config.DefaultConfig()
	m := NewMotion(cfg)
	center := core.V(320, 180)
	dt := 100 * time.Millisecond

	displacement := func(move core.Vec2) float64 {
		s := NewStore(center, cfg.Player.Size)
		in := core.InputFrame{Move: move}
		m.Apply(s, in.Direction(), dt)
		d := s.Player().Pos
		return math.Hypot(d.X-center.X, d.Y-center.Y)
	}

	axis := displacement(core.V(1, 0))
	diag := displacement(core.V(1, -1))

	if math.Abs(axis-28) > 1e-9 {
		t.Errorf("axis displacement = %v, expected 28 (280 u/s * 0.1s)", axis)
	}
	if math.Abs(diag-axis) > 1e-9 {
		t.Errorf("diagonal displacement = %v, expected %v", diag, axis)
	}
}

func TestObstacleVelocityNeverChanges(t *testing.T) {
	cfg := config.DefaultConfig()
	m := NewMotion(cfg)
	s := NewStore(core.V(320, 180), cfg.Player.Size)

	vel := core.V(0, -150)
	s.Add(Entity{Pos: core.V(100, 400), Size: core.V(20, 20), Vel: vel, Side: SideBottom})

	for i := 0; i < 60; i++ {
		m.Apply(s, core.V(1, 0), oneFrame)
		if len(s.Obstacles()) == 0 {
			t.Fatal("obstacle removed while still on screen")
		}
		if got := s.Obstacles()[0].Vel; got != vel {
			t.Fatalf("frame %d: velocity = %v, expected %v", i, got, vel)
		}
	}

	wantY := 400 - 150*60*oneFrame.Seconds()
	if got := s.Obstacles()[0].Pos.Y; math.Abs(got-wantY) > 1e-6 {
		t.Errorf("obstacle Y = %v, expected %v", got, wantY)
	}
}

func TestObstacleRemovedPastMargin(t *testing.T) {
	tests := []struct {
		name string
		pos  core.Vec2
		vel  core.Vec2
	}{
		// Box is 20x20, so the trailing edge is 10 units from the center.
		{"left", core.V(-69, 100), core.V(-1, 0)},
		{"right", core.V(640+69, 100), core.V(1, 0)},
		{"top", core.V(100, -69), core.V(0, -1)},
		{"bottom", core.V(100, 360+69), core.V(0, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			m := NewMotion(cfg)
			s := NewStore(core.V(320, 180), cfg.Player.Size)
			s.Add(Entity{Pos: tc.pos, Size: core.V(20, 20), Vel: tc.vel})

			// Exactly 60 past the edge: still kept.
			if removed := m.Apply(s, core.Vec2{}, time.Second); removed != 0 {
				t.Fatalf("obstacle at the margin was removed")
			}
			if s.Len() != 2 {
				t.Fatalf("Len() = %d, expected 2", s.Len())
			}

			// One more unit: gone in the same frame.
			if removed := m.Apply(s, core.Vec2{}, time.Second); removed != 1 {
				t.Fatalf("Apply removed %d, expected 1", removed)
			}
			if s.Len() != 1 {
				t.Errorf("Len() = %d, expected only the player", s.Len())
			}
		})
	}
}

func TestIncomingObstacleNotRemoved(t *testing.T) {
	cfg := config.DefaultConfig()
	m := NewMotion(cfg)
	s := NewStore(core.V(320, 180), cfg.Player.Size)

	// Fresh spawns sit just outside the edge and must survive.
	for _, side := range []Side{SideLeft, SideRight, SideTop, SideBottom} {
		pos, vel := Place(side, 50, 50, 90, 10, core.V(640, 360))
		s.Add(Entity{Pos: pos, Size: core.V(50, 50), Vel: vel, Side: side})
	}

	if removed := m.Apply(s, core.Vec2{}, oneFrame); removed != 0 {
		t.Errorf("fresh spawns removed: %d", removed)
	}
}
