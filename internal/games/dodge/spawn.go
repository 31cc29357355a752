package dodge

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
)

// Side is the playfield edge an obstacle enters from.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

// String returns the side's name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Descriptor describes one obstacle to spawn.
type Descriptor struct {
	Side   Side
	Width  int
	Height int
	Speed  int
	Pos    core.Vec2
	Vel    core.Vec2
}

// Entity converts the descriptor into an obstacle entity.
func (d Descriptor) Entity() Entity {
	return Entity{
		Kind: KindObstacle,
		Pos:  d.Pos,
		Size: core.V(float64(d.Width), float64(d.Height)),
		Vel:  d.Vel,
		Side: d.Side,
	}
}

// Place derives the spawn position and velocity from the side, the size and
// the playfield. along is the random coordinate on the entry edge (y for
// left/right, x for top/bottom).
func Place(side Side, w, h, speed int, along float64, field core.Vec2) (pos, vel core.Vec2) {
	fw, fh, sp := float64(w), float64(h), float64(speed)
	switch side {
	case SideLeft:
		return core.V(-fw, along), core.V(sp, 0)
	case SideRight:
		return core.V(field.X+fw, along), core.V(-sp, 0)
	case SideTop:
		return core.V(along, -fh), core.V(0, sp)
	default:
		return core.V(along, field.Y+fh), core.V(0, -sp)
	}
}

// Spawner accumulates time and emits a Descriptor each time the spawn
// interval elapses.
type Spawner struct {
	acc      time.Duration
	interval time.Duration
	policy   config.SpawnPolicy
	obs      config.ObstacleConfig
	field    core.Vec2
	rng      *rand.Rand
}

// NewSpawner creates a spawner drawing its randomness from rng.
func NewSpawner(cfg config.DodgeConfig, rng *rand.Rand) *Spawner {
	return &Spawner{
		interval: cfg.Spawn.Interval,
		policy:   cfg.Spawn.Policy,
		obs:      cfg.Obstacles,
		field:    core.V(cfg.Playfield.Width, cfg.Playfield.Height),
		rng:      rng,
	}
}

// Reset zeroes the accumulator for a fresh round.
func (s *Spawner) Reset() {
	s.acc = 0
}

// Pending returns the time accumulated toward the next spawn.
func (s *Spawner) Pending() time.Duration {
	return s.acc
}

// Advance adds dt to the accumulator and returns the spawns that are due.
//
// With the carry policy every full interval yields one spawn and the
// remainder is kept, so over T seconds of constant frames exactly
// floor(T/interval) spawns are produced. With the reset policy at most one
// spawn happens per call and any overshoot is discarded. A zero interval
// spawns once per call.
func (s *Spawner) Advance(dt time.Duration) []Descriptor {
	if dt < 0 {
		dt = 0
	}
	s.acc += dt

	if s.interval <= 0 {
		s.acc = 0
		return []Descriptor{s.next()}
	}

	var out []Descriptor
	switch s.policy {
	case config.SpawnReset:
		if s.acc >= s.interval {
			s.acc = 0
			out = append(out, s.next())
		}
	default:
		for s.acc >= s.interval {
			s.acc -= s.interval
			out = append(out, s.next())
		}
	}
	return out
}

// next draws one random descriptor.
func (s *Spawner) next() Descriptor {
	w := s.randRange(s.obs.MinSize, s.obs.MaxSize)
	h := s.randRange(s.obs.MinSize, s.obs.MaxSize)
	side := Side(s.rng.Intn(4))
	speed := s.randRange(s.obs.MinSpeed, s.obs.MaxSpeed)

	var along float64
	switch side {
	case SideLeft, SideRight:
		along = s.rng.Float64() * s.field.Y
	default:
		along = s.rng.Float64() * s.field.X
	}

	pos, vel := Place(side, w, h, speed, along, s.field)
	return Descriptor{
		Side:   side,
		Width:  w,
		Height: h,
		Speed:  speed,
		Pos:    pos,
		Vel:    vel,
	}
}

// randRange returns a uniform integer in [lo, hi].
func (s *Spawner) randRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
