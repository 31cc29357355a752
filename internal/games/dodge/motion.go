package dodge

import (
	"time"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
)

// Motion integrates entity positions and applies the boundary rules.
type Motion struct {
	field       core.Vec2
	playerSpeed float64
	margin      float64
}

// NewMotion creates the motion system for cfg.
func NewMotion(cfg config.DodgeConfig) Motion {
	return Motion{
		field:       core.V(cfg.Playfield.Width, cfg.Playfield.Height),
		playerSpeed: cfg.Player.Speed,
		margin:      cfg.Obstacles.RemovalMargin,
	}
}

// Integrate moves every entity by one frame and returns the obstacles that
// left the playfield by more than the removal margin. dir is the player's
// normalized movement intent. The store is not modified structurally.
func (m Motion) Integrate(s *Store, dir core.Vec2, dt time.Duration) []EntityID {
	secs := dt.Seconds()
	var gone []EntityID

	s.Each(func(e *Entity) {
		switch e.Kind {
		case KindPlayer:
			e.Pos = e.Pos.Add(dir.Scale(m.playerSpeed * secs))
			m.clampPlayer(e)
		case KindObstacle:
			e.Pos = e.Pos.Add(e.Vel.Scale(secs))
			if m.outside(e.Box()) {
				gone = append(gone, e.ID)
			}
		}
	})
	return gone
}

// Apply integrates and then removes escaped obstacles in one pass.
// Returns the number of removed obstacles.
func (m Motion) Apply(s *Store, dir core.Vec2, dt time.Duration) int {
	return s.Remove(m.Integrate(s, dir, dt))
}

// clampPlayer keeps the whole player box inside the playfield.
// It runs every frame, moving or not.
func (m Motion) clampPlayer(e *Entity) {
	hw, hh := e.Size.X/2, e.Size.Y/2
	e.Pos.X = core.ClampF(e.Pos.X, hw, m.field.X-hw)
	e.Pos.Y = core.ClampF(e.Pos.Y, hh, m.field.Y-hh)
}

// outside reports whether b lies entirely beyond the playfield by more than
// the removal margin on any side.
func (m Motion) outside(b core.Box) bool {
	return b.Right() < -m.margin ||
		b.Left() > m.field.X+m.margin ||
		b.Bottom() < -m.margin ||
		b.Top() > m.field.Y+m.margin
}
