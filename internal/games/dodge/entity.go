package dodge

import "github.com/vovakirdan/dodge/internal/core"

// Kind tags an Entity as the player or an obstacle.
// Systems switch on the kind instead of calling per-type methods.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindObstacle
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// EntityID is a stable handle used to remove entities from the Store.
type EntityID uint64

// Entity is the closed union of everything that lives on the playfield.
// Vel and Side are only meaningful for obstacles.
type Entity struct {
	ID   EntityID
	Kind Kind
	Pos  core.Vec2 // Center of the bounding box
	Size core.Vec2 // Full width and height
	Vel  core.Vec2 // Units per second, fixed at creation
	Side Side      // Edge the obstacle entered from
}

// Box returns the entity's bounding box.
func (e Entity) Box() core.Box {
	return core.Box{Center: e.Pos, Size: e.Size}
}
