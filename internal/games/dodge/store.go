package dodge

import "github.com/vovakirdan/dodge/internal/core"

// Store owns the player and the live obstacles of the current round.
type Store struct {
	player    Entity
	obstacles []Entity
	nextID    EntityID
}

// NewStore creates a store whose player sits at center.
func NewStore(center core.Vec2, playerSize float64) *Store {
	s := &Store{obstacles: make([]Entity, 0, 16)}
	s.Reset(center, playerSize)
	return s
}

// Reset starts a fresh round: a new player at center and no obstacles.
func (s *Store) Reset(center core.Vec2, playerSize float64) {
	s.obstacles = s.obstacles[:0]
	s.player = Entity{
		ID:   s.allocID(),
		Kind: KindPlayer,
		Pos:  center,
		Size: core.V(playerSize, playerSize),
	}
}

func (s *Store) allocID() EntityID {
	s.nextID++
	return s.nextID
}

// Player returns the player entity.
func (s *Store) Player() *Entity {
	return &s.player
}

// Add inserts an obstacle and returns its handle.
func (s *Store) Add(e Entity) EntityID {
	e.ID = s.allocID()
	e.Kind = KindObstacle
	s.obstacles = append(s.obstacles, e)
	return e.ID
}

// Obstacles returns the live obstacles. The slice is only valid until the
// next mutation of the store.
func (s *Store) Obstacles() []Entity {
	return s.obstacles
}

// Len returns the number of entities, the player included.
func (s *Store) Len() int {
	return 1 + len(s.obstacles)
}

// Each calls fn for the player and then for every obstacle.
func (s *Store) Each(fn func(e *Entity)) {
	fn(&s.player)
	for i := range s.obstacles {
		fn(&s.obstacles[i])
	}
}

// Remove deletes the given obstacles in a single pass and returns how many
// were removed. Unknown IDs and the player's ID are ignored.
func (s *Store) Remove(ids []EntityID) int {
	if len(ids) == 0 {
		return 0
	}

	doomed := make(map[EntityID]struct{}, len(ids))
	for _, id := range ids {
		doomed[id] = struct{}{}
	}

	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if _, ok := doomed[o.ID]; ok {
			continue
		}
		kept = append(kept, o)
	}
	removed := len(s.obstacles) - len(kept)
	s.obstacles = kept
	return removed
}
