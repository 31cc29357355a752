package dodge

import "github.com/vovakirdan/dodge/internal/core"

// Collides tests the player's box against every obstacle and reports whether
// at least one overlaps. Several simultaneous overlaps are one collision.
// Obstacles are never modified.
func Collides(player core.Box, obstacles []Entity) bool {
	for _, o := range obstacles {
		if player.Intersects(o.Box()) {
			return true
		}
	}
	return false
}

// CheckCollision runs Collides for the store's current round.
func CheckCollision(s *Store) bool {
	return Collides(s.Player().Box(), s.Obstacles())
}
