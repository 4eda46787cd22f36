package loop

import (
	"github.com/tomz197/asteroid-dodge/internal/loop/config"
	"github.com/tomz197/asteroid-dodge/internal/object"
)

// resolveCollisions tests every enemy against the bullets in order.
// The first bullet touching an enemy destroys it and is spent, so it cannot
// hit a later enemy in the same pass. Returns the surviving enemies and the
// number of hits.
func resolveCollisions(enemies []*object.Enemy, bullets []*object.Bullet) ([]*object.Enemy, int) {
	hits := 0
	survivors := filterEnemies(enemies, func(e *object.Enemy) bool {
		box := e.Box(config.CollisionInset)
		for _, b := range bullets {
			if b.Spent() {
				continue
			}
			if box.Overlaps(b.Box()) {
				b.Spend()
				hits++
				return false
			}
		}
		return true
	})
	return survivors, hits
}
