// Package object holds the game entities: the player ship, bullets, asteroid
// enemies and background stars.
package object

import (
	"math/rand"

	"github.com/tomz197/asteroid-dodge/internal/draw"
	"github.com/tomz197/asteroid-dodge/internal/sprite"
)

// Screen is the size of the play field in pixels.
type Screen struct {
	Width  int
	Height int
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Surface    draw.Surface      // Target surface
	Sprites    *sprite.Cache     // Asteroid rotation frames
	ShipSprite *draw.PixelBuffer // Static player sprite
}

// Drawable is an entity that can draw itself.
type Drawable interface {
	// Draw draws the entity. Implementations fall back to simpler shapes
	// instead of failing when a sprite cannot be blitted.
	Draw(ctx DrawContext)
}

// randRange returns a uniform float in [lo, hi).
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// randIntRange returns a uniform int in [lo, hi]. hi < lo yields lo.
func randIntRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
