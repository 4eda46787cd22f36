package object

import (
	"math"

	"github.com/tomz197/asteroid-dodge/internal/draw"
	"github.com/tomz197/asteroid-dodge/internal/loop/config"
	"github.com/tomz197/asteroid-dodge/internal/physics"
)

// Bullet is a shot fired by the ship. It flies right at a constant speed.
type Bullet struct {
	X, Y float64 // Left edge and vertical center
	Age  float64 // Seconds since fired; only drives the flicker
}

// NewBullet creates a bullet at (x, y).
func NewBullet(x, y float64) *Bullet {
	return &Bullet{X: x, Y: y}
}

// Update moves the bullet and ages it.
func (b *Bullet) Update(dt float64) {
	b.X += config.BulletSpeed * dt
	b.Age += dt
}

// Box returns the collision box, BulletHeight tall and centered on Y.
func (b *Bullet) Box() physics.Box {
	return physics.Rect(b.X, b.Y-config.BulletHeight/2, config.BulletWidth, config.BulletHeight)
}

// Spend moves the bullet far off screen so it cannot hit anything else.
// The off-screen filter removes it afterwards.
func (b *Bullet) Spend() {
	b.X = config.BulletSpentX
}

// Spent reports whether the bullet has already scored a hit.
func (b *Bullet) Spent() bool {
	return b.X >= config.BulletSpentX
}

// OffScreen reports whether the bullet left the screen past margin.
func (b *Bullet) OffScreen(screen Screen, margin float64) bool {
	return b.X >= float64(screen.Width)+margin
}

// Colors returns the body and trail colors for the bullet's current age.
// They swap BulletFlickerRate times per second.
func (b *Bullet) Colors() (body, trail draw.Color) {
	_, cycle := math.Modf(b.Age * config.BulletFlickerRate)
	if cycle < 0.5 {
		return draw.Orange, draw.Red
	}
	return draw.Red, draw.Orange
}

// Draw draws the bullet body with a short trail of the opposite color behind it.
func (b *Bullet) Draw(ctx DrawContext) {
	body, trail := b.Colors()
	top := int(b.Y - config.BulletHeight/2)
	ctx.Surface.FillRect(int(b.X), top, config.BulletWidth, config.BulletHeight, body)
	ctx.Surface.FillRect(int(b.X-config.BulletTrailWidth), top, config.BulletTrailWidth, config.BulletHeight, trail)
}
