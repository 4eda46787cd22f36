package object

import (
	"github.com/tomz197/asteroid-dodge/internal/draw"
	"github.com/tomz197/asteroid-dodge/internal/loop/config"
	"github.com/tomz197/asteroid-dodge/internal/sprite"
)

// Ship is the player-controlled ship. It only moves vertically.
type Ship struct {
	X, Y float64 // Top-left corner of the sprite
	VY   float64 // Vertical velocity (momentum)

	// Held movement buttons. Both may be set at once.
	MovingUp   bool
	MovingDown bool
}

// NewShip creates a ship at the left edge, vertically centered on screen.
func NewShip(screen Screen) *Ship {
	return &Ship{
		X: config.ShipStartX,
		Y: float64(screen.Height/2 - sprite.ShipHeight/2),
	}
}

// Update applies held buttons, friction and velocity, then clamps the ship
// to the screen. Velocity is zeroed when the ship hits an edge.
func (s *Ship) Update(dt float64, screen Screen) {
	if s.MovingUp {
		s.VY -= config.ShipAccel * dt
	}
	if s.MovingDown {
		s.VY += config.ShipAccel * dt
	}

	// Friction is applied per tick, so the ship drifts briefly after release
	s.VY *= config.ShipFriction
	s.Y += s.VY * dt

	maxY := float64(screen.Height - sprite.ShipHeight)
	if s.Y < 0 {
		s.Y = 0
		s.VY = 0
	}
	if s.Y > maxY {
		s.Y = maxY
		s.VY = 0
	}
}

// Nose returns where new bullets appear: just right of the sprite,
// at its vertical middle.
func (s *Ship) Nose() (x, y float64) {
	return s.X + sprite.ShipWidth + 1, s.Y + sprite.ShipHeight/2
}

// Draw blits the ship sprite, or the monochrome bitmap if that fails.
func (s *Ship) Draw(ctx DrawContext) {
	x, y := int(s.X), int(s.Y)
	if err := ctx.Surface.Blit(ctx.ShipSprite, x, y, draw.Transparent); err != nil {
		sprite.DrawBitmap(ctx.Surface, sprite.ShipBitmap, x, y, draw.White)
	}
}
