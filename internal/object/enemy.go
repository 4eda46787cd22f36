package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/asteroid-dodge/internal/draw"
	"github.com/tomz197/asteroid-dodge/internal/loop/config"
	"github.com/tomz197/asteroid-dodge/internal/physics"
	"github.com/tomz197/asteroid-dodge/internal/sprite"
)

// Enemy is a rotating asteroid drifting left.
type Enemy struct {
	X, Y float64 // Top-left corner of the sprite
	VX   float64 // Horizontal velocity, negative

	Archetype     int     // Index into the sprite cache
	Frame         int     // Current rotation frame
	Frames        int     // Rotation frames of the archetype
	AngularSpeed  float64 // Radians per second
	RotationTimer float64 // Seconds spent on the current frame

	Width, Height int // Sprite size of the archetype
}

// SpawnEnemy creates an enemy just past the right edge of the screen with a
// random row, speed, archetype, rotation speed and starting frame.
// The row range uses the tallest archetype so every sprite fits on screen.
func SpawnEnemy(rng *rand.Rand, sprites *sprite.Cache, screen Screen) *Enemy {
	maxY := screen.Height - sprites.MaxSize().Height - config.EnemySpawnMargin
	y := randIntRange(rng, config.EnemySpawnMargin, maxY)
	speed := randRange(rng, config.EnemyMinSpeed, config.EnemyMaxSpeed)
	archetype := rng.Intn(sprites.Len())
	angular := randRange(rng, config.EnemyMinRotation, config.EnemyMaxRotation)
	frame := rng.Intn(sprites.Frames())

	size := sprites.Size(archetype)
	return &Enemy{
		X:            float64(screen.Width + config.EnemySpawnOffset),
		Y:            float64(y),
		VX:           -speed,
		Archetype:    archetype,
		Frame:        frame,
		Frames:       sprites.Frames(),
		AngularSpeed: angular,
		Width:        size.Width,
		Height:       size.Height,
	}
}

// FrameDuration is how long the enemy shows each rotation frame.
func (e *Enemy) FrameDuration() float64 {
	return 2 * math.Pi / (e.AngularSpeed * float64(e.frames()))
}

func (e *Enemy) frames() int {
	if e.Frames <= 0 {
		return sprite.RotationFrames
	}
	return e.Frames
}

// Update moves the enemy and advances its rotation frame when the frame
// duration has elapsed. At most one frame is advanced per update.
func (e *Enemy) Update(dt float64) {
	e.X += e.VX * dt

	e.RotationTimer += dt
	if e.RotationTimer >= e.FrameDuration() {
		e.RotationTimer = 0
		e.Frame = (e.Frame + 1) % e.frames()
	}
}

// Box returns the collision box shrunk by inset on every side.
func (e *Enemy) Box(inset float64) physics.Box {
	return physics.Rect(e.X, e.Y, float64(e.Width), float64(e.Height)).Inset(inset)
}

// OffScreen reports whether the enemy has scrolled past the left edge by margin.
func (e *Enemy) OffScreen(margin float64) bool {
	return e.X+float64(e.Width) <= -margin
}

// Draw blits the current rotation frame, or the monochrome bitmap if that fails.
func (e *Enemy) Draw(ctx DrawContext) {
	x, y := int(e.X), int(e.Y)
	arch := ctx.Sprites.Archetype(e.Archetype)
	if err := ctx.Surface.Blit(ctx.Sprites.Frame(e.Archetype, e.Frame), x, y, arch.Transparent); err != nil {
		sprite.DrawBitmap(ctx.Surface, sprite.AsteroidBitmap, x, y, draw.Gray)
	}
}
