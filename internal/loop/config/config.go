// Package config centralizes all tunable game parameters.
package config

import "time"

// Display resolution in game pixels.
const (
	ScreenWidth  = 128
	ScreenHeight = 128
)

// Player ship
const (
	ShipStartX   = 10
	ShipAccel    = 150.0 // Vertical acceleration while a move button is held (px/s²)
	ShipFriction = 0.85  // Velocity multiplier applied every tick
	FireRate     = 0.18  // Minimum seconds between shots
)

// Bullets
const (
	BulletSpeed       = 160.0
	BulletWidth       = 5
	BulletHeight      = 2
	BulletTrailWidth  = 2
	BulletFlickerRate = 8.0 // Color cycles per second
	BulletMargin      = 6   // Bullets are dropped once x >= ScreenWidth+BulletMargin
	BulletSpentX      = ScreenWidth + 99
)

// Enemies
const (
	EnemyMinSpeed    = 24.0
	EnemyMaxSpeed    = 48.0
	EnemyMinRotation = 0.5 // rad/s
	EnemyMaxRotation = 2.0 // rad/s
	EnemySpawnOffset = 2   // Enemies appear this far past the right edge
	EnemySpawnMargin = 4   // Spawn y stays this far from the top and bottom edges
	EnemyCullMargin  = 4   // Enemies are dropped once x+width <= -EnemyCullMargin
	CollisionInset   = 1
	SpawnMinInterval = 0.65
	SpawnMaxInterval = 1.2
)

// Starfield
const (
	StarCount     = 34
	StarSpeed     = 26.0
	StarSizeBonus = 10.0 // Extra speed per size unit
)

// HUD
const (
	ScoreX = 4
	ScoreY = 4
)

// Loop timing
const (
	FrameDelay    = 16 * time.Millisecond
	MaxFrameDelta = 0.25 // Seconds; longer gaps are treated as this long
	StatsInterval = 5 * time.Second
)
