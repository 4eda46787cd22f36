package loop

import (
	"math/rand"

	"github.com/tomz197/asteroid-dodge/internal/loop/config"
	"github.com/tomz197/asteroid-dodge/internal/object"
	"github.com/tomz197/asteroid-dodge/internal/sprite"
)

// Game holds everything that changes while playing.
// It is owned by a single loop and never shared between goroutines.
type Game struct {
	Screen object.Screen

	Ship    *object.Ship
	Bullets []*object.Bullet
	Enemies []*object.Enemy
	Stars   []*object.Star

	Score         int
	FireCooldown  float64 // Seconds until the ship may fire again
	SpawnCooldown float64 // Seconds until the next enemy spawns

	sprites *sprite.Cache // Read-only archetype table
	rng     *rand.Rand
}

// NewGame creates a game on the default screen with a full starfield.
// The first enemy spawns on the first step.
func NewGame(sprites *sprite.Cache, rng *rand.Rand) *Game {
	screen := object.Screen{Width: config.ScreenWidth, Height: config.ScreenHeight}
	g := &Game{
		Screen:  screen,
		Ship:    object.NewShip(screen),
		Stars:   make([]*object.Star, 0, config.StarCount),
		sprites: sprites,
		rng:     rng,
	}
	for range config.StarCount {
		g.Stars = append(g.Stars, object.NewStar(rng, screen))
	}
	return g
}

// Sprites returns the archetype table enemies are spawned from.
func (g *Game) Sprites() *sprite.Cache {
	return g.sprites
}
