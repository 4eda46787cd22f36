package loop

import (
	"math"

	"github.com/tomz197/asteroid-dodge/internal/input"
	"github.com/tomz197/asteroid-dodge/internal/loop/config"
	"github.com/tomz197/asteroid-dodge/internal/object"
)

// StepResult reports what happened during one simulation step.
type StepResult struct {
	Dt      float64 // Step length actually simulated, in seconds
	Spawned int     // Enemies spawned
	Hits    int     // Enemies destroyed by bullets
}

// ClampDelta maps a raw frame time to the range the simulation accepts:
// negative or NaN becomes 0 and long stalls are capped at MaxFrameDelta.
func ClampDelta(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	return min(dt, config.MaxFrameDelta)
}

// ApplyInput copies held movement into the ship and fires on a fire press.
// Returns true if a bullet was fired.
func (g *Game) ApplyInput(in input.State) bool {
	g.Ship.MovingUp = in.MoveUp
	g.Ship.MovingDown = in.MoveDown
	if in.Fire {
		return g.Fire()
	}
	return false
}

// Fire shoots one bullet from the ship's nose unless the gun is cooling down.
// Returns true if a bullet was fired.
func (g *Game) Fire() bool {
	if g.FireCooldown > 0 {
		return false
	}
	x, y := g.Ship.Nose()
	g.Bullets = append(g.Bullets, object.NewBullet(x, y))
	g.FireCooldown = config.FireRate
	return true
}

// Advance runs one simulation step of dt seconds.
// The order of the phases matters: collisions see positions after movement
// and culling, and bullets that scored are dropped by the final filter.
func (g *Game) Advance(dt float64) StepResult {
	dt = ClampDelta(dt)
	res := StepResult{Dt: dt}

	// Cooldowns
	g.FireCooldown = max(0, g.FireCooldown-dt)
	g.SpawnCooldown = max(0, g.SpawnCooldown-dt)

	// Spawning
	if g.SpawnCooldown <= 0 {
		g.Enemies = append(g.Enemies, object.SpawnEnemy(g.rng, g.sprites, g.Screen))
		g.SpawnCooldown = config.SpawnMinInterval + g.rng.Float64()*(config.SpawnMaxInterval-config.SpawnMinInterval)
		res.Spawned++
	}

	g.Ship.Update(dt, g.Screen)

	for _, s := range g.Stars {
		s.Update(dt, g.rng, g.Screen)
	}

	for _, b := range g.Bullets {
		b.Update(dt)
	}
	g.Bullets = g.liveBullets()

	for _, e := range g.Enemies {
		e.Update(dt)
	}
	g.Enemies = filterEnemies(g.Enemies, func(e *object.Enemy) bool {
		return !e.OffScreen(config.EnemyCullMargin)
	})

	g.Enemies, res.Hits = resolveCollisions(g.Enemies, g.Bullets)
	g.Score += res.Hits
	g.Bullets = g.liveBullets()

	return res
}

// liveBullets drops bullets that left the screen or already scored.
func (g *Game) liveBullets() []*object.Bullet {
	kept := g.Bullets[:0]
	for _, b := range g.Bullets {
		if !b.OffScreen(g.Screen, config.BulletMargin) {
			kept = append(kept, b)
		}
	}
	clear(g.Bullets[len(kept):])
	return kept
}

// filterEnemies keeps the enemies for which keep returns true, in order.
func filterEnemies(enemies []*object.Enemy, keep func(*object.Enemy) bool) []*object.Enemy {
	kept := enemies[:0]
	for _, e := range enemies {
		if keep(e) {
			kept = append(kept, e)
		}
	}
	clear(enemies[len(kept):])
	return kept
}
