package object

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/asteroid-dodge/internal/draw"
	"github.com/tomz197/asteroid-dodge/internal/loop/config"
	"github.com/tomz197/asteroid-dodge/internal/physics"
	"github.com/tomz197/asteroid-dodge/internal/sprite"
)

var screen = Screen{Width: config.ScreenWidth, Height: config.ScreenHeight}

func newCache(t *testing.T) *sprite.Cache {
	t.Helper()
	c, err := sprite.NewDefaultCache()
	require.NoError(t, err)
	return c
}

// failingSurface rejects every blit.
type failingSurface struct {
	*draw.FrameBuffer
}

func (failingSurface) Blit(*draw.PixelBuffer, int, int, draw.Color) error {
	return draw.ErrNilBuffer
}

func TestNewShipIsCentered(t *testing.T) {
	s := NewShip(screen)
	assert.Equal(t, 10.0, s.X)
	assert.Equal(t, 54.0, s.Y)
}

func TestShipStaysInBounds(t *testing.T) {
	s := NewShip(screen)
	maxY := float64(screen.Height - sprite.ShipHeight)

	s.MovingUp = true
	for range 200 {
		s.Update(0.05, screen)
		require.GreaterOrEqual(t, s.Y, 0.0)
		require.LessOrEqual(t, s.Y, maxY)
	}
	assert.Equal(t, 0.0, s.Y)

	s.MovingUp, s.MovingDown = false, true
	for range 200 {
		s.Update(0.05, screen)
		require.GreaterOrEqual(t, s.Y, 0.0)
		require.LessOrEqual(t, s.Y, maxY)
	}
	assert.Equal(t, maxY, s.Y)
}

func TestShipClampZeroesVelocity(t *testing.T) {
	s := &Ship{Y: 1, VY: -500}
	s.Update(0.1, screen)
	assert.Equal(t, 0.0, s.Y)
	assert.Equal(t, 0.0, s.VY)

	maxY := float64(screen.Height - sprite.ShipHeight)
	s = &Ship{Y: maxY - 1, VY: 500}
	s.Update(0.1, screen)
	assert.Equal(t, maxY, s.Y)
	assert.Equal(t, 0.0, s.VY)
}

func TestShipFrictionAndBothButtons(t *testing.T) {
	s := &Ship{Y: 50, MovingUp: true, MovingDown: true}
	s.Update(0.1, screen)
	assert.Equal(t, 0.0, s.VY, "opposite buttons cancel")
	assert.Equal(t, 50.0, s.Y)

	s = &Ship{Y: 50, VY: 10}
	s.Update(0.1, screen)
	assert.InDelta(t, 8.5, s.VY, 1e-9)
	assert.InDelta(t, 50.85, s.Y, 1e-9, "ship drifts after release")
}

func TestShipNose(t *testing.T) {
	s := &Ship{X: 10, Y: 54}
	x, y := s.Nose()
	assert.Equal(t, 30.0, x)
	assert.Equal(t, 64.0, y)
}

func TestShipDrawFallback(t *testing.T) {
	fb := draw.NewFrameBuffer(screen.Width, screen.Height, nil)
	s := &Ship{X: 10, Y: 20}

	s.Draw(DrawContext{Surface: fb, ShipSprite: sprite.ShipSprite()})
	assert.Equal(t, draw.Color(0x7FE0), fb.At(19, 20))

	fb.Clear(draw.Black)
	s.Draw(DrawContext{Surface: failingSurface{fb}, ShipSprite: sprite.ShipSprite()})
	assert.Equal(t, draw.White, fb.At(14, 20), "fallback bitmap row 0 starts at column 4")
	assert.Equal(t, draw.Black, fb.At(10, 20))
}

func TestBulletMovesAndAges(t *testing.T) {
	b := NewBullet(30, 64)
	b.Update(0.1)
	assert.InDelta(t, 46, b.X, 1e-9)
	assert.InDelta(t, 0.1, b.Age, 1e-9)
	assert.Equal(t, physics.Box{X1: b.X, Y1: 63, X2: b.X + 5, Y2: 65}, b.Box())
}

func TestBulletSpend(t *testing.T) {
	b := NewBullet(60, 40)
	assert.False(t, b.Spent())
	assert.False(t, b.OffScreen(screen, config.BulletMargin))

	b.Spend()
	assert.True(t, b.Spent())
	assert.True(t, b.OffScreen(screen, config.BulletMargin))

	edge := NewBullet(float64(screen.Width+config.BulletMargin)-0.5, 40)
	assert.False(t, edge.OffScreen(screen, config.BulletMargin))
	edge.X += 0.5
	assert.True(t, edge.OffScreen(screen, config.BulletMargin))
}

func TestBulletFlicker(t *testing.T) {
	b := &Bullet{Age: 0}
	body, trail := b.Colors()
	assert.Equal(t, draw.Orange, body)
	assert.Equal(t, draw.Red, trail)

	b.Age = 0.07 // cycle 0.56
	body, trail = b.Colors()
	assert.Equal(t, draw.Red, body)
	assert.Equal(t, draw.Orange, trail)

	b.Age = 0.13 // cycle 0.04
	body, _ = b.Colors()
	assert.Equal(t, draw.Orange, body)
}

func TestBulletDraw(t *testing.T) {
	fb := draw.NewFrameBuffer(screen.Width, screen.Height, nil)
	b := &Bullet{X: 20, Y: 30}
	b.Draw(DrawContext{Surface: fb})

	assert.Equal(t, draw.Orange, fb.At(20, 29))
	assert.Equal(t, draw.Orange, fb.At(24, 30))
	assert.Equal(t, draw.Black, fb.At(25, 30))
	assert.Equal(t, draw.Red, fb.At(18, 29))
	assert.Equal(t, draw.Red, fb.At(19, 30))
	assert.Equal(t, 14, fb.Opaque())
}

func TestSpawnEnemy(t *testing.T) {
	cache := newCache(t)
	rng := rand.New(rand.NewSource(7))

	for range 500 {
		e := SpawnEnemy(rng, cache, screen)
		require.Equal(t, float64(screen.Width+2), e.X)
		require.GreaterOrEqual(t, e.Y, 4.0)
		require.LessOrEqual(t, e.Y, float64(screen.Height-22-4))
		require.Equal(t, e.Y, float64(int(e.Y)), "rows are whole pixels")
		require.GreaterOrEqual(t, e.Archetype, 0)
		require.Less(t, e.Archetype, cache.Len())
		require.GreaterOrEqual(t, e.Frame, 0)
		require.Less(t, e.Frame, cache.Frames())
		require.LessOrEqual(t, e.VX, -config.EnemyMinSpeed)
		require.GreaterOrEqual(t, e.VX, -config.EnemyMaxSpeed)
		require.GreaterOrEqual(t, e.AngularSpeed, config.EnemyMinRotation)
		require.Less(t, e.AngularSpeed, config.EnemyMaxRotation)
		require.Equal(t, cache.Size(e.Archetype), sprite.Size{Width: e.Width, Height: e.Height})
	}
}

func TestEnemyRotation(t *testing.T) {
	e := &Enemy{X: 100, VX: -30, AngularSpeed: 2 * 3.141592653589793, Frames: 8, Frame: 7}
	// One frame lasts 1/8 s.
	e.Update(0.1)
	assert.Equal(t, 7, e.Frame)
	assert.InDelta(t, 97, e.X, 1e-9)

	e.Update(0.05)
	assert.Equal(t, 0, e.Frame, "frame index wraps")
	assert.Equal(t, 0.0, e.RotationTimer)

	e.Update(1.0)
	assert.Equal(t, 1, e.Frame, "at most one frame per update")
}

func TestEnemyBoxAndCulling(t *testing.T) {
	e := &Enemy{X: 50, Y: 50, Width: 20, Height: 18}
	assert.Equal(t, physics.Box{X1: 51, Y1: 51, X2: 69, Y2: 67}, e.Box(config.CollisionInset))

	e.X = -23.9
	assert.False(t, e.OffScreen(config.EnemyCullMargin))
	e.X = -24
	assert.True(t, e.OffScreen(config.EnemyCullMargin))
}

func TestEnemyDraw(t *testing.T) {
	cache := newCache(t)
	fb := draw.NewFrameBuffer(screen.Width, screen.Height, nil)
	e := &Enemy{X: 40, Y: 40, Archetype: 2, Frame: 3, Width: 24, Height: 22}

	e.Draw(DrawContext{Surface: fb, Sprites: cache})
	assert.Equal(t, cache.Frame(2, 3).Opaque(), fb.Opaque())

	fb.Clear(draw.Black)
	e.Draw(DrawContext{Surface: failingSurface{fb}, Sprites: cache})
	assert.Equal(t, draw.Gray, fb.At(42, 40), "fallback bitmap")
}

func TestStars(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	dim, bright := 0, 0
	for range 300 {
		s := NewStar(rng, screen)
		require.GreaterOrEqual(t, s.X, 0.0)
		require.Less(t, s.X, float64(screen.Width))
		require.GreaterOrEqual(t, s.Y, 0.0)
		require.Less(t, s.Y, float64(screen.Height))
		switch s.Size {
		case StarDim:
			dim++
		case StarBright:
			bright++
		default:
			t.Fatalf("unexpected star size %d", s.Size)
		}
	}
	assert.Greater(t, dim, bright)

	s := &Star{X: 10, Y: 5, Size: StarBright}
	assert.Equal(t, 46.0, s.Speed())
	s.Update(0.1, rng, screen)
	assert.InDelta(t, 5.4, s.X, 1e-9)
	assert.Equal(t, 5.0, s.Y)

	s.Update(0.2, rng, screen)
	assert.Equal(t, float64(screen.Width-1), s.X, "wraps to the right edge")
}

func TestStarDraw(t *testing.T) {
	fb := draw.NewFrameBuffer(screen.Width, screen.Height, nil)
	(&Star{X: 3.7, Y: 2, Size: StarDim}).Draw(DrawContext{Surface: fb})
	(&Star{X: 8, Y: 2, Size: StarBright}).Draw(DrawContext{Surface: fb})
	assert.Equal(t, draw.Gray, fb.At(3, 2))
	assert.Equal(t, draw.White, fb.At(8, 2))
	assert.Equal(t, 2, fb.Opaque())
}
