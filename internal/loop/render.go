package loop

import (
	"strconv"

	"github.com/tomz197/asteroid-dodge/internal/draw"
	"github.com/tomz197/asteroid-dodge/internal/loop/config"
	"github.com/tomz197/asteroid-dodge/internal/object"
	"github.com/tomz197/asteroid-dodge/internal/sprite"
)

// Renderer draws a Game onto a surface. It only reads the game.
type Renderer struct {
	sprites *sprite.Cache
	ship    *draw.PixelBuffer
}

// NewRenderer creates a renderer using the given asteroid frames.
func NewRenderer(sprites *sprite.Cache) *Renderer {
	return &Renderer{
		sprites: sprites,
		ship:    sprite.ShipSprite(),
	}
}

// Draw composes the frame without committing it.
// Back to front: stars, enemies, ship, bullets, score.
func (r *Renderer) Draw(g *Game, s draw.Surface) {
	s.Clear(draw.Black)

	ctx := object.DrawContext{
		Surface:    s,
		Sprites:    r.sprites,
		ShipSprite: r.ship,
	}
	drawAll(ctx, g.Stars)
	drawAll(ctx, g.Enemies)
	g.Ship.Draw(ctx)
	drawAll(ctx, g.Bullets)

	s.DrawText("Score: "+strconv.Itoa(g.Score), config.ScoreX, config.ScoreY, draw.White)
}

func drawAll[T object.Drawable](ctx object.DrawContext, items []T) {
	for _, it := range items {
		it.Draw(ctx)
	}
}

// Render draws the frame and commits it to the display.
func (r *Renderer) Render(g *Game, s draw.Surface) error {
	r.Draw(g, s)
	return s.Commit()
}
