package object

import (
	"math/rand"

	"github.com/tomz197/asteroid-dodge/internal/draw"
	"github.com/tomz197/asteroid-dodge/internal/loop/config"
)

// Star size classes.
const (
	StarDim    = 1
	StarBright = 2
)

// starSizes is sampled uniformly, so two thirds of the stars are dim.
var starSizes = [...]int{StarDim, StarDim, StarBright}

// Star is a background point scrolling left.
type Star struct {
	X, Y float64
	Size int // StarDim or StarBright
}

// NewStar creates a star at a random position.
func NewStar(rng *rand.Rand, screen Screen) *Star {
	return &Star{
		X:    float64(rng.Intn(screen.Width)),
		Y:    float64(rng.Intn(screen.Height)),
		Size: starSizes[rng.Intn(len(starSizes))],
	}
}

// Speed returns how fast the star scrolls. Bigger stars are faster.
func (s *Star) Speed() float64 {
	return config.StarSpeed + float64(s.Size)*config.StarSizeBonus
}

// Update scrolls the star left. A star leaving the left edge reappears at
// the right edge on a random row.
func (s *Star) Update(dt float64, rng *rand.Rand, screen Screen) {
	s.X -= s.Speed() * dt
	if s.X < 0 {
		s.X = float64(screen.Width - 1)
		s.Y = float64(rng.Intn(screen.Height))
	}
}

// Draw draws the star as a single pixel.
func (s *Star) Draw(ctx DrawContext) {
	c := draw.Gray
	if s.Size == StarBright {
		c = draw.White
	}
	ctx.Surface.FillRect(int(s.X), int(s.Y), 1, 1, c)
}
