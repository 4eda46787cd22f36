package sprite

import (
	"fmt"
	"math"
	"runtime"

	"github.com/tomz197/asteroid-dodge/internal/draw"
	"golang.org/x/sync/errgroup"
)

// RotationFrames is the number of pre-rendered rotation frames per archetype.
const RotationFrames = 8

// Size is the pixel size of an asteroid archetype.
type Size struct {
	Width  int
	Height int
}

// DefaultSizes are the asteroid archetypes, from medium to tiny.
var DefaultSizes = []Size{
	{Width: 20, Height: 18}, // Medium
	{Width: 16, Height: 16}, // Small round
	{Width: 24, Height: 22}, // Large
	{Width: 14, Height: 12}, // Small irregular
	{Width: 18, Height: 20}, // Tall
	{Width: 12, Height: 10}, // Tiny
}

// Archetype is one asteroid shape family with all of its rotation frames.
type Archetype struct {
	Width       int
	Height      int
	Frames      []*draw.PixelBuffer
	Transparent draw.Color
}

// Cache holds every archetype's rotation frames. It is built once and never
// modified afterwards, so it can be shared between game loops.
type Cache struct {
	archetypes []Archetype
	frames     int
	maxSize    Size
}

// NewCache synthesizes frames rotation frames for every size.
// Archetypes are built in parallel; the cache is returned only once all are done.
func NewCache(sizes []Size, frames int) (*Cache, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("sprite cache: no archetype sizes")
	}
	if frames <= 0 {
		return nil, fmt.Errorf("sprite cache: invalid frame count %d", frames)
	}

	archetypes := make([]Archetype, len(sizes))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, size := range sizes {
		g.Go(func() error {
			if size.Width <= 0 || size.Height <= 0 {
				return fmt.Errorf("sprite cache: archetype %d has invalid size %dx%d", i, size.Width, size.Height)
			}
			a, err := buildArchetype(size, frames)
			if err != nil {
				return fmt.Errorf("sprite cache: archetype %d: %w", i, err)
			}
			archetypes[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := &Cache{archetypes: archetypes, frames: frames}
	for _, a := range archetypes {
		c.maxSize.Width = max(c.maxSize.Width, a.Width)
		c.maxSize.Height = max(c.maxSize.Height, a.Height)
	}
	return c, nil
}

// NewDefaultCache builds the default archetypes with RotationFrames frames each.
func NewDefaultCache() (*Cache, error) {
	return NewCache(DefaultSizes, RotationFrames)
}

// buildArchetype renders every rotation frame. A size too small to leave any
// body after shaping is an error, since such an enemy could never be seen.
func buildArchetype(size Size, frames int) (Archetype, error) {
	a := Archetype{
		Width:       size.Width,
		Height:      size.Height,
		Frames:      make([]*draw.PixelBuffer, frames),
		Transparent: draw.Transparent,
	}
	for f := range frames {
		angle := float64(f) * 2 * math.Pi / float64(frames)
		a.Frames[f] = Synthesize(size.Width, size.Height, angle)
		if a.Frames[f].Opaque() == 0 {
			return Archetype{}, fmt.Errorf("%dx%d frame %d is empty", size.Width, size.Height, f)
		}
	}
	return a, nil
}

// Len returns the number of archetypes.
func (c *Cache) Len() int {
	return len(c.archetypes)
}

// Frames returns the number of rotation frames per archetype.
func (c *Cache) Frames() int {
	return c.frames
}

// MaxSize returns the largest width and height over all archetypes.
func (c *Cache) MaxSize() Size {
	return c.maxSize
}

// Archetype returns archetype a. Panics if a is out of range.
func (c *Cache) Archetype(a int) Archetype {
	if a < 0 || a >= len(c.archetypes) {
		panic(fmt.Sprintf("sprite: archetype index %d out of range [0,%d)", a, len(c.archetypes)))
	}
	return c.archetypes[a]
}

// Size returns the size of archetype a. Panics if a is out of range.
func (c *Cache) Size(a int) Size {
	arch := c.Archetype(a)
	return Size{Width: arch.Width, Height: arch.Height}
}

// Frame returns rotation frame f of archetype a.
// Out-of-range indices are programming errors and panic.
func (c *Cache) Frame(a, f int) *draw.PixelBuffer {
	arch := c.Archetype(a)
	if f < 0 || f >= len(arch.Frames) {
		panic(fmt.Sprintf("sprite: frame index %d out of range [0,%d)", f, len(arch.Frames)))
	}
	return arch.Frames[f]
}
