// Package sprite synthesizes the rotating asteroid frames and holds the
// static ship sprite.
package sprite

import (
	"math"

	"github.com/tomz197/asteroid-dodge/internal/draw"
)

// Palette is an ordered dark-to-light list of shades.
type Palette []draw.Color

// AsteroidPalette is the 4-step brown palette used for asteroid shading.
var AsteroidPalette = Palette{
	draw.RGB565(40, 30, 25),  // darkest brown
	draw.RGB565(70, 50, 40),  // dark brown
	draw.RGB565(100, 70, 55), // mid brown
	draw.RGB565(130, 95, 75), // light brown highlight
}

// Index returns the position of c in the palette.
// ok is false when c is not a palette color.
func (p Palette) Index(c draw.Color) (idx int, ok bool) {
	for i, pc := range p {
		if pc == c {
			return i, true
		}
	}
	return 0, false
}

// Shape parameters.
const (
	radiusEpsilon = 1e-6

	// Boundary perturbation: two harmonics of the polar angle.
	harmonic1Freq  = 7
	harmonic1Amp   = 0.8
	harmonic2Freq  = 11
	harmonic2Amp   = 0.5
	harmonic2Phase = 2.1

	// Light direction before rotation (from the upper left).
	lightX = -0.4
	lightY = -0.9
)

// crater is a darkened disc at a fixed offset from the shape center.
type crater struct {
	dx, dy int // Offset from center before rotation
	radius int
	depth  int // Palette steps to darken
}

var craters = []crater{
	{dx: -4, dy: -3, radius: 3, depth: 2},
	{dx: 3, dy: -1, radius: 2, depth: 1},
	{dx: -1, dy: 4, radius: 2, depth: 2},
}

// noShade marks a transparent pixel in a shade map.
const noShade = -1

// shadeMap is a per-pixel palette index grid; noShade means transparent.
type shadeMap struct {
	w, h   int
	shades []int8
}

func (m *shadeMap) at(x, y int) int8 {
	return m.shades[y*m.w+x]
}

// Synthesize renders one asteroid of the given size rotated by rotation radians.
// Transparent pixels hold draw.Transparent.
func Synthesize(width, height int, rotation float64) *draw.PixelBuffer {
	rotation = normalizeAngle(rotation)
	m := baseShades(width, height, rotation)
	stampCraters(m, rotation)
	return m.resolve(AsteroidPalette)
}

// normalizeAngle maps a to [0, 2π). Angles already in range are returned unchanged.
func normalizeAngle(a float64) float64 {
	const twoPi = 2 * math.Pi
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	if a >= twoPi {
		a = 0
	}
	return a
}

// boundaryRadius is the shape radius along polar angle theta.
func boundaryRadius(base, theta float64) float64 {
	bumps := harmonic1Amp*math.Sin(harmonic1Freq*theta) +
		harmonic2Amp*math.Sin(harmonic2Freq*theta+harmonic2Phase)
	return base + bumps
}

// lambertBand quantizes lambert brightness into 4 bands.
func lambertBand(lambert float64) int8 {
	switch {
	case lambert < 0.25:
		return 0
	case lambert < 0.50:
		return 1
	case lambert < 0.75:
		return 2
	default:
		return 3
	}
}

// baseShades fills the shape and shades it, without craters.
func baseShades(width, height int, rotation float64) *shadeMap {
	m := &shadeMap{
		w:      max(width, 0),
		h:      max(height, 0),
		shades: make([]int8, max(width, 0)*max(height, 0)),
	}
	cx, cy := width/2, height/2
	base := float64(min(width, height)/2 - 2)

	// The light turns with the body so each frame keeps the same lit look.
	sinR, cosR := math.Sincos(rotation)
	lx := lightX*cosR + lightY*sinR
	ly := -lightX*sinR + lightY*cosR

	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			dx, dy := float64(x-cx), float64(y-cy)
			r := math.Sqrt(dx*dx + dy*dy)
			theta := math.Atan2(dy, dx) + rotation

			if r > boundaryRadius(base, theta) {
				m.shades[y*m.w+x] = noShade
				continue
			}

			nx, ny := dx/(r+radiusEpsilon), dy/(r+radiusEpsilon)
			lambert := math.Max(0, -(nx*lx + ny*ly))
			m.shades[y*m.w+x] = lambertBand(lambert)
		}
	}
	return m
}

// stampCraters darkens crater discs. Crater centers turn with the body and
// are truncated toward zero after the offset is added to the shape center.
// Transparent pixels are never touched and indices only go down.
func stampCraters(m *shadeMap, rotation float64) {
	cx, cy := m.w/2, m.h/2
	for _, c := range craters {
		dist := math.Sqrt(float64(c.dx*c.dx + c.dy*c.dy))
		angle := math.Atan2(float64(c.dy), float64(c.dx)) + rotation
		ccx := int(float64(cx) + dist*math.Cos(angle))
		ccy := int(float64(cy) + dist*math.Sin(angle))
		darkenDisc(m, ccx, ccy, c.radius, c.depth)
	}
}

func darkenDisc(m *shadeMap, ccx, ccy, radius, depth int) {
	r2 := radius * radius
	for y := max(0, ccy-radius); y < min(m.h, ccy+radius+1); y++ {
		for x := max(0, ccx-radius); x < min(m.w, ccx+radius+1); x++ {
			dx, dy := x-ccx, y-ccy
			if dx*dx+dy*dy > r2 {
				continue
			}
			i := y*m.w + x
			if m.shades[i] == noShade {
				continue
			}
			m.shades[i] = int8(max(0, int(m.shades[i])-depth))
		}
	}
}

// resolve converts palette indices to colors.
func (m *shadeMap) resolve(p Palette) *draw.PixelBuffer {
	buf := draw.NewPixelBuffer(m.w, m.h)
	for i, s := range m.shades {
		if s == noShade {
			continue
		}
		buf.Pix[i] = p[min(int(s), len(p)-1)]
	}
	return buf
}
