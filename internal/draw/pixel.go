package draw

// Color is a 16-bit RGB565 color: 5 bits red, 6 bits green, 5 bits blue.
type Color uint16

// Transparent is the reserved sentinel color. Blit skips source pixels of this value.
const Transparent Color = 0

// Common display colors.
var (
	Black  = Color(0)
	White  = RGB565(255, 255, 255)
	Gray   = RGB565(128, 128, 128)
	Red    = RGB565(255, 0, 0)
	Orange = RGB565(255, 165, 0)
)

// RGB565 packs 8-bit channels into an RGB565 color.
func RGB565(r, g, b uint8) Color {
	return Color(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b>>3))
}

// RGB expands the color back to 8-bit channels.
// The high bits are replicated into the low bits so that white stays 255.
func (c Color) RGB() (r, g, b uint8) {
	r5 := uint8(c>>11) & 0x1F
	g6 := uint8(c>>5) & 0x3F
	b5 := uint8(c) & 0x1F
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// PixelBuffer is a row-major grid of colors.
// Buffers are treated as immutable once built.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []Color
}

// NewPixelBuffer allocates a buffer filled with Transparent.
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]Color, width*height),
	}
}

// At returns the color at (x, y), or Transparent outside the buffer.
func (b *PixelBuffer) At(x, y int) Color {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return Transparent
	}
	return b.Pix[y*b.Width+x]
}

// Set writes a color at (x, y). Out-of-bounds writes are ignored.
func (b *PixelBuffer) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.Pix[y*b.Width+x] = c
}

// Opaque counts pixels that are not Transparent.
func (b *PixelBuffer) Opaque() int {
	n := 0
	for _, c := range b.Pix {
		if c != Transparent {
			n++
		}
	}
	return n
}
