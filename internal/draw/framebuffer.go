package draw

// FrameBuffer is an in-memory Surface. Commit forwards the frame to a Presenter.
type FrameBuffer struct {
	PixelBuffer
	presenter Presenter
	frames    uint64 // Number of successful commits
}

// Ensure FrameBuffer satisfies Surface.
var _ Surface = (*FrameBuffer)(nil)

// NewFrameBuffer creates a frame buffer of the given size. presenter may be nil,
// in which case Commit only counts frames.
func NewFrameBuffer(width, height int, presenter Presenter) *FrameBuffer {
	return &FrameBuffer{
		PixelBuffer: *NewPixelBuffer(width, height),
		presenter:   presenter,
	}
}

// Clear fills every pixel with c.
func (fb *FrameBuffer) Clear(c Color) {
	for i := range fb.Pix {
		fb.Pix[i] = c
	}
}

// FillRect fills a rectangle, clipped to the buffer.
func (fb *FrameBuffer) FillRect(x, y, w, h int, c Color) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, fb.Width), min(y+h, fb.Height)
	for py := y0; py < y1; py++ {
		row := fb.Pix[py*fb.Width : (py+1)*fb.Width]
		for px := x0; px < x1; px++ {
			row[px] = c
		}
	}
}

// DrawText draws s using the built-in 3x5 font with one pixel of spacing.
// Newlines start a new text row.
func (fb *FrameBuffer) DrawText(s string, x, y int, c Color) {
	cx := x
	for _, ch := range s {
		if ch == '\n' {
			cx = x
			y += GlyphHeight + 1
			continue
		}
		if g, ok := lookupGlyph(ch); ok {
			for gy, row := range g {
				for gx := 0; gx < GlyphWidth; gx++ {
					if row&(1<<(GlyphWidth-1-gx)) != 0 {
						fb.Set(cx+gx, y+gy, c)
					}
				}
			}
		}
		cx += GlyphWidth + 1
	}
}

// Blit copies src onto the buffer, skipping transparent pixels.
func (fb *FrameBuffer) Blit(src *PixelBuffer, x, y int, transparent Color) error {
	if src == nil || src.Width <= 0 || src.Height <= 0 || len(src.Pix) < src.Width*src.Height {
		return ErrNilBuffer
	}
	for sy := 0; sy < src.Height; sy++ {
		dy := y + sy
		if dy < 0 || dy >= fb.Height {
			continue
		}
		srcRow := src.Pix[sy*src.Width : (sy+1)*src.Width]
		dstRow := fb.Pix[dy*fb.Width : (dy+1)*fb.Width]
		for sx, c := range srcRow {
			dx := x + sx
			if c == transparent || dx < 0 || dx >= fb.Width {
				continue
			}
			dstRow[dx] = c
		}
	}
	return nil
}

// Commit presents the frame. Without a presenter it only counts the frame.
func (fb *FrameBuffer) Commit() error {
	if fb.presenter != nil {
		if err := fb.presenter.Present(fb); err != nil {
			return err
		}
	}
	fb.frames++
	return nil
}

// Frames returns the number of successful commits.
func (fb *FrameBuffer) Frames() uint64 {
	return fb.frames
}

// RGBA writes the frame as 8-bit RGBA into dst, growing it if needed, and returns it.
func (fb *FrameBuffer) RGBA(dst []byte) []byte {
	n := len(fb.Pix) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, c := range fb.Pix {
		r, g, b := c.RGB()
		dst[i*4] = r
		dst[i*4+1] = g
		dst[i*4+2] = b
		dst[i*4+3] = 0xFF
	}
	return dst
}
