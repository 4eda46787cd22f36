// Package draw provides the raster display surface the game draws into and
// the hosts that present it (terminal, SSH session, window).
package draw

import "errors"

// ErrNilBuffer is returned by Blit when the source buffer is missing or empty.
var ErrNilBuffer = errors.New("draw: nil or empty pixel buffer")

// Surface is the display the game renders into.
// Only rectangles, text and transparent blits are available.
type Surface interface {
	// Clear fills the whole surface with c.
	Clear(c Color)
	// FillRect fills a w*h rectangle at (x, y). Parts outside the surface are clipped.
	FillRect(x, y, w, h int, c Color)
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(s string, x, y int, c Color)
	// Blit copies src to (x, y), skipping pixels equal to transparent.
	Blit(src *PixelBuffer, x, y int, transparent Color) error
	// Commit hands the finished frame to the display.
	Commit() error
}

// Presenter shows a finished frame buffer on a real display.
type Presenter interface {
	Present(fb *FrameBuffer) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(fb *FrameBuffer) error

// Present calls f(fb).
func (f PresenterFunc) Present(fb *FrameBuffer) error {
	return f(fb)
}
