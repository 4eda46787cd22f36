package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal size assumed when the real one cannot be queried.
const (
	fallbackCols = 80
	fallbackRows = 24
)

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1400 bytes stays under a typical MTU for smooth SSH transmission.
const maxChunkSize = 1400

// ChunkWriter accumulates text for terminal output and writes it in chunks for
// optimal network flow (e.g. over SSH). Write to accumulate, then Flush.
type ChunkWriter struct {
	buf  strings.Builder
	w    io.Writer
	bufw *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
}

// NewChunkWriter creates a ChunkWriter that writes to w.
func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{
		w:    w,
		bufw: bufio.NewWriterSize(w, 8192),
	}
}

// Write implements io.Writer.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) (int, error) {
	return cw.buf.WriteString(s)
}

// Ensure ChunkWriter satisfies io.Writer and io.StringWriter.
var (
	_ io.Writer       = (*ChunkWriter)(nil)
	_ io.StringWriter = (*ChunkWriter)(nil)
)

// Flush writes the accumulated buffer to the underlying writer in chunks,
// then resets the buffer. On error the unwritten rest is dropped and the
// writer stays usable.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			cw.bufw.Reset(cw.w)
			return err
		}
		data = data[len(chunk):]
	}
	if err := cw.bufw.Flush(); err != nil {
		cw.bufw.Reset(cw.w)
		return err
	}
	return nil
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[0m\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// TerminalPresenter draws frames onto an ANSI terminal with 24-bit colors.
// It follows terminal resizes reported by its size function.
type TerminalPresenter struct {
	canvas   *Canvas
	out      *ChunkWriter
	sizeFunc TermSizeFunc
	started  bool
}

// NewTerminalPresenter creates a presenter writing to w. A nil sizeFunc
// uses DefaultTermSizeFunc.
func NewTerminalPresenter(w io.Writer, sizeFunc TermSizeFunc) *TerminalPresenter {
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	width, height, err := sizeFunc()
	if err != nil {
		width, height = fallbackCols, fallbackRows
	}
	return &TerminalPresenter{
		canvas:   NewCanvas(width, height),
		out:      NewChunkWriter(w),
		sizeFunc: sizeFunc,
	}
}

// Present implements Presenter.
func (p *TerminalPresenter) Present(fb *FrameBuffer) error {
	// A failing size query keeps the previous layout.
	resized := !p.started
	if width, height, err := p.sizeFunc(); err == nil {
		resized = p.canvas.Resize(width, height) || resized
	}
	p.started = true
	if resized {
		ClearScreen(p.out)
		if err := p.canvas.RenderBorder(p.out); err != nil {
			return err
		}
	}
	if err := p.canvas.Render(p.out, &fb.PixelBuffer); err != nil {
		return err
	}
	if err := p.out.Flush(); err != nil {
		// The terminal may hold a partial frame now.
		p.canvas.ForceRedraw()
		return err
	}
	return nil
}
