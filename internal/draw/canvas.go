package draw

import (
	"io"
	"strconv"
	"strings"
)

// BlockUpperHalf packs two vertical pixels into one cell: the foreground
// color paints the top half and the background color the bottom half.
const BlockUpperHalf = '▀'

// cell is what one terminal cell shows: the upper and lower sub-pixel.
type cell struct {
	top, bottom Color
}

// Canvas maps a PixelBuffer onto terminal cells using upper-half blocks with
// 24-bit foreground (top pixel) and background (bottom pixel) colors.
// The picture is scaled with nearest-neighbour sampling to the largest square
// that fits, and centered. Only cells that changed since the previous render
// are written.
type Canvas struct {
	termWidth      int // Actual terminal columns
	termHeight     int // Actual terminal rows
	subPixelHeight int // termHeight * 2

	// Rendered square size in sub-pixels and its centering offset in cells.
	size      int
	offsetCol int
	offsetRow int

	prev   []cell // Last cell contents written, indexed [row*cols + col]
	redraw bool   // Write every cell on the next render

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewCanvas creates a canvas for the given terminal dimensions.
func NewCanvas(termWidth, termHeight int) *Canvas {
	c := &Canvas{}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions.
// Returns true if the layout changed and the terminal should be cleared.
func (c *Canvas) Resize(termWidth, termHeight int) bool {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	if termWidth == c.termWidth && termHeight == c.termHeight && c.prev != nil {
		return false
	}

	c.termWidth = termWidth
	c.termHeight = termHeight
	c.subPixelHeight = termHeight * 2

	c.size = min(termWidth, c.subPixelHeight)
	rows := (c.size + 1) / 2
	c.offsetCol = (termWidth - c.size) / 2
	c.offsetRow = (termHeight - rows) / 2

	c.prev = make([]cell, c.size*rows)
	c.redraw = true
	return true
}

// ForceRedraw makes the next Render write every cell.
func (c *Canvas) ForceRedraw() {
	c.redraw = true
}

// Size returns the side of the rendered square in sub-pixels.
func (c *Canvas) Size() int {
	return c.size
}

// sample returns the source pixel for rendered sub-pixel (x, y).
func (c *Canvas) sample(src *PixelBuffer, x, y int) Color {
	if y >= c.size {
		return Black
	}
	return src.At(x*src.Width/c.size, y*src.Height/c.size)
}

// Render writes changed cells of src to w.
func (c *Canvas) Render(w io.Writer, src *PixelBuffer) error {
	c.renderBuf.Reset()

	rows := (c.size + 1) / 2
	lastFg, lastBg := -1, -1
	for row := 0; row < rows; row++ {
		for col := 0; col < c.size; col++ {
			cur := cell{
				top:    c.sample(src, col, row*2),
				bottom: c.sample(src, col, row*2+1),
			}
			idx := row*c.size + col
			if !c.redraw && c.prev[idx] == cur {
				continue
			}
			c.prev[idx] = cur

			c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			if int(cur.top) != lastFg {
				c.sgr(38, cur.top)
				lastFg = int(cur.top)
			}
			if int(cur.bottom) != lastBg {
				c.sgr(48, cur.bottom)
				lastBg = int(cur.bottom)
			}
			c.renderBuf.WriteRune(BlockUpperHalf)
		}
	}
	c.redraw = false

	if c.renderBuf.Len() == 0 {
		return nil
	}
	c.renderBuf.WriteString("\033[0m")
	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

// moveCursor appends an ANSI cursor position sequence (1-based).
func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// sgr appends a 24-bit color sequence; code is 38 (foreground) or 48 (background).
func (c *Canvas) sgr(code int, col Color) {
	r, g, b := col.RGB()
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(code), 10))
	c.renderBuf.WriteString(";2;")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(r), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(g), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(b), 10))
	c.renderBuf.WriteByte('m')
}

// RenderBorder draws a box border around the canvas area when there is room
// for it on either axis.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return nil
	}

	rows := (c.size + 1) / 2
	left := c.offsetCol
	right := c.offsetCol + c.size + 1
	top := c.offsetRow
	bottom := c.offsetRow + rows + 1

	var buf strings.Builder
	if hasV {
		line := strings.Repeat("─", c.size)
		if hasH {
			buf.WriteString("\033[" + strconv.Itoa(top) + ";" + strconv.Itoa(left) + "H┌" + line + "┐")
			buf.WriteString("\033[" + strconv.Itoa(bottom) + ";" + strconv.Itoa(left) + "H└" + line + "┘")
		} else {
			buf.WriteString("\033[" + strconv.Itoa(top) + ";" + strconv.Itoa(c.offsetCol+1) + "H" + line)
			buf.WriteString("\033[" + strconv.Itoa(bottom) + ";" + strconv.Itoa(c.offsetCol+1) + "H" + line)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+rows; row++ {
			buf.WriteString("\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(left) + "H│")
			buf.WriteString("\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(right) + "H│")
		}
	}
	_, err := io.WriteString(w, buf.String())
	return err
}
