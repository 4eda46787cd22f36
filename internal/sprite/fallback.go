package sprite

import "github.com/tomz197/asteroid-dodge/internal/draw"

// Monochrome bitmaps drawn when a sprite blit fails. 'X' is a set pixel.
var (
	ShipBitmap = []string{
		"....XX....",
		"...XXXX...",
		"..XXXXXX..",
		".XXXXXXXX.",
		".XXXXXXXX.",
		"..XXXXXX..",
		"...XXXX...",
		"....XX....",
	}

	AsteroidBitmap = []string{
		"..XXXXXXXX....",
		".XXXXXXXXXX...",
		"XXXXXXXXXXXX..",
		"XXXXXXXXXXXX..",
		"XXXXXXXXXXXX..",
		"XXXXXXXXXXXX..",
		".XXXXXXXXXXX..",
		".XXXXXXXXXX...",
		"..XXXXXXXX....",
		"..XXXXXXX.....",
		"...XXXXX......",
		"...XXXX.......",
	}
)

// DrawBitmap draws the set pixels of bitmap at (x, y) as 1x1 rectangles.
func DrawBitmap(s draw.Surface, bitmap []string, x, y int, c draw.Color) {
	for row, line := range bitmap {
		for col := 0; col < len(line); col++ {
			if line[col] == 'X' {
				s.FillRect(x+col, y+row, 1, 1, c)
			}
		}
	}
}
