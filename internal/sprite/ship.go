package sprite

import "github.com/tomz197/asteroid-dodge/internal/draw"

// Ship sprite dimensions.
const (
	ShipWidth  = 19
	ShipHeight = 21
)

// shipPixels is the player ship, row-major RGB565. 0 is transparent.
var shipPixels = [ShipWidth * ShipHeight]draw.Color{
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x7FE0, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x5C85, 0x8E69, 0xCFF2, 0x8629, 0x5C45, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x5580, 0x8686, 0xB7EC, 0xCFF2, 0xAF8C, 0x7E46, 0x5580, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x5463, 0x86A6, 0xAFCC, 0xCFF2, 0xAFCC, 0x86A5, 0x5463, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x5463, 0x86C5, 0xAFCB, 0xCFF2, 0xAFCB, 0x7EC5, 0x5463, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x5443, 0x7EA5, 0xA7EA, 0xB7ED, 0x9FE8, 0x7EA4, 0x4C42, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x5D41, 0x7F23, 0xA7A9, 0xA7E9, 0x97E4, 0x7F42, 0x5D61, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x5580, 0x7FE0, 0x7FA1, 0x97C6, 0x97E5, 0x7FE0, 0x7FE0, 0x7FE0, 0x5580, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x7FE0, 0x7FE0, 0x7FE0, 0x0000, 0x0000, 0x5580, 0x7FE0, 0x7FE0, 0x7FE0, 0x7FE0, 0x7FE0, 0x7FE0, 0x7FE0, 0x5580, 0x0000, 0x0000, 0x7FE0, 0x7FE0, 0x7FE0,
	0x7FE0, 0x0000, 0x7FE0, 0x0000, 0x0000, 0x5580, 0x7FE0, 0xF800, 0x7FE0, 0x7FE0, 0x7FE0, 0xF800, 0x7FE0, 0x5580, 0x0000, 0x0000, 0x7FE0, 0x0000, 0x7FE0,
	0x7FE0, 0x0000, 0x0000, 0x7FE0, 0x0000, 0x5580, 0x7FE0, 0xF800, 0x7FE0, 0x7FE0, 0x7FE0, 0xF800, 0x7FE0, 0x5580, 0x0000, 0x7FE0, 0x0000, 0x0000, 0x7FE0,
	0x0000, 0x0000, 0x0000, 0x7FE0, 0x0000, 0x5580, 0x5580, 0x5580, 0x5580, 0x7FE0, 0x5580, 0x5580, 0x5580, 0x5580, 0x0000, 0x7FE0, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x7FE0, 0x0000, 0x4400, 0x7FE0, 0x0000, 0x7FE0, 0x7FE0, 0x7FE0, 0x0000, 0x7FE0, 0x4400, 0x0000, 0x7FE0, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x7FE0, 0x0000, 0x0000, 0x4400, 0x7FE0, 0x0000, 0x7FE0, 0x7FE0, 0x7FE0, 0x0000, 0x7FE0, 0x4400, 0x0000, 0x0000, 0x7FE0, 0x0000, 0x0000,
	0x4400, 0x0000, 0x5580, 0x5580, 0x5580, 0x5580, 0x5580, 0x0000, 0x5580, 0x0000, 0x5580, 0x0000, 0x5580, 0x5580, 0x5580, 0x5580, 0x5580, 0x0000, 0x4400,
	0x4400, 0x0000, 0x0000, 0x0000, 0x0000, 0x4400, 0x0000, 0x0000, 0x5580, 0x0000, 0x5580, 0x0000, 0x0000, 0x4400, 0x0000, 0x0000, 0x0000, 0x0000, 0x4400,
	0x4400, 0x4400, 0x0000, 0x4400, 0x4400, 0x0000, 0x7FE0, 0x7FE0, 0x0000, 0x0000, 0x0000, 0x7FE0, 0x7FE0, 0x0000, 0x4400, 0x4400, 0x0000, 0x4400, 0x4400,
	0x0000, 0x0000, 0x4400, 0x0000, 0x0000, 0x5580, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x5580, 0x0000, 0x0000, 0x4400, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x5580, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x5580, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x5580, 0x0000, 0x5580, 0x0000, 0x0000, 0x0000, 0x5580, 0x0000, 0x5580, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x7FE0, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x7FE0, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
}

// ShipSprite returns a fresh copy of the ship sprite.
func ShipSprite() *draw.PixelBuffer {
	buf := draw.NewPixelBuffer(ShipWidth, ShipHeight)
	copy(buf.Pix, shipPixels[:])
	return buf
}
