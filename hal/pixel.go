package hal

import "image/color"

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// lcdColor converts a packed LCD color to RGBA.
//
// The panel is 16bpp, so only the low RGB565 half of the word is used.
func lcdColor(c uint32) color.RGBA {
	r, g, b := rgb888From565(uint16(c))
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
