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

// PixelTarget adapts an RGB565 Framebuffer to the tinygo drivers.Displayer
// interface so tinyfont can draw into it.
type PixelTarget struct {
	FB Framebuffer
}

func (d PixelTarget) Size() (x, y int16) {
	if d.FB == nil {
		return 0, 0
	}
	return int16(d.FB.Width()), int16(d.FB.Height())
}

func (d PixelTarget) SetPixel(x, y int16, c color.RGBA) {
	if d.FB == nil || d.FB.Format() != PixelFormatRGB565 {
		return
	}
	buf := d.FB.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.FB.Width() || iy < 0 || iy >= d.FB.Height() {
		return
	}
	off := iy*d.FB.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	pixel := rgb565(c.R, c.G, c.B)
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

// FillRect paints a w x h block at (x, y), clipped to the buffer.
func (d PixelTarget) FillRect(x, y, w, h int16, c color.RGBA) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			d.SetPixel(xx, yy, c)
		}
	}
}

func (d PixelTarget) Display() error {
	if d.FB == nil {
		return ErrNotImplemented
	}
	return d.FB.Present()
}
