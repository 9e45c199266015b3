//go:build !tinygo

package hal

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	lcdBacklight = color.RGBA{R: 0x7c, G: 0xb3, B: 0x42, A: 0xff}
	lcdCell      = color.RGBA{R: 0x72, G: 0xa6, B: 0x3c, A: 0xff}
	lcdInk       = color.RGBA{R: 0x12, G: 0x24, B: 0x10, A: 0xff}
)

const lcdMargin = 4

// hostLCD is a character grid that paints itself into an RGB565
// framebuffer on every Present.
type hostLCD struct {
	*CharGrid
	fb   *hostFramebuffer
	font tinyfont.Fonter

	cellW    int16
	cellH    int16
	baseline int16
}

func newHostLCD(cols, rows int) *hostLCD {
	font := &proggy.TinySZ8pt7b
	_, outbox := tinyfont.LineWidth(font, "0")
	cellW := int16(outbox) + 1
	if cellW <= 1 {
		cellW = 6
	}
	cellH := int16(font.GetYAdvance()) + 2
	if cellH <= 2 {
		cellH = 10
	}

	lcd := &hostLCD{
		CharGrid: NewCharGrid(cols, rows),
		font:     font,
		cellW:    cellW,
		cellH:    cellH,
		baseline: cellH * 3 / 4,
	}
	lcd.fb = newHostFramebuffer(2*lcdMargin+cols*int(cellW), 2*lcdMargin+rows*int(cellH))
	lcd.render()
	return lcd
}

func (d *hostLCD) Present() error {
	if err := d.CharGrid.Present(); err != nil {
		return err
	}
	d.render()
	return nil
}

func (d *hostLCD) render() {
	d.fb.ClearRGB(lcdBacklight.R, lcdBacklight.G, lcdBacklight.B)

	d.fb.lock()
	defer d.fb.unlock()
	target := PixelTarget{FB: d.fb}
	for row, line := range d.Lines() {
		y := int16(lcdMargin + row*int(d.cellH))
		for col, r := range line {
			x := int16(lcdMargin + col*int(d.cellW))
			target.FillRect(x, y, d.cellW-1, d.cellH-1, lcdCell)
			if r != ' ' {
				tinyfont.DrawChar(target, d.font, x, y+d.baseline, r, lcdInk)
			}
		}
	}
}
