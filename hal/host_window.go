//go:build !tinygo && cgo

package hal

import (
	"image"
	"image/color"

	"calcsat/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const windowScale = 4

var ledOnColor = color.RGBA{R: 0xe0, G: 0x30, B: 0x20, A: 0xff}

// RunWindow starts a desktop window that displays the LCD and forwards keyboard input.
// It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, host HostConfig) error {
	h := newHost(host)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("CalcSat (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.lcd.fb.width*windowScale, h.lcd.fb.height*windowScale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.t.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.lcd.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)

	// Shift indicator in the top-right margin.
	if g.h.led.On() {
		x := float32(fb.width - lcdMargin + 1)
		vector.DrawFilledRect(screen, x, 1, 2, 2, ledOnColor, false)
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.lcd.fb.width, g.h.lcd.fb.height
}
