package hal

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"tinygo.org/x/drivers"
)

type memFramebuffer struct {
	w, h int
	buf  []byte
}

func (f *memFramebuffer) Width() int             { return f.w }
func (f *memFramebuffer) Height() int            { return f.h }
func (f *memFramebuffer) Format() PixelFormat    { return PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int       { return f.w * 2 }
func (f *memFramebuffer) Buffer() []byte         { return f.buf }
func (f *memFramebuffer) ClearRGB(r, g, b uint8) {}
func (f *memFramebuffer) Present() error         { return nil }

var _ drivers.Displayer = PixelTarget{}

func TestRGB565RoundTrip(t *testing.T) {
	r, g, b := rgb888From565(rgb565(255, 255, 255))
	assert.Equal(t, []uint8{255, 255, 255}, []uint8{r, g, b})
	r, g, b = rgb888From565(rgb565(0, 0, 0))
	assert.Equal(t, []uint8{0, 0, 0}, []uint8{r, g, b})
}

func TestPixelTargetClips(t *testing.T) {
	fb := &memFramebuffer{w: 4, h: 2, buf: make([]byte, 16)}
	d := PixelTarget{FB: fb}

	x, y := d.Size()
	assert.Equal(t, int16(4), x)
	assert.Equal(t, int16(2), y)

	d.FillRect(3, 1, 5, 5, color.RGBA{R: 255, A: 255})
	d.SetPixel(-1, 0, color.RGBA{G: 255, A: 255})

	want := make([]byte, 16)
	want[14], want[15] = 0x00, 0xF8
	assert.Equal(t, want, fb.buf)
	assert.NoError(t, d.Display())
}
