package app

import (
	"strings"
	"testing"

	"calcsat/hal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{ lines []string }

func (l *testLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *testLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type testLED struct{ panicOnHigh bool }

func (l *testLED) High() {
	if l.panicOnHigh {
		panic("led fault")
	}
}
func (l *testLED) Low() {}

type testKeyboard struct{ ch chan hal.KeyEvent }

func (k testKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type testTime struct{ ch chan uint64 }

func (t testTime) Ticks() <-chan uint64 { return t.ch }

type testHAL struct {
	log  *testLogger
	led  *testLED
	lcd  *hal.CharGrid
	kbd  testKeyboard
	time testTime
}

func newTestHAL() *testHAL {
	return &testHAL{
		log:  &testLogger{},
		led:  &testLED{},
		lcd:  hal.NewCharGrid(16, 2),
		kbd:  testKeyboard{ch: make(chan hal.KeyEvent, 64)},
		time: testTime{ch: make(chan uint64, 64)},
	}
}

func (h *testHAL) Logger() hal.Logger   { return h.log }
func (h *testHAL) LED() hal.LED         { return h.led }
func (h *testHAL) Display() hal.Display { return h }
func (h *testHAL) Input() hal.Input     { return h }
func (h *testHAL) Time() hal.Time       { return h.time }

func (h *testHAL) Chars() hal.CharDisplay       { return h.lcd }
func (h *testHAL) Framebuffer() hal.Framebuffer { return nil }
func (h *testHAL) Keyboard() hal.Keyboard       { return h.kbd }

func (h *testHAL) typeKeys(s string) {
	for _, r := range s {
		h.kbd.ch <- hal.KeyEvent{Press: true, Rune: r}
	}
}

func (h *testHAL) screen() []string {
	out := h.lcd.Lines()
	for i := range out {
		out[i] = strings.TrimRight(out[i], " ")
	}
	return out
}

func TestBootBannerThenCalculator(t *testing.T) {
	h := newTestHAL()
	step := New(h)

	require.NoError(t, step())
	assert.Equal(t, []string{"   CalcSat v1", "  build dev"}, h.screen())

	h.typeKeys("12A3")
	require.NoError(t, step())
	assert.Equal(t, "   CalcSat v1", h.screen()[0], "banner holds")

	h.time.ch <- 2000
	require.NoError(t, step())
	assert.Equal(t, []string{"    CALC-SAT", "   READY!"}, h.screen())

	h.time.ch <- 3500
	h.typeKeys("*")
	require.NoError(t, step())
	assert.Equal(t, []string{"", "15"}, h.screen())
	assert.Contains(t, h.log.lines, "boot: calcsat dev")
}

func TestKeymapSwap(t *testing.T) {
	h := newTestHAL()
	keymaps := make(chan *hal.Keymap, 1)
	sys := NewSystem(h, Config{Keymaps: keymaps})

	km, err := hal.ParseKeymap(map[string]string{"q": "9"})
	require.NoError(t, err)
	keymaps <- km
	h.typeKeys("q")
	require.NoError(t, sys.Step())

	assert.Equal(t, []string{"", "9"}, h.screen())
	assert.Equal(t, "9", sys.Calculator().Calculator().Expression())
}

func TestPanicShowsScreenAndHalts(t *testing.T) {
	h := newTestHAL()
	h.led.panicOnHigh = true
	sys := NewSystem(h, Config{})

	h.typeKeys("D")
	err := sys.Step()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "led fault")
	assert.Equal(t, []string{"Panic:", "led fault"}, h.screen())
	assert.Contains(t, h.log.lines, "CalcSat Panic: led fault")

	assert.Equal(t, err, sys.Step())
}
