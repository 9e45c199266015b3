package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// CharDisplay is a character LCD: a grid of cols x rows cells with a write
// cursor. Writes past the end of a row are dropped. Present pushes the grid
// to the panel.
type CharDisplay interface {
	Size() (cols, rows int)
	Clear()
	SetCursor(col, row int)
	WriteString(s string)
	Present() error
}

// KeyCode is a minimal identifier for keys that have no rune.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyDelete
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the output devices (if available).
type Display interface {
	Chars() CharDisplay
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time provides a base tick stream.
//
// One tick is one millisecond on every platform.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the OS and the outside world.
type HAL interface {
	Logger() Logger
	LED() LED
	Display() Display
	Input() Input
	Time() Time
}
