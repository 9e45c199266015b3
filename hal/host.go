//go:build !tinygo

package hal

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// HostConfig sizes the emulated panel and routes device logs.
type HostConfig struct {
	Cols int
	Rows int
	Log  *zap.Logger
}

type hostHAL struct {
	logger *hostLogger
	led    *hostLED
	lcd    *hostLCD
	kbd    *hostKeyboard
	t      *hostTime
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHost(cfg)
}

func newHost(cfg HostConfig) *hostHAL {
	if cfg.Cols <= 0 {
		cfg.Cols = 16
	}
	if cfg.Rows <= 0 {
		cfg.Rows = 2
	}
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	logger := &hostLogger{l: log.Named("device")}
	return &hostHAL{
		logger: logger,
		led:    &hostLED{l: log.Named("led")},
		lcd:    newHostLCD(cfg.Cols, cfg.Rows),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) LED() LED         { return h.led }
func (h *hostHAL) Display() Display { return hostDisplay{lcd: h.lcd} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	lcd *hostLCD
}

func (d hostDisplay) Chars() CharDisplay       { return d.lcd }
func (d hostDisplay) Framebuffer() Framebuffer { return d.lcd.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	l *zap.Logger
}

func (l *hostLogger) WriteLineString(s string) { l.l.Info(s) }
func (l *hostLogger) WriteLineBytes(b []byte)  { l.l.Info(string(b)) }

type hostLED struct {
	on atomic.Bool
	l  *zap.Logger
}

func (l *hostLED) High() {
	if !l.on.Swap(true) {
		l.l.Debug("led", zap.Bool("on", true))
	}
}

func (l *hostLED) Low() {
	if l.on.Swap(false) {
		l.l.Debug("led", zap.Bool("on", false))
	}
}

func (l *hostLED) On() bool { return l.on.Load() }
