package app

import (
	"fmt"
	"runtime/debug"
	"time"

	"calcsat/calcos/services/display"
	"calcsat/calcos/services/keypad"
	"calcsat/calcos/services/logger"
	"calcsat/calcos/tasks/bootmsg"
	"calcsat/calcos/tasks/calculator"
	"calcsat/hal"
	"calcsat/kernel"
)

// Config selects optional parts of the system.
type Config struct {
	// Boot shows the power-on banner.
	Boot bool
	// Keymap translates host keys; nil means hal.DefaultKeymap.
	Keymap *hal.Keymap
	// Keymaps delivers replacement keymaps, applied at the next step.
	Keymaps <-chan *hal.Keymap
}

// System is the wired calculator: HAL, kernel and tasks.
type System struct {
	h hal.HAL
	k *kernel.System

	keypad *keypad.Service
	calc   *calculator.Task

	ticks   <-chan uint64
	keymaps <-chan *hal.Keymap
	halted  error
}

// New initializes the system with default config and returns its step function.
func New(h hal.HAL) func() error {
	return NewSystem(h, Config{Boot: true}).Step
}

// Run starts the system and steps it forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	step := New(h)
	for {
		if err := step(); err != nil {
			select {}
		}
		time.Sleep(time.Millisecond)
	}
}

// NewSystem wires the HAL to the kernel tasks.
func NewSystem(h hal.HAL, cfg Config) *System {
	k := kernel.NewSystem()

	var lcd hal.CharDisplay
	if d := h.Display(); d != nil {
		lcd = d.Chars()
	}

	s := &System{
		h:       h,
		k:       k,
		keypad:  keypad.New(h.Input(), cfg.Keymap),
		calc:    calculator.New(h.LED()),
		keymaps: cfg.Keymaps,
	}
	if ht := h.Time(); ht != nil {
		s.ticks = ht.Ticks()
	}

	if cfg.Boot {
		k.AddTask(bootmsg.New())
	}
	k.AddTask(s.keypad)
	k.AddTask(s.calc)
	k.AddTask(display.New(lcd))
	k.AddTask(logger.New(h.Logger()))
	return s
}

// Kernel returns the message kernel.
func (s *System) Kernel() *kernel.System { return s.k }

// Calculator returns the calculator task.
func (s *System) Calculator() *calculator.Task { return s.calc }

// Step advances the clock and runs every task once. After a task panics the
// panic screen stays up and Step keeps returning the panic error.
func (s *System) Step() (err error) {
	if s.halted != nil {
		return s.halted
	}
	defer func() {
		if r := recover(); r != nil {
			showPanic(s.h, r, debug.Stack())
			s.halted = fmt.Errorf("panic: %v", r)
			err = s.halted
		}
	}()

	s.drainTicks()
	s.drainKeymaps()
	s.k.Step()
	return nil
}

func (s *System) drainTicks() {
	for {
		select {
		case seq, ok := <-s.ticks:
			if !ok {
				s.ticks = nil
				return
			}
			s.k.TickTo(seq)
		default:
			return
		}
	}
}

func (s *System) drainKeymaps() {
	for {
		select {
		case km, ok := <-s.keymaps:
			if !ok {
				s.keymaps = nil
				return
			}
			s.keypad.SetKeymap(km)
		default:
			return
		}
	}
}
