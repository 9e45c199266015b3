// Package keypad turns raw key events into keypad symbols for the calculator.
package keypad

import (
	"sync/atomic"

	"calcsat/calcos/calc"
	"calcsat/calcos/proto"
	"calcsat/hal"
	"calcsat/kernel"
)

type Service struct {
	events <-chan hal.KeyEvent
	keymap atomic.Pointer[hal.Keymap]

	held    byte
	hasHeld bool
}

func New(in hal.Input, km *hal.Keymap) *Service {
	s := &Service{}
	if in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			s.events = kbd.Events()
		}
	}
	s.SetKeymap(km)
	return s
}

// SetKeymap swaps the key translation. It is safe to call from another
// goroutine.
func (s *Service) SetKeymap(km *hal.Keymap) {
	if km == nil {
		km = hal.DefaultKeymap()
	}
	s.keymap.Store(km)
}

// Step forwards pending presses without blocking. A symbol the calculator
// mailbox cannot take is held and retried on the next step, so presses keep
// their order.
func (s *Service) Step(sys *kernel.System) {
	if s.hasHeld {
		if !s.post(sys, s.held) {
			return
		}
		s.hasHeld = false
	}
	if s.events == nil {
		return
	}

	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.events = nil
				return
			}
			sym, ok := s.translate(ev)
			if !ok {
				continue
			}
			if !s.post(sys, sym) {
				s.held, s.hasHeld = sym, true
				return
			}
		default:
			return
		}
	}
}

func (s *Service) translate(ev hal.KeyEvent) (byte, bool) {
	r, ok := s.keymap.Load().Translate(ev)
	if !ok || r > 0x7f || !calc.Key(r).Valid() {
		return 0, false
	}
	return byte(r), true
}

func (s *Service) post(sys *kernel.System, sym byte) bool {
	return sys.Send(kernel.EPKeypad, kernel.EPCalc, uint16(proto.MsgKey), proto.KeyPayload(sym))
}
