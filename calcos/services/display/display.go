// Package display drives the character LCD from frame and page messages.
//
// A frame is the calculator's live two-line view. A page is a timed message
// that owns the panel for its hold time; frames that arrive meanwhile are
// coalesced and only the newest is drawn once the pages run out.
package display

import (
	"calcsat/calcos/proto"
	"calcsat/hal"
	"calcsat/kernel"
)

// maxQueuedPages bounds the page queue; further pages are dropped.
const maxQueuedPages = 16

type lines struct {
	top    string
	bottom string
}

type page struct {
	lines
	hold uint64
}

type Service struct {
	lcd  hal.CharDisplay
	cols int
	rows int

	pages   []page
	holding bool
	until   uint64

	frame      lines
	haveFrame  bool
	frameDirty bool

	presentErr error
}

func New(lcd hal.CharDisplay) *Service {
	s := &Service{lcd: lcd}
	if lcd != nil {
		s.cols, s.rows = lcd.Size()
	}
	return s
}

func (s *Service) Step(sys *kernel.System) {
	for {
		msg, ok := sys.TryRecv(kernel.EPDisplay)
		if !ok {
			break
		}
		s.handle(msg)
	}
	if s.lcd == nil {
		return
	}

	now := sys.Ticks()
	if s.holding {
		if now < s.until {
			return
		}
		s.holding = false
		s.frameDirty = s.haveFrame
	}

	if len(s.pages) > 0 {
		p := s.pages[0]
		s.pages = s.pages[1:]
		s.draw(p.lines)
		s.holding = true
		s.until = now + p.hold
		return
	}

	if s.frameDirty {
		s.draw(s.frame)
		s.frameDirty = false
	}
}

// Busy reports whether a page is on the panel or waiting for it.
func (s *Service) Busy() bool { return s.holding || len(s.pages) > 0 }

// Err returns the last error reported by the panel, if any.
func (s *Service) Err() error { return s.presentErr }

func (s *Service) handle(msg kernel.Message) {
	switch proto.Kind(msg.Kind) {
	case proto.MsgFrame:
		top, bottom, ok := proto.DecodeFramePayload(msg.Payload())
		if !ok {
			return
		}
		s.frame = lines{top: top, bottom: bottom}
		s.haveFrame = true
		s.frameDirty = true
	case proto.MsgPage:
		hold, top, bottom, ok := proto.DecodePagePayload(msg.Payload())
		if !ok || len(s.pages) >= maxQueuedPages {
			return
		}
		s.pages = append(s.pages, page{lines: lines{top: top, bottom: bottom}, hold: uint64(hold)})
	}
}

func (s *Service) draw(l lines) {
	s.lcd.Clear()
	switch {
	case s.rows >= 2:
		s.put(0, l.top)
		s.put(1, l.bottom)
	case s.rows == 1:
		s.put(0, l.bottom)
	}
	s.presentErr = s.lcd.Present()
}

func (s *Service) put(row int, text string) {
	if len(text) > s.cols {
		text = text[:s.cols]
	}
	s.lcd.SetCursor(0, row)
	s.lcd.WriteString(text)
}
