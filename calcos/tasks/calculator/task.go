// Package calculator runs the calculator engine as a kernel task.
//
// The task owns the Calculator: keys arrive as MsgKey, the display gets a
// MsgFrame whenever the two LCD lines change, and the LED mirrors the shift
// modifier. Before '=' is processed the expression is published to the
// shared buffer and matched against the easter egg and game codes.
package calculator

import (
	"calcsat/calcos/calc"
	"calcsat/calcos/eggs"
	"calcsat/calcos/proto"
	"calcsat/hal"
	"calcsat/kernel"
)

type Task struct {
	c   *calc.Calculator
	led hal.LED

	ledOn  bool
	ledSet bool

	top    string
	bottom string
	sent   bool
}

func New(led hal.LED) *Task {
	return &Task{c: calc.New(), led: led}
}

// Calculator exposes the engine for inspection.
func (t *Task) Calculator() *calc.Calculator { return t.c }

func (t *Task) Step(sys *kernel.System) {
	for {
		msg, ok := sys.TryRecv(kernel.EPCalc)
		if !ok {
			break
		}
		if proto.Kind(msg.Kind) != proto.MsgKey {
			continue
		}
		sym, ok := proto.DecodeKeyPayload(msg.Payload())
		if !ok {
			continue
		}
		t.handleKey(sys, calc.Key(sym))
	}

	t.syncLED()
	t.postFrame(sys)
}

func (t *Task) handleKey(sys *kernel.System, k calc.Key) {
	if k == calc.KeyEquals && t.trigger(sys) {
		return
	}

	prev := t.c.State()
	t.c.ProcessKey(k)
	switch st := t.c.State(); {
	case st == prev:
	case st == calc.StateError:
		t.log(sys, "calc: error: "+t.c.ErrorMessage())
	default:
		t.log(sys, "calc: "+prev.String()+" -> "+st.String())
	}
}

// trigger publishes the expression and shows any easter egg for it. A game
// code consumes the key and clears the calculator; trigger then reports true.
func (t *Task) trigger(sys *kernel.System) bool {
	expr := t.c.Expression()
	seq := sys.Shared().Write([]byte(expr))
	sys.Send(kernel.EPCalc, kernel.EPLogger, uint16(proto.MsgExpr), proto.ExprPayload(seq))

	if pages, ok := eggs.EasterEgg(expr); ok {
		for _, p := range pages {
			t.page(sys, p)
		}
	}

	g := eggs.Activation(expr)
	if g == eggs.GameNone {
		return false
	}
	if p, ok := eggs.Banner(g); ok {
		t.page(sys, p)
	}
	t.log(sys, "calc: game "+g.String())
	t.c.Clear()
	return true
}

func (t *Task) page(sys *kernel.System, p eggs.Page) {
	if !sys.Send(kernel.EPCalc, kernel.EPDisplay, uint16(proto.MsgPage), proto.PagePayload(p.HoldMs, p.Line1, p.Line2)) {
		t.log(sys, "calc: display busy, page dropped")
	}
}

func (t *Task) syncLED() {
	on := t.c.ShiftActive()
	if t.led == nil || (t.ledSet && on == t.ledOn) {
		return
	}
	if on {
		t.led.High()
	} else {
		t.led.Low()
	}
	t.ledOn, t.ledSet = on, true
}

// postFrame sends the current lines when they differ from the last frame
// delivered. A full display mailbox leaves the frame for the next step.
func (t *Task) postFrame(sys *kernel.System) {
	top, bottom := t.c.Lines()
	if t.sent && top == t.top && bottom == t.bottom {
		return
	}
	if !sys.Send(kernel.EPCalc, kernel.EPDisplay, uint16(proto.MsgFrame), proto.FramePayload(top, bottom)) {
		return
	}
	t.top, t.bottom, t.sent = top, bottom, true
}

func (t *Task) log(sys *kernel.System, line string) {
	sys.Send(kernel.EPCalc, kernel.EPLogger, uint16(proto.MsgLogLine), proto.LogLinePayload(line))
}
