package keypad

import (
	"testing"

	"calcsat/calcos/proto"
	"calcsat/hal"
	"calcsat/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKeyboard struct{ ch chan hal.KeyEvent }

func (k fakeKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type fakeInput struct{ kbd hal.Keyboard }

func (in fakeInput) Keyboard() hal.Keyboard { return in.kbd }

func newInput(evs ...hal.KeyEvent) fakeInput {
	ch := make(chan hal.KeyEvent, len(evs)+1)
	for _, ev := range evs {
		ch <- ev
	}
	return fakeInput{kbd: fakeKeyboard{ch: ch}}
}

func press(r rune) hal.KeyEvent { return hal.KeyEvent{Press: true, Rune: r} }

func drain(sys *kernel.System) string {
	var out []byte
	for {
		msg, ok := sys.TryRecv(kernel.EPCalc)
		if !ok {
			return string(out)
		}
		if msg.Kind != uint16(proto.MsgKey) {
			continue
		}
		sym, ok := proto.DecodeKeyPayload(msg.Payload())
		if ok {
			out = append(out, sym)
		}
	}
}

func TestStepTranslatesAndFilters(t *testing.T) {
	in := newInput(
		press('1'),
		press('+'),
		press('x'),
		hal.KeyEvent{Rune: '2'},
		hal.KeyEvent{Press: true, Code: hal.KeyEnter},
		press('#'),
	)
	sys := kernel.NewSystem()
	s := New(in, nil)
	s.Step(sys)

	assert.Equal(t, "1A*#", drain(sys))
}

func TestStepHoldsWhenMailboxFull(t *testing.T) {
	var evs []hal.KeyEvent
	for _, r := range "1234567890AB" {
		evs = append(evs, press(r))
	}
	sys := kernel.NewSystem()
	s := New(newInput(evs...), nil)

	s.Step(sys)
	first := drain(sys)
	require.Equal(t, "12345678", first)

	s.Step(sys)
	assert.Equal(t, "90AB", drain(sys))
}

func TestSetKeymap(t *testing.T) {
	in := newInput(press('x'))
	sys := kernel.NewSystem()
	s := New(in, nil)

	km, err := hal.ParseKeymap(map[string]string{"x": "D"})
	require.NoError(t, err)
	s.SetKeymap(km)
	s.Step(sys)
	assert.Equal(t, "D", drain(sys))
}

func TestStepWithoutKeyboard(t *testing.T) {
	sys := kernel.NewSystem()
	New(nil, nil).Step(sys)
	assert.Zero(t, sys.Pending(kernel.EPCalc))
}
