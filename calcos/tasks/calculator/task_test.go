package calculator

import (
	"strings"
	"testing"

	"calcsat/calcos/calc"
	"calcsat/calcos/proto"
	"calcsat/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLED struct {
	on    bool
	flips int
}

func (l *fakeLED) High() { l.on = true; l.flips++ }
func (l *fakeLED) Low()  { l.on = false; l.flips++ }

type display struct {
	frames [][2]string
	pages  [][2]string
}

func collect(sys *kernel.System) display {
	var d display
	for {
		msg, ok := sys.TryRecv(kernel.EPDisplay)
		if !ok {
			return d
		}
		switch proto.Kind(msg.Kind) {
		case proto.MsgFrame:
			top, bottom, _ := proto.DecodeFramePayload(msg.Payload())
			d.frames = append(d.frames, [2]string{top, bottom})
		case proto.MsgPage:
			_, top, bottom, _ := proto.DecodePagePayload(msg.Payload())
			d.pages = append(d.pages, [2]string{top, bottom})
		}
	}
}

func logLines(sys *kernel.System) []string {
	var out []string
	for {
		msg, ok := sys.TryRecv(kernel.EPLogger)
		if !ok {
			return out
		}
		if proto.Kind(msg.Kind) == proto.MsgLogLine {
			out = append(out, string(msg.Payload()))
		}
	}
}

// typeKeys feeds keys one step at a time, like the keypad service does.
func typeKeys(sys *kernel.System, task *Task, keys string) {
	for i := 0; i < len(keys); i++ {
		sys.Send(kernel.EPKeypad, kernel.EPCalc, uint16(proto.MsgKey), proto.KeyPayload(keys[i]))
		task.Step(sys)
	}
}

func TestFirstStepPostsPowerOnFrame(t *testing.T) {
	sys := kernel.NewSystem()
	task := New(nil)
	task.Step(sys)
	task.Step(sys)

	assert.Equal(t, [][2]string{{"", "0"}}, collect(sys).frames)
}

func TestKeysProduceFrames(t *testing.T) {
	sys := kernel.NewSystem()
	task := New(nil)
	typeKeys(sys, task, "2A3*")

	d := collect(sys)
	require.NotEmpty(t, d.frames)
	assert.Equal(t, [2]string{"", "5"}, d.frames[len(d.frames)-1])
	assert.Equal(t, [][2]string{{"", "2"}, {"", "2+"}, {"", "2+3"}, {"", "5"}}, d.frames)
	assert.Equal(t, calc.StateShowingResult, task.Calculator().State())
}

func TestShiftDrivesLED(t *testing.T) {
	sys := kernel.NewSystem()
	led := &fakeLED{}
	task := New(led)

	typeKeys(sys, task, "3D")
	assert.True(t, led.on)
	d := collect(sys)
	assert.Equal(t, [2]string{"SHIFT", "3"}, d.frames[len(d.frames)-1])

	typeKeys(sys, task, "A")
	assert.False(t, led.on)
	assert.Equal(t, 3, led.flips, "initial low, high, low")
}

func TestDivideByZeroIsLogged(t *testing.T) {
	sys := kernel.NewSystem()
	task := New(nil)
	typeKeys(sys, task, "5DB0*")

	d := collect(sys)
	assert.Equal(t, [2]string{"Error:", "Div by 0"}, d.frames[len(d.frames)-1])
	assert.Contains(t, logLines(sys), "calc: error: Div by 0")
}

func TestEasterEggShowsPagesThenResult(t *testing.T) {
	sys := kernel.NewSystem()
	task := New(nil)
	typeKeys(sys, task, "42")
	collect(sys)

	typeKeys(sys, task, "*")
	d := collect(sys)
	assert.Equal(t, [][2]string{
		{"The Answer to", "Life, Universe"},
		{"and Everything", "is 42"},
	}, d.pages)
	assert.Empty(t, d.frames, "result reads the same as the typed code")

	buf := make([]byte, 32)
	_, n := sys.Shared().Read(buf)
	assert.Equal(t, "42", string(buf[:n]))
}

func TestGameCodeConsumesEquals(t *testing.T) {
	sys := kernel.NewSystem()
	task := New(nil)
	task.Calculator().ProcessKey('7')
	task.Calculator().ProcessKey('D')
	task.Calculator().ProcessKey('1') // MS
	task.Calculator().Clear()
	typeKeys(sys, task, "5318008")
	collect(sys)
	logLines(sys)

	typeKeys(sys, task, "*")
	d := collect(sys)
	assert.Equal(t, [][2]string{{"  SNAKE GAME", " Use A B C D"}}, d.pages)
	require.Len(t, d.frames, 1)
	assert.Equal(t, [2]string{"M:7", "0"}, d.frames[0])
	assert.Equal(t, calc.StateEnteringNumber, task.Calculator().State())
	assert.Equal(t, 7.0, task.Calculator().Memory())

	var game bool
	for _, l := range logLines(sys) {
		game = game || strings.Contains(l, "game snake")
	}
	assert.True(t, game)
}

func TestIgnoresForeignMessages(t *testing.T) {
	sys := kernel.NewSystem()
	task := New(nil)
	task.Step(sys)
	collect(sys)

	sys.Send(kernel.EPKernel, kernel.EPCalc, uint16(proto.MsgFrame), proto.FramePayload("x", "y"))
	sys.Send(kernel.EPKernel, kernel.EPCalc, uint16(proto.MsgKey), []byte{'1', '2'})
	task.Step(sys)
	assert.Empty(t, collect(sys).frames)
}
