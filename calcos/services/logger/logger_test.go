package logger

import (
	"testing"

	"calcsat/calcos/proto"
	"calcsat/kernel"

	"github.com/stretchr/testify/assert"
)

type lineLog struct{ lines []string }

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func TestStepWritesLogLines(t *testing.T) {
	log := &lineLog{}
	sys := kernel.NewSystem()
	sys.Send(kernel.EPCalc, kernel.EPLogger, uint16(proto.MsgLogLine), proto.LogLinePayload("calc: error"))
	sys.Send(kernel.EPCalc, kernel.EPLogger, uint16(proto.MsgKey), proto.KeyPayload('1'))

	New(log).Step(sys)
	assert.Equal(t, []string{"calc: error"}, log.lines)
}

func TestStepLogsPublishedExpression(t *testing.T) {
	log := &lineLog{}
	sys := kernel.NewSystem()
	s := New(log)

	seq := sys.Shared().Write([]byte("12+3"))
	sys.Send(kernel.EPCalc, kernel.EPLogger, uint16(proto.MsgExpr), proto.ExprPayload(seq))
	sys.Send(kernel.EPCalc, kernel.EPLogger, uint16(proto.MsgExpr), proto.ExprPayload(seq))
	s.Step(sys)

	assert.Equal(t, []string{"expr #1: 12+3"}, log.lines)
}

func TestStepWithoutLoggerDrains(t *testing.T) {
	sys := kernel.NewSystem()
	sys.Send(kernel.EPCalc, kernel.EPLogger, uint16(proto.MsgLogLine), proto.LogLinePayload("x"))
	New(nil).Step(sys)
	assert.Zero(t, sys.Pending(kernel.EPLogger))
}
