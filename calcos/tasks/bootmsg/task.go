package bootmsg

import (
	"calcsat/calcos/proto"
	"calcsat/internal/buildinfo"
	"calcsat/kernel"
)

const (
	bannerHoldMs = 2000
	readyHoldMs  = 1500
)

// Task shows the power-on banner once.
type Task struct {
	done bool
}

// New returns a boot message task.
func New() *Task {
	return &Task{}
}

func (t *Task) Step(sys *kernel.System) {
	if t.done {
		return
	}
	t.done = true

	log := "boot: calcsat " + buildinfo.Short()
	sys.Send(kernel.EPKernel, kernel.EPLogger, uint16(proto.MsgLogLine), proto.LogLinePayload(log))
	sys.Send(kernel.EPKernel, kernel.EPDisplay, uint16(proto.MsgPage),
		proto.PagePayload(bannerHoldMs, "   CalcSat v1", "  build "+buildinfo.Short()))
	sys.Send(kernel.EPKernel, kernel.EPDisplay, uint16(proto.MsgPage),
		proto.PagePayload(readyHoldMs, "    CALC-SAT", "   READY!"))
}
