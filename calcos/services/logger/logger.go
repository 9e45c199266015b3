package logger

import (
	"strconv"

	"calcsat/calcos/proto"
	"calcsat/hal"
	"calcsat/kernel"
)

type Service struct {
	log hal.Logger

	exprBuf [kernel.MaxMessageBytes]byte
	lastSeq uint32
}

func New(log hal.Logger) *Service {
	return &Service{log: log}
}

func (s *Service) Step(sys *kernel.System) {
	for {
		msg, ok := sys.TryRecv(kernel.EPLogger)
		if !ok {
			return
		}
		if s.log == nil {
			continue
		}
		switch proto.Kind(msg.Kind) {
		case proto.MsgLogLine:
			s.log.WriteLineBytes(msg.Payload())
		case proto.MsgExpr:
			s.logExpr(sys, msg)
		}
	}
}

// logExpr reads the published expression back from the shared buffer. A
// buffer that moved on since the notice was sent is logged with its newer
// sequence number; repeats of a logged sequence are skipped.
func (s *Service) logExpr(sys *kernel.System, msg kernel.Message) {
	if _, ok := proto.DecodeExprPayload(msg.Payload()); !ok {
		return
	}
	seq, n := sys.Shared().Read(s.exprBuf[:])
	if seq == s.lastSeq {
		return
	}
	s.lastSeq = seq

	line := make([]byte, 0, 16+n)
	line = append(line, "expr #"...)
	line = strconv.AppendUint(line, uint64(seq), 10)
	line = append(line, ": "...)
	line = append(line, s.exprBuf[:n]...)
	s.log.WriteLineBytes(line)
}
