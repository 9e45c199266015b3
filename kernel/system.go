package kernel

import "sync/atomic"

// Task is a cooperative unit of work. Step must not block.
type Task interface {
	Step(s *System)
}

// System holds the endpoint mailboxes, the shared buffer and the timebase.
// Tasks run one after another from a single loop, so a task owns its state
// without locking.
type System struct {
	mbox    [numEndpoints]Mailbox
	shared  SharedBuffer
	ticks   atomic.Uint64
	dropped atomic.Uint32

	tasks []Task
}

// NewSystem creates a kernel instance.
func NewSystem() *System {
	return &System{}
}

// AddTask registers a task; tasks step in registration order.
func (s *System) AddTask(t Task) {
	if t == nil {
		return
	}
	s.tasks = append(s.tasks, t)
}

// Step runs every task once.
func (s *System) Step() {
	for _, t := range s.tasks {
		t.Step(s)
	}
}

// TickTo advances the 1ms tick counter to seq. It never moves backwards.
func (s *System) TickTo(seq uint64) {
	for {
		cur := s.ticks.Load()
		if seq <= cur {
			return
		}
		if s.ticks.CompareAndSwap(cur, seq) {
			return
		}
	}
}

// Ticks returns the current tick count (1ms per tick).
func (s *System) Ticks() uint64 {
	return s.ticks.Load()
}

// Shared returns the shared buffer.
func (s *System) Shared() *SharedBuffer {
	return &s.shared
}

// Send copies the payload into a fixed-size message and enqueues it.
//
// Delivery is best-effort: oversized payloads are truncated, and a full
// mailbox or unknown endpoint drops the message and returns false.
func (s *System) Send(from, to Endpoint, kind uint16, payload []byte) bool {
	if !to.valid() {
		s.dropped.Add(1)
		return false
	}
	var msg Message
	msg.From = from
	msg.To = to
	msg.Kind = kind
	if len(payload) > 0 {
		if len(payload) > MaxMessageBytes {
			payload = payload[:MaxMessageBytes]
		}
		msg.Len = uint16(len(payload))
		copy(msg.Data[:], payload)
	}
	if !s.mbox[to].TrySend(msg) {
		s.dropped.Add(1)
		return false
	}
	return true
}

// TryRecv dequeues one message for the endpoint without blocking.
func (s *System) TryRecv(to Endpoint) (Message, bool) {
	if !to.valid() {
		return Message{}, false
	}
	return s.mbox[to].TryRecv()
}

// Pending returns the number of messages queued for the endpoint.
func (s *System) Pending(to Endpoint) int {
	if !to.valid() {
		return 0
	}
	return s.mbox[to].Len()
}

// Dropped returns the number of messages lost to full mailboxes.
func (s *System) Dropped() uint32 {
	return s.dropped.Load()
}
