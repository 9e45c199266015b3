package kernel

import "sync/atomic"

// MaxMessageBytes is the maximum payload size for IPC messages.
const MaxMessageBytes = 96

// Message is a fixed-size message envelope.
type Message struct {
	From Endpoint
	To   Endpoint
	Kind uint16
	Len  uint16
	Data [MaxMessageBytes]byte
}

// Payload returns the valid part of Data.
func (m *Message) Payload() []byte {
	n := int(m.Len)
	if n > MaxMessageBytes {
		n = MaxMessageBytes
	}
	return m.Data[:n]
}

const mailboxSlots = 8

// Mailbox is a fixed-size single-consumer queue. It never allocates and never
// blocks: a full mailbox rejects the message.
type Mailbox struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	slots [mailboxSlots]Message
}

// TrySend attempts to enqueue a message, returning false if the mailbox is full.
func (mb *Mailbox) TrySend(msg Message) bool {
	head := mb.head.Load()
	tail := mb.tail.Load()
	if head-tail >= mailboxSlots {
		return false
	}

	mb.slots[head%mailboxSlots] = msg
	mb.head.Store(head + 1)
	return true
}

// TryRecv attempts to dequeue one message, returning false if empty.
func (mb *Mailbox) TryRecv() (Message, bool) {
	tail := mb.tail.Load()
	head := mb.head.Load()
	if tail == head {
		return Message{}, false
	}

	msg := mb.slots[tail%mailboxSlots]
	mb.tail.Store(tail + 1)
	return msg, true
}

// Len returns the number of queued messages.
func (mb *Mailbox) Len() int {
	return int(mb.head.Load() - mb.tail.Load())
}
