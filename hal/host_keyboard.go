//go:build !tinygo

package hal

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

// inject queues an event, dropping it when the queue is full.
func (k *hostKeyboard) inject(ev KeyEvent) bool {
	select {
	case k.ch <- ev:
		return true
	default:
		return false
	}
}
