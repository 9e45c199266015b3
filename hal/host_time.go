//go:build !tinygo

package hal

import "time"

type hostTime struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step advances by the wall time elapsed since the previous call.
func (t *hostTime) step() {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		t.stepN(1)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	const tickDur = time.Millisecond
	ticks := uint64(t.acc / tickDur)
	if ticks == 0 {
		return
	}
	t.acc = t.acc % tickDur
	t.stepN(ticks)
}

// stepN advances by n ticks. Only the newest value matters to readers, so a
// full channel gives up its oldest tick.
func (t *hostTime) stepN(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
			continue
		default:
		}
		select {
		case <-t.ch:
		default:
		}
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
