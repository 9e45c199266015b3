//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz         int
	Ticks      uint64
	StepBudget int

	// Keys is typed one symbol every KeyEvery ticks, starting at the first.
	Keys     string
	KeyEvery int

	// Unpaced runs ticks back to back instead of at Hz. Simulated time still
	// advances 1000/Hz ms per tick.
	Unpaced bool

	// OnFrame receives the LCD rows after every tick that presented a frame.
	OnFrame func(lines []string)
}

// settleMs lets the longest message page expire before a scripted run ends.
const settleMs = 2500

// RunHeadless runs the OS without opening a window.
//
// With Ticks == 0 and a key script the run ends once the script is typed and
// the display settled; with neither it runs until ctx is done.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, host HostConfig, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Hz > 1000 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	if cfg.StepBudget <= 0 {
		cfg.StepBudget = 1
	}
	if cfg.KeyEvery <= 0 {
		cfg.KeyEvery = 1
	}
	msPerTick := uint64(1000 / cfg.Hz)
	if cfg.Ticks == 0 && cfg.Keys != "" {
		cfg.Ticks = uint64(len(cfg.Keys)*cfg.KeyEvery) + settleMs/msPerTick + 1
	}

	h := newHost(host)
	step := newApp(h)

	var pace <-chan time.Time
	if !cfg.Unpaced {
		t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
		defer t.Stop()
		pace = t.C
	}

	keys := []rune(cfg.Keys)
	var shown uint64
	var tick uint64
	for {
		if pace != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-pace:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if len(keys) > 0 && tick%uint64(cfg.KeyEvery) == 0 {
			h.kbd.inject(KeyEvent{Press: true, Rune: keys[0]})
			keys = keys[1:]
		}

		h.t.stepN(msPerTick)
		if step != nil {
			for i := 0; i < cfg.StepBudget; i++ {
				if err := step(); err != nil {
					return err
				}
			}
		}

		if v := h.lcd.Version(); v != shown {
			shown = v
			if cfg.OnFrame != nil {
				cfg.OnFrame(h.lcd.Lines())
			}
		}

		tick++
		if cfg.Ticks > 0 && tick >= cfg.Ticks {
			return nil
		}
	}
}
