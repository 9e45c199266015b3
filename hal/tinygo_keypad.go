//go:build tinygo && baremetal

package hal

import (
	"time"

	"tinygo.org/x/drivers/keypad4x4"
)

// keypadLayout maps the driver's key index (row*4 + col) to keypad symbols.
const keypadLayout = "123A456B789C*0#D"

const keypadNone = 255

const keypadScan = 10 * time.Millisecond

type matrixKeypad struct {
	ch chan KeyEvent
}

func newMatrixKeypad() *matrixKeypad {
	dev := keypad4x4.NewDevice(
		keypadRows[3], keypadRows[2], keypadRows[1], keypadRows[0],
		keypadCols[3], keypadCols[2], keypadCols[1], keypadCols[0],
	)
	dev.Configure()

	k := &matrixKeypad{ch: make(chan KeyEvent, 16)}
	go k.scan(&dev)
	return k
}

func (k *matrixKeypad) Events() <-chan KeyEvent { return k.ch }

func (k *matrixKeypad) scan(dev *keypad4x4.Device) {
	var edge EdgeDetector
	for {
		var sym byte
		if idx := dev.GetKey(); idx != keypadNone && int(idx) < len(keypadLayout) {
			sym = keypadLayout[idx]
		}
		if key, ok := edge.Sample(sym); ok {
			select {
			case k.ch <- KeyEvent{Press: true, Rune: rune(key)}:
			default:
			}
		}
		time.Sleep(keypadScan)
	}
}
