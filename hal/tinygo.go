//go:build tinygo && baremetal

package hal

import (
	"machine"
)

// Board wiring (Raspberry Pi Pico).
var (
	lcdDataPins = []machine.Pin{machine.GP2, machine.GP3, machine.GP4, machine.GP5}
	lcdE        = machine.GP6
	lcdRS       = machine.GP7

	keypadRows = [4]machine.Pin{machine.GP10, machine.GP11, machine.GP12, machine.GP13}
	keypadCols = [4]machine.Pin{machine.GP14, machine.GP15, machine.GP16, machine.GP17}
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	lcd    CharDisplay
	kbd    Keyboard
	t      *tinyGoTime
}

// New returns the CalcSat board HAL: a 16x2 HD44780 LCD in 4-bit mode, a
// 4x4 matrix keypad and the on-board LED as shift indicator.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	var lcd CharDisplay
	if d, err := newLCD(16, 2); err != nil {
		logger.WriteLineString("hal: lcd: " + err.Error())
		lcd = NewCharGrid(16, 2)
	} else {
		lcd = d
	}

	return &tinyGoHAL{
		logger: logger,
		led:    &pinLED{pin: ledPin},
		lcd:    lcd,
		kbd:    newMatrixKeypad(),
		t:      newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) LED() LED         { return h.led }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{lcd: h.lcd} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }
func (h *tinyGoHAL) Time() Time       { return h.t }
