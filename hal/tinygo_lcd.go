//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/hd44780"
)

// lcd buffers writes in a CharGrid and pushes whole rows to the HD44780 on
// Present.
type lcd struct {
	*CharGrid
	dev hd44780.Device
}

func newLCD(cols, rows int) (*lcd, error) {
	dev, err := hd44780.NewGPIO4Bit(lcdDataPins, lcdE, lcdRS, machine.NoPin)
	if err != nil {
		return nil, err
	}
	if err := dev.Configure(hd44780.Config{Width: int16(cols), Height: int16(rows)}); err != nil {
		return nil, err
	}
	dev.ClearDisplay()
	return &lcd{CharGrid: NewCharGrid(cols, rows), dev: dev}, nil
}

func (d *lcd) Present() error {
	if err := d.CharGrid.Present(); err != nil {
		return err
	}
	for row, line := range d.Lines() {
		d.dev.SetCursor(0, uint8(row))
		if _, err := d.dev.Write([]byte(line)); err != nil {
			return err
		}
		if err := d.dev.Display(); err != nil {
			return err
		}
	}
	return nil
}
