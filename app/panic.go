package app

import (
	"fmt"
	"strings"

	"calcsat/hal"
)

func showPanic(h hal.HAL, value any, stack []byte) {
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("CalcSat Panic: %v", value))
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	lcd := disp.Chars()
	if lcd == nil {
		return
	}
	cols, rows := lcd.Size()
	lines := []string{"Panic:", fmt.Sprint(value)}
	lcd.Clear()
	for row := 0; row < rows && row < len(lines); row++ {
		text := lines[row]
		if len(text) > cols {
			text = text[:cols]
		}
		lcd.SetCursor(0, row)
		lcd.WriteString(text)
	}
	_ = lcd.Present()
}
