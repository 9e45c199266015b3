package hal

import (
	"bufio"
	"io"
)

// ReadKeyEvents decodes a byte stream of typed characters into key presses
// until r fails. Line ends become Enter, DEL and BS become Backspace and TAB
// becomes Tab; other runes pass through for the keymap to translate.
func ReadKeyEvents(r io.Reader, emit func(KeyEvent)) error {
	br := bufio.NewReader(r)
	for {
		ch, _, err := br.ReadRune()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		switch ch {
		case '\n', '\r':
			emit(KeyEvent{Press: true, Code: KeyEnter})
		case 0x7f, '\b':
			emit(KeyEvent{Press: true, Code: KeyBackspace})
		case '\t':
			emit(KeyEvent{Press: true, Code: KeyTab})
		case 0x1b:
			emit(KeyEvent{Press: true, Code: KeyEscape})
		default:
			emit(KeyEvent{Press: true, Rune: ch})
		}
	}
}
