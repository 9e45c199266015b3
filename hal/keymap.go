package hal

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrKeyName is returned for a keymap entry that names no key.
var ErrKeyName = errors.New("unknown key name")

var keyCodeNames = map[string]KeyCode{
	"enter":     KeyEnter,
	"escape":    KeyEscape,
	"backspace": KeyBackspace,
	"tab":       KeyTab,
	"delete":    KeyDelete,
}

// Keymap translates host key presses into keypad symbols.
type Keymap struct {
	runes map[rune]rune
	codes map[KeyCode]rune
}

// DefaultKeymap binds the keypad symbols to themselves plus a few host
// conveniences: + - . = for A B C *, Enter for *, Backspace for #, Tab for the
// shift key D.
func DefaultKeymap() *Keymap {
	m := &Keymap{
		runes: map[rune]rune{
			'+': 'A',
			'-': 'B',
			'.': 'C',
			'=': '*',
			'*': '*',
			'#': '#',
		},
		codes: map[KeyCode]rune{
			KeyEnter:     '*',
			KeyBackspace: '#',
			KeyDelete:    '#',
			KeyTab:       'D',
		},
	}
	for r := '0'; r <= '9'; r++ {
		m.runes[r] = r
	}
	for r := 'A'; r <= 'D'; r++ {
		m.runes[r] = r
		m.runes[r+'a'-'A'] = r
	}
	return m
}

// ParseKeymap applies overrides on top of DefaultKeymap. A key is either a
// single character or one of enter, escape, backspace, tab, delete. An empty
// value unbinds the key.
func ParseKeymap(overrides map[string]string) (*Keymap, error) {
	m := DefaultKeymap()
	for name, sym := range overrides {
		var to rune
		if sym != "" {
			r, size := utf8.DecodeRuneInString(sym)
			if size != len(sym) || r == utf8.RuneError {
				return nil, fmt.Errorf("keymap %q: symbol %q: %w", name, sym, ErrKeyName)
			}
			to = r
		}

		if code, ok := keyCodeNames[strings.ToLower(name)]; ok {
			m.bindCode(code, to)
			continue
		}
		r, size := utf8.DecodeRuneInString(name)
		if name == "" || size != len(name) || r == utf8.RuneError {
			return nil, fmt.Errorf("keymap %q: %w", name, ErrKeyName)
		}
		m.bindRune(r, to)
	}
	return m, nil
}

func (m *Keymap) bindRune(r, to rune) {
	if to == 0 {
		delete(m.runes, r)
		return
	}
	m.runes[r] = to
}

func (m *Keymap) bindCode(code KeyCode, to rune) {
	if to == 0 {
		delete(m.codes, code)
		return
	}
	m.codes[code] = to
}

// Translate returns the keypad symbol for a key press. Releases and unbound
// keys report false.
func (m *Keymap) Translate(ev KeyEvent) (rune, bool) {
	if m == nil || !ev.Press {
		return 0, false
	}
	if ev.Rune != 0 {
		r, ok := m.runes[ev.Rune]
		return r, ok
	}
	r, ok := m.codes[ev.Code]
	return r, ok
}

// Symbols returns every keypad symbol the map can produce.
func (m *Keymap) Symbols() []rune {
	seen := make(map[rune]bool)
	var out []rune
	add := func(r rune) {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	for _, r := range m.runes {
		add(r)
	}
	for _, r := range m.codes {
		add(r)
	}
	return out
}
