package hal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(r rune) KeyEvent        { return KeyEvent{Press: true, Rune: r} }
func pressCode(c KeyCode) KeyEvent { return KeyEvent{Press: true, Code: c} }

func TestDefaultKeymap(t *testing.T) {
	m := DefaultKeymap()
	cases := []struct {
		ev   KeyEvent
		want rune
	}{
		{press('7'), '7'},
		{press('A'), 'A'},
		{press('c'), 'C'},
		{press('+'), 'A'},
		{press('-'), 'B'},
		{press('.'), 'C'},
		{press('='), '*'},
		{press('*'), '*'},
		{press('#'), '#'},
		{pressCode(KeyEnter), '*'},
		{pressCode(KeyBackspace), '#'},
		{pressCode(KeyTab), 'D'},
	}
	for _, tc := range cases {
		got, ok := m.Translate(tc.ev)
		require.True(t, ok, "Translate(%+v)", tc.ev)
		assert.Equal(t, tc.want, got, "Translate(%+v)", tc.ev)
	}

	_, ok := m.Translate(press('x'))
	assert.False(t, ok)
	_, ok = m.Translate(KeyEvent{Rune: '1'})
	assert.False(t, ok, "releases are not translated")
	_, ok = m.Translate(pressCode(KeyEscape))
	assert.False(t, ok)
}

func TestParseKeymapOverrides(t *testing.T) {
	m, err := ParseKeymap(map[string]string{
		"x":      "*",
		"Escape": "#",
		"=":      "",
	})
	require.NoError(t, err)

	got, ok := m.Translate(press('x'))
	require.True(t, ok)
	assert.Equal(t, '*', got)

	got, ok = m.Translate(pressCode(KeyEscape))
	require.True(t, ok)
	assert.Equal(t, '#', got)

	_, ok = m.Translate(press('='))
	assert.False(t, ok, "empty value unbinds")

	got, ok = m.Translate(press('5'))
	require.True(t, ok)
	assert.Equal(t, '5', got)
}

func TestParseKeymapRejectsBadNames(t *testing.T) {
	for _, over := range []map[string]string{
		{"": "1"},
		{"pageup": "1"},
		{"x": "12"},
	} {
		_, err := ParseKeymap(over)
		assert.ErrorIs(t, err, ErrKeyName, "ParseKeymap(%v)", over)
	}
}

func TestKeymapSymbols(t *testing.T) {
	syms := DefaultKeymap().Symbols()
	assert.Len(t, syms, 16)
	assert.Contains(t, syms, '#')
	assert.Contains(t, syms, 'D')
}
