package hal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharGridWriteAndPresent(t *testing.T) {
	g := NewCharGrid(8, 2)
	g.SetCursor(0, 0)
	g.WriteString("M:7")
	g.SetCursor(0, 1)
	g.WriteString("12+345678901")

	assert.Equal(t, []string{"        ", "        "}, g.Lines(), "nothing visible before Present")

	assert.NoError(t, g.Present())
	assert.Equal(t, []string{"M:7     ", "12+34567"}, g.Lines())
	assert.Equal(t, uint64(1), g.Version())
}

func TestCharGridClampsCursor(t *testing.T) {
	g := NewCharGrid(4, 2)
	g.SetCursor(2, 9)
	g.WriteString("ab\x01")
	g.SetCursor(-3, 0)
	g.WriteString("z")
	_ = g.Present()
	assert.Equal(t, []string{"z   ", "  ab"}, g.Lines())

	g.Clear()
	g.WriteString("x")
	_ = g.Present()
	assert.Equal(t, []string{"x   ", "    "}, g.Lines())
}

func TestCharGridNonPrintable(t *testing.T) {
	g := NewCharGrid(3, 1)
	g.WriteString("a\tb")
	_ = g.Present()
	assert.Equal(t, []string{"a?b"}, g.Lines())
}
