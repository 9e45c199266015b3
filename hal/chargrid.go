package hal

import "sync"

// CharGrid is an in-memory character display. Host backends render it;
// tests read it back with Lines.
type CharGrid struct {
	mu      sync.Mutex
	cols    int
	rows    int
	cells   []byte
	col     int
	row     int
	version uint64
	shown   []byte
}

// NewCharGrid returns a blank grid.
func NewCharGrid(cols, rows int) *CharGrid {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	g := &CharGrid{
		cols:  cols,
		rows:  rows,
		cells: make([]byte, cols*rows),
		shown: make([]byte, cols*rows),
	}
	fill(g.cells, ' ')
	fill(g.shown, ' ')
	return g
}

func (g *CharGrid) Size() (cols, rows int) { return g.cols, g.rows }

func (g *CharGrid) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	fill(g.cells, ' ')
	g.col, g.row = 0, 0
}

func (g *CharGrid) SetCursor(col, row int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.col = clampInt(col, 0, g.cols)
	g.row = clampInt(row, 0, g.rows-1)
}

// WriteString writes at the cursor. Bytes outside printable ASCII show as '?'.
func (g *CharGrid) WriteString(s string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := 0; i < len(s) && g.col < g.cols; i++ {
		b := s[i]
		if b < 0x20 || b > 0x7e {
			b = '?'
		}
		g.cells[g.row*g.cols+g.col] = b
		g.col++
	}
}

// Present latches the written cells as the visible content.
func (g *CharGrid) Present() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	copy(g.shown, g.cells)
	g.version++
	return nil
}

// Lines returns the visible rows, trailing blanks kept.
func (g *CharGrid) Lines() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, g.rows)
	for r := range out {
		out[r] = string(g.shown[r*g.cols : (r+1)*g.cols])
	}
	return out
}

// Version counts Present calls.
func (g *CharGrid) Version() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.version
}

func fill(b []byte, v byte) {
	for i := range b {
		b[i] = v
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
