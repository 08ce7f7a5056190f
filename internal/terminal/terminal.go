package terminal

import "fmt"

// Emulator provides access to an authoritative terminal emulator.
type Emulator interface {
	Process(p []byte) []int
	Resize(cols, rows int)
	Snapshot() Snapshot
}

// Color is one RGBA color channelled 0-255.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// Attr holds the foreground and background colors of a cell. Attr is
// comparable; renderers rely on exact equality to group runs of cells
// with identical attributes into spans.
type Attr struct {
	FG Color
	BG Color
}

// DefaultAttr is the light-on-dark attribute a terminal starts with.
var DefaultAttr = Attr{
	FG: Color{R: 255, G: 255, B: 255, A: 255},
	BG: Color{R: 0, G: 0, B: 0, A: 255},
}

// Cell is a single character cell: one Unicode scalar plus its attributes.
type Cell struct {
	Rune rune
	Attr Attr
}

// BlankCell returns an empty cell carrying the given attributes.
func BlankCell(attr Attr) Cell {
	return Cell{Rune: ' ', Attr: attr}
}

// Cursor is a grid position, always within [0, rows-1] x [0, cols-1].
type Cursor struct {
	Row int
	Col int
}

// Snapshot is a read-only copy of the grid and cursor, row-major.
// Renderers pull a Snapshot once per frame and repaint only the rows
// named in the dirty set returned by the preceding Process call.
type Snapshot struct {
	Cols   int
	Rows   int
	Cursor Cursor
	Cells  []Cell
}

// CellAt returns the cell at (row, col).
func (s Snapshot) CellAt(row, col int) (Cell, error) {
	if row < 0 || col < 0 || row >= s.Rows || col >= s.Cols {
		return Cell{}, fmt.Errorf("cell out of range")
	}
	return s.Cells[row*s.Cols+col], nil
}
