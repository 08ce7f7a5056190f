package emu

import "pkt.systems/termling/internal/terminal"

// eraseRange selects the cells an erase operation addresses.
type eraseRange int

const (
	eraseToLineEnd eraseRange = iota
	eraseToLineStart
	eraseLine
	eraseToScreenEnd
	eraseToScreenStart
	eraseScreen
)

// screen owns the cell grid, the cursor and the current drawing
// attribute. Every mutating operation returns the rows it dirtied so
// the caller can merge them into the dirty set of the current batch.
type screen struct {
	cols int
	rows int

	cells  []terminal.Cell
	cursor terminal.Cursor
	attr   terminal.Attr
}

func newScreen(cols, rows int) screen {
	s := screen{
		cols: cols,
		rows: rows,
		attr: terminal.DefaultAttr,
	}
	s.cells = make([]terminal.Cell, cols*rows)
	for i := range s.cells {
		s.cells[i] = terminal.BlankCell(s.attr)
	}
	return s
}

func (s *screen) index(row, col int) int {
	return row*s.cols + col
}

func (s *screen) inBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < s.rows && col < s.cols
}

// write overwrites one cell. Out of bounds is a no-op.
func (s *screen) write(row, col int, r rune, attr terminal.Attr) []int {
	if !s.inBounds(row, col) {
		return nil
	}
	s.cells[s.index(row, col)] = terminal.Cell{Rune: r, Attr: attr}
	return []int{row}
}

func (s *screen) moveCursorTo(row, col int) {
	s.cursor.Row = clamp(row, 0, s.rows-1)
	s.cursor.Col = clamp(col, 0, s.cols-1)
}

func (s *screen) moveCursorBy(dRow, dCol int) {
	s.moveCursorTo(s.cursor.Row+dRow, s.cursor.Col+dCol)
}

// erase fills the addressed range with blank cells carrying attr.
// Erasing the whole screen also homes the cursor.
func (s *screen) erase(r eraseRange, attr terminal.Attr) []int {
	fill := terminal.BlankCell(attr)
	row := s.cursor.Row
	col := s.cursor.Col
	switch r {
	case eraseToLineEnd:
		s.fillRow(row, col, s.cols-1, fill)
		return []int{row}
	case eraseToLineStart:
		s.fillRow(row, 0, col, fill)
		return []int{row}
	case eraseLine:
		s.fillRow(row, 0, s.cols-1, fill)
		return []int{row}
	case eraseToScreenEnd:
		s.fillRow(row, col, s.cols-1, fill)
		for y := row + 1; y < s.rows; y++ {
			s.fillRow(y, 0, s.cols-1, fill)
		}
		return rowRange(row, s.rows-1)
	case eraseToScreenStart:
		for y := 0; y < row; y++ {
			s.fillRow(y, 0, s.cols-1, fill)
		}
		s.fillRow(row, 0, col, fill)
		return rowRange(0, row)
	case eraseScreen:
		for y := 0; y < s.rows; y++ {
			s.fillRow(y, 0, s.cols-1, fill)
		}
		s.cursor = terminal.Cursor{}
		return rowRange(0, s.rows-1)
	}
	return nil
}

func (s *screen) fillRow(row, col0, col1 int, fill terminal.Cell) {
	if row < 0 || row >= s.rows {
		return
	}
	if col0 < 0 {
		col0 = 0
	}
	if col1 >= s.cols {
		col1 = s.cols - 1
	}
	for col := col0; col <= col1; col++ {
		s.cells[s.index(row, col)] = fill
	}
}

// scrollUp drops row 0, appends a blank row filled with the current
// attribute and parks the cursor on the last row. Every row shifted,
// so every row is dirty.
func (s *screen) scrollUp() []int {
	copy(s.cells, s.cells[s.cols:])
	fill := terminal.BlankCell(s.attr)
	for col := 0; col < s.cols; col++ {
		s.cells[s.index(s.rows-1, col)] = fill
	}
	s.cursor.Row = s.rows - 1
	return rowRange(0, s.rows-1)
}

// resize reallocates the grid, keeping the overlapping top-left
// submatrix and filling newly exposed cells with blank cells in the
// current attribute. The cursor is re-clamped into the new bounds.
func (s *screen) resize(cols, rows int) []int {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	next := make([]terminal.Cell, cols*rows)
	fill := terminal.BlankCell(s.attr)
	for i := range next {
		next[i] = fill
	}
	minRows := min(rows, s.rows)
	minCols := min(cols, s.cols)
	for row := 0; row < minRows; row++ {
		copy(next[row*cols:row*cols+minCols], s.cells[row*s.cols:row*s.cols+minCols])
	}
	s.cells = next
	s.cols = cols
	s.rows = rows
	s.cursor.Row = clamp(s.cursor.Row, 0, rows-1)
	s.cursor.Col = clamp(s.cursor.Col, 0, cols-1)
	return rowRange(0, rows-1)
}

// reset restores the default attribute and erases the whole screen.
func (s *screen) reset() []int {
	s.attr = terminal.DefaultAttr
	return s.erase(eraseScreen, s.attr)
}

func rowRange(from, to int) []int {
	if to < from {
		return nil
	}
	rows := make([]int, 0, to-from+1)
	for row := from; row <= to; row++ {
		rows = append(rows, row)
	}
	return rows
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
