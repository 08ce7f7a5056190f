package emu

import (
	"sort"

	"pkt.systems/termling/internal/terminal"
)

// The two 8-entry palettes indexed by SGR parameters 30-37/90-97 (fg)
// and 40-47/100-107 (bg). An SGR parameter of 1 switches the active
// palette to the bright one for the remaining parameters of the same
// sequence.
var (
	normalColors = [8]terminal.Color{
		{R: 0, G: 0, B: 0, A: 255},       // black
		{R: 255, G: 0, B: 0, A: 255},     // red
		{R: 0, G: 255, B: 0, A: 255},     // green
		{R: 255, G: 255, B: 0, A: 255},   // yellow
		{R: 0, G: 0, B: 255, A: 255},     // blue
		{R: 255, G: 0, B: 255, A: 255},   // magenta
		{R: 0, G: 255, B: 255, A: 255},   // cyan
		{R: 255, G: 255, B: 255, A: 255}, // white
	}
	brightColors = [8]terminal.Color{
		{R: 85, G: 85, B: 85, A: 255},
		{R: 255, G: 85, B: 85, A: 255},
		{R: 85, G: 255, B: 85, A: 255},
		{R: 255, G: 255, B: 85, A: 255},
		{R: 85, G: 85, B: 255, A: 255},
		{R: 255, G: 85, B: 255, A: 255},
		{R: 85, G: 255, B: 255, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	}
)

// Emulator decodes a terminal byte stream into screen mutations. It is
// the sole owner of the cross-call parse state; feed it successive
// chunks of the stream and it reports which rows each chunk touched.
type Emulator struct {
	scr    screen
	parser parserState
}

var _ terminal.Emulator = (*Emulator)(nil)

// New constructs an emulator with the given grid size.
func New(cols, rows int) *Emulator {
	if cols <= 0 {
		cols = 80
	}
	if rows <= 0 {
		rows = 24
	}
	return &Emulator{scr: newScreen(cols, rows)}
}

// Size returns the grid dimensions.
func (e *Emulator) Size() (cols, rows int) {
	return e.scr.cols, e.scr.rows
}

// Cursor returns the current cursor position.
func (e *Emulator) Cursor() terminal.Cursor {
	return e.scr.cursor
}

// Snapshot copies the grid and cursor for a renderer to pull.
func (e *Emulator) Snapshot() terminal.Snapshot {
	cells := make([]terminal.Cell, len(e.scr.cells))
	copy(cells, e.scr.cells)
	return terminal.Snapshot{
		Cols:   e.scr.cols,
		Rows:   e.scr.rows,
		Cursor: e.scr.cursor,
		Cells:  cells,
	}
}

// Resize changes the grid size, preserving the overlapping region.
func (e *Emulator) Resize(cols, rows int) {
	e.scr.resize(cols, rows)
}

// Process consumes one chunk of the stream and returns the sorted,
// deduplicated set of rows it mutated. An escape or CSI sequence cut
// off at the end of the chunk is resumed by the next call.
func (e *Emulator) Process(p []byte) []int {
	d := dirtySet{}
	i := 0
	for i < len(p) {
		switch e.parser.state {
		case stateGround:
			i += e.handleGround(p[i:], &d)
		case stateEscape:
			e.handleEscape(p[i], &d)
			i++
		case stateCSI:
			e.handleCSIByte(p[i], &d)
			i++
		default:
			e.parser.ground()
		}
	}
	return d.sorted()
}

// handleGround interprets bytes outside escape sequences and returns
// how many bytes it consumed.
func (e *Emulator) handleGround(p []byte, d *dirtySet) int {
	switch b := p[0]; b {
	case 0x1b: // ESC
		e.parser.enterEscape()
		return 1
	case '\n':
		e.lineFeed(d)
		return 1
	case '\r':
		e.scr.cursor.Col = 0
		if len(p) > 1 && p[1] == '\n' {
			e.lineFeed(d)
			return 2
		}
		d.add([]int{e.scr.cursor.Row})
		return 1
	case '\b':
		if e.scr.cursor.Col > 0 {
			e.scr.cursor.Col--
			d.add(e.scr.write(e.scr.cursor.Row, e.scr.cursor.Col, ' ', e.scr.attr))
		}
		return 1
	case '\t':
		// Next multiple of 8, clamped to the last column.
		e.scr.cursor.Col = clamp((e.scr.cursor.Col+8)/8*8, 0, e.scr.cols-1)
		return 1
	case 0x07: // BEL
		return 1
	default:
		return e.printScalar(p, d)
	}
}

// printScalar decodes one UTF-8 scalar at the head of p and writes it
// at the cursor. A lead byte with no valid prefix, or one whose
// declared length runs past the end of the chunk, is skipped as a
// single byte with no other effect.
func (e *Emulator) printScalar(p []byte, d *dirtySet) int {
	r, size := decodeScalar(p)
	if size == 0 {
		return 1
	}
	d.add(e.scr.write(e.scr.cursor.Row, e.scr.cursor.Col, r, e.scr.attr))
	e.scr.cursor.Col++
	if e.scr.cursor.Col >= e.scr.cols {
		e.scr.cursor.Col = 0
		e.scr.cursor.Row++
		if e.scr.cursor.Row >= e.scr.rows {
			d.add(e.scr.scrollUp())
		}
	}
	return size
}

// decodeScalar decodes a UTF-8 sequence per the length-prefix rules,
// without crossing the end of the chunk. It returns size 0 when the
// lead byte is invalid or the declared length is unavailable.
func decodeScalar(p []byte) (rune, int) {
	b := p[0]
	switch {
	case b&0x80 == 0:
		return rune(b), 1
	case b&0xe0 == 0xc0 && len(p) >= 2:
		return rune(b&0x1f)<<6 | rune(p[1]&0x3f), 2
	case b&0xf0 == 0xe0 && len(p) >= 3:
		return rune(b&0x0f)<<12 | rune(p[1]&0x3f)<<6 | rune(p[2]&0x3f), 3
	case b&0xf8 == 0xf0 && len(p) >= 4:
		return rune(b&0x07)<<18 | rune(p[1]&0x3f)<<12 | rune(p[2]&0x3f)<<6 | rune(p[3]&0x3f), 4
	}
	return 0, 0
}

// lineFeed advances to the start of the next row, scrolling when the
// cursor falls off the bottom.
func (e *Emulator) lineFeed(d *dirtySet) {
	e.scr.cursor.Col = 0
	e.scr.cursor.Row++
	if e.scr.cursor.Row >= e.scr.rows {
		d.add(e.scr.scrollUp())
		return
	}
	d.add([]int{e.scr.cursor.Row})
}

func (e *Emulator) handleEscape(b byte, d *dirtySet) {
	switch b {
	case '[':
		e.parser.enterCSI()
	case 'c':
		d.add(e.scr.reset())
		e.parser.ground()
	default:
		// Unrecognized escape, discard.
		e.parser.ground()
	}
}

func (e *Emulator) handleCSIByte(b byte, d *dirtySet) {
	e.parser.seq = append(e.parser.seq, b)
	if !isCSIFinal(b) {
		return
	}
	e.dispatchCSI(csiFinal(b), csiParams(e.parser.seq), d)
	e.parser.ground()
}

func (e *Emulator) dispatchCSI(final csiFinal, params []int, d *dirtySet) {
	switch final {
	case csiSGR:
		e.selectGraphicRendition(params)
	case csiCursorPos:
		e.scr.moveCursorTo(param(params, 0, 1)-1, param(params, 1, 1)-1)
		d.add([]int{e.scr.cursor.Row})
	case csiCursorUp:
		e.scr.moveCursorBy(-param(params, 0, 1), 0)
		d.add([]int{e.scr.cursor.Row})
	case csiCursorDown:
		e.scr.moveCursorBy(param(params, 0, 1), 0)
		d.add([]int{e.scr.cursor.Row})
	case csiCursorRight:
		e.scr.moveCursorBy(0, param(params, 0, 1))
		d.add([]int{e.scr.cursor.Row})
	case csiCursorLeft:
		e.scr.moveCursorBy(0, -param(params, 0, 1))
		d.add([]int{e.scr.cursor.Row})
	case csiEraseScreen:
		switch mode(params) {
		case 0:
			d.add(e.scr.erase(eraseToScreenEnd, e.scr.attr))
		case 1:
			d.add(e.scr.erase(eraseToScreenStart, e.scr.attr))
		case 2:
			d.add(e.scr.erase(eraseScreen, e.scr.attr))
		}
	case csiEraseLine:
		switch mode(params) {
		case 0:
			d.add(e.scr.erase(eraseToLineEnd, e.scr.attr))
		case 1:
			d.add(e.scr.erase(eraseToLineStart, e.scr.attr))
		case 2:
			d.add(e.scr.erase(eraseLine, e.scr.attr))
		}
	default:
		// Unsupported final byte, ignore.
	}
}

func mode(params []int) int {
	if len(params) == 0 {
		return 0
	}
	return params[0]
}

func (e *Emulator) selectGraphicRendition(params []int) {
	table := &normalColors
	for _, p := range params {
		switch {
		case p == 0:
			e.scr.attr = terminal.DefaultAttr
			table = &normalColors
		case p == 1:
			table = &brightColors
		case p >= 30 && p <= 37, p >= 90 && p <= 97:
			e.scr.attr.FG = table[p%10]
		case p >= 40 && p <= 47, p >= 100 && p <= 107:
			e.scr.attr.BG = table[p%10]
		}
	}
}

// dirtySet collects the rows touched by one Process call.
type dirtySet struct {
	rows map[int]struct{}
}

func (d *dirtySet) add(rows []int) {
	if len(rows) == 0 {
		return
	}
	if d.rows == nil {
		d.rows = make(map[int]struct{})
	}
	for _, row := range rows {
		d.rows[row] = struct{}{}
	}
}

func (d *dirtySet) sorted() []int {
	if len(d.rows) == 0 {
		return nil
	}
	out := make([]int, 0, len(d.rows))
	for row := range d.rows {
		out = append(out, row)
	}
	sort.Ints(out)
	return out
}
