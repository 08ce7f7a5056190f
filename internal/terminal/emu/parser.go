package emu

import "strconv"

const (
	stateGround = iota
	stateEscape
	stateCSI
)

// parserState carries the byte-stream decoding state across Process
// calls. An incomplete control sequence simply leaves the state and
// the accumulated sequence text in place; the next call resumes there.
type parserState struct {
	state int
	seq   []byte
}

func (p *parserState) enterEscape() {
	p.state = stateEscape
	p.seq = p.seq[:0]
}

func (p *parserState) enterCSI() {
	p.state = stateCSI
	p.seq = append(p.seq[:0], '[')
}

func (p *parserState) ground() {
	p.state = stateGround
	p.seq = p.seq[:0]
}

// csiFinal identifies the final byte of a CSI sequence.
type csiFinal byte

const (
	csiSGR         csiFinal = 'm'
	csiCursorPos   csiFinal = 'H'
	csiCursorUp    csiFinal = 'A'
	csiCursorDown  csiFinal = 'B'
	csiCursorRight csiFinal = 'C'
	csiCursorLeft  csiFinal = 'D'
	csiEraseScreen csiFinal = 'J'
	csiEraseLine   csiFinal = 'K'
)

func isCSIFinal(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// csiParams extracts the ;-separated numeric parameters between the
// leading '[' and the final letter. An empty field parses as 0, and a
// field that fails numeric conversion (overflow) also falls back to 0
// rather than failing the sequence.
func csiParams(seq []byte) []int {
	var params []int
	var field []byte
	flush := func() {
		if len(field) == 0 {
			params = append(params, 0)
			return
		}
		n, err := strconv.Atoi(string(field))
		if err != nil {
			n = 0
		}
		params = append(params, n)
		field = field[:0]
	}
	for _, b := range seq[1:] {
		switch {
		case b >= '0' && b <= '9':
			field = append(field, b)
		case b == ';':
			flush()
		case isCSIFinal(b):
			flush()
			return params
		}
	}
	if len(field) > 0 {
		flush()
	}
	return params
}

// param returns params[idx], substituting def for a missing field or
// one at or below zero. CSI counts treat 0 as "use the default", so a
// literal 0 never means "move by nothing".
func param(params []int, idx, def int) int {
	if idx >= len(params) || params[idx] <= 0 {
		return def
	}
	return params[idx]
}
