// Package keymap turns device-independent key events into the byte
// sequences a terminal sends for them. Front ends adapt their toolkit's
// key events into Event; Translate is the single canonical encoding.
package keymap

import (
	"unicode"
	"unicode/utf8"
)

// Code is a device-independent key code.
type Code int

const (
	CodeUnknown Code = iota
	CodeCharacter
	CodeEnter
	CodeBackspace
	CodeTab
	CodeEscape
	CodeUp
	CodeDown
	CodeRight
	CodeLeft
	CodeHome
	CodeEnd
	CodeInsert
	CodeDelete
	CodePageUp
	CodePageDown
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
	CodeShift
	CodeCtrl
	CodeAlt
	CodeCapsLock
)

// Event is one keystroke: a key code, the character it carries when
// Code is CodeCharacter, and the held modifiers.
type Event struct {
	Code  Code
	Rune  rune
	Shift bool
	Ctrl  bool
}

// fixed maps non-character keys to the literal bytes a terminal sends.
// Function keys use the CSI n~ encoding.
var fixed = map[Code]string{
	CodeEnter:     "\r",
	CodeBackspace: "\b",
	CodeTab:       "\t",
	CodeEscape:    "\x1b",
	CodeUp:        "\x1b[A",
	CodeDown:      "\x1b[B",
	CodeRight:     "\x1b[C",
	CodeLeft:      "\x1b[D",
	CodeHome:      "\x1b[H",
	CodeEnd:       "\x1b[F",
	CodeInsert:    "\x1b[2~",
	CodeDelete:    "\x1b[3~",
	CodePageUp:    "\x1b[5~",
	CodePageDown:  "\x1b[6~",
	CodeF1:        "\x1b[11~",
	CodeF2:        "\x1b[12~",
	CodeF3:        "\x1b[13~",
	CodeF4:        "\x1b[14~",
	CodeF5:        "\x1b[15~",
	CodeF6:        "\x1b[17~",
	CodeF7:        "\x1b[18~",
	CodeF8:        "\x1b[19~",
	CodeF9:        "\x1b[20~",
	CodeF10:       "\x1b[21~",
	CodeF11:       "\x1b[23~",
	CodeF12:       "\x1b[24~",
}

// shifted remaps US-layout punctuation under Shift.
var shifted = map[rune]rune{
	'1': '!', '2': '@', '3': '#', '4': '$', '5': '%',
	'6': '^', '7': '&', '8': '*', '9': '(', '0': ')',
	'-': '_', '=': '+', '[': '{', ']': '}', ';': ':',
	'\'': '"', ',': '<', '.': '>', '/': '?', '`': '~',
}

// Translate returns the bytes to write to the child for one keystroke.
// Pure-modifier keys and unknown codes translate to no bytes.
//
// With Ctrl held, ASCII codepoints are masked with 0x1F; this yields
// the usual control characters for letters and is applied to the other
// ASCII codepoints as well, matching common terminal behavior. Ctrl
// with a non-ASCII codepoint produces no bytes.
func Translate(ev Event) []byte {
	if ev.Code != CodeCharacter {
		return []byte(fixed[ev.Code])
	}
	switch {
	case ev.Ctrl:
		if ev.Rune <= 0x7f {
			return []byte{byte(ev.Rune) & 0x1f}
		}
		return nil
	case ev.Shift:
		if ev.Rune <= 0x7f {
			r := ev.Rune
			if r >= 'a' && r <= 'z' {
				r = unicode.ToUpper(r)
			} else if mapped, ok := shifted[r]; ok {
				r = mapped
			}
			return []byte{byte(r)}
		}
		return encodeRune(unicode.ToUpper(ev.Rune))
	default:
		return encodeRune(ev.Rune)
	}
}

func encodeRune(r rune) []byte {
	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, r)
	return buf[:n]
}
