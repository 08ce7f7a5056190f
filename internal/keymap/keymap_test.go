package keymap

import (
	"bytes"
	"testing"
)

func TestTranslateCharacters(t *testing.T) {
	cases := []struct {
		name string
		ev   Event
		want string
	}{
		{"plain letter", Event{Code: CodeCharacter, Rune: 'a'}, "a"},
		{"shift letter", Event{Code: CodeCharacter, Rune: 'a', Shift: true}, "A"},
		{"shift digit", Event{Code: CodeCharacter, Rune: '1', Shift: true}, "!"},
		{"shift punctuation", Event{Code: CodeCharacter, Rune: ';', Shift: true}, ":"},
		{"shift unmapped", Event{Code: CodeCharacter, Rune: ' ', Shift: true}, " "},
		{"ctrl a", Event{Code: CodeCharacter, Rune: 'a', Ctrl: true}, "\x01"},
		{"ctrl z", Event{Code: CodeCharacter, Rune: 'z', Ctrl: true}, "\x1a"},
		{"ctrl c", Event{Code: CodeCharacter, Rune: 'c', Ctrl: true}, "\x03"},
		{"non-ascii", Event{Code: CodeCharacter, Rune: 'я'}, "я"},
		{"shift non-ascii", Event{Code: CodeCharacter, Rune: 'я', Shift: true}, "Я"},
		{"euro sign", Event{Code: CodeCharacter, Rune: '€'}, "€"},
		{"emoji", Event{Code: CodeCharacter, Rune: '😀'}, "😀"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Translate(c.ev); !bytes.Equal(got, []byte(c.want)) {
				t.Fatalf("Translate(%+v) = %q, want %q", c.ev, got, c.want)
			}
		})
	}
}

func TestTranslateNamedKeys(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{CodeEnter, "\r"},
		{CodeBackspace, "\b"},
		{CodeTab, "\t"},
		{CodeEscape, "\x1b"},
		{CodeUp, "\x1b[A"},
		{CodeDown, "\x1b[B"},
		{CodeRight, "\x1b[C"},
		{CodeLeft, "\x1b[D"},
		{CodeHome, "\x1b[H"},
		{CodeEnd, "\x1b[F"},
		{CodeInsert, "\x1b[2~"},
		{CodeDelete, "\x1b[3~"},
		{CodePageUp, "\x1b[5~"},
		{CodePageDown, "\x1b[6~"},
		{CodeF1, "\x1b[11~"},
		{CodeF5, "\x1b[15~"},
		{CodeF6, "\x1b[17~"},
		{CodeF10, "\x1b[21~"},
		{CodeF11, "\x1b[23~"},
		{CodeF12, "\x1b[24~"},
	}
	for _, c := range cases {
		if got := Translate(Event{Code: c.code}); !bytes.Equal(got, []byte(c.want)) {
			t.Fatalf("Translate(code %d) = %q, want %q", c.code, got, c.want)
		}
	}
}

func TestTranslateProducesNothing(t *testing.T) {
	events := []Event{
		{Code: CodeShift},
		{Code: CodeCtrl},
		{Code: CodeAlt},
		{Code: CodeCapsLock},
		{Code: CodeUnknown},
		{Code: CodeCharacter, Rune: 'я', Ctrl: true},
	}
	for _, ev := range events {
		if got := Translate(ev); len(got) != 0 {
			t.Fatalf("Translate(%+v) = %q, want empty", ev, got)
		}
	}
}

func TestCtrlTakesPrecedenceOverShift(t *testing.T) {
	got := Translate(Event{Code: CodeCharacter, Rune: 'c', Shift: true, Ctrl: true})
	if !bytes.Equal(got, []byte{0x03}) {
		t.Fatalf("got %q", got)
	}
}
