package keymap

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestFromTcell(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want Event
	}{
		{
			"rune",
			tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone),
			Event{Code: CodeCharacter, Rune: 'a'},
		},
		{
			"shifted rune",
			tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModShift),
			Event{Code: CodeCharacter, Rune: 'a', Shift: true},
		},
		{
			"enter",
			tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
			Event{Code: CodeEnter},
		},
		{
			"backspace2",
			tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone),
			Event{Code: CodeBackspace},
		},
		{
			"arrow up",
			tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone),
			Event{Code: CodeUp},
		},
		{
			"page down",
			tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone),
			Event{Code: CodePageDown},
		},
		{
			"f5",
			tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone),
			Event{Code: CodeF5},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FromTcell(c.ev); got != c.want {
				t.Fatalf("FromTcell = %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestFromTcellCtrlLetterFolding(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	got := FromTcell(ev)
	if got.Code != CodeCharacter || got.Rune != 'c' || !got.Ctrl {
		t.Fatalf("FromTcell = %+v", got)
	}
	if b := Translate(got); !bytes.Equal(b, []byte{0x03}) {
		t.Fatalf("Translate = %q", b)
	}
}

func TestFromTcellThroughTranslate(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)
	if b := Translate(FromTcell(ev)); !bytes.Equal(b, []byte("\x1b[D")) {
		t.Fatalf("Translate = %q", b)
	}
}
