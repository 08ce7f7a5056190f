package keymap

import "github.com/gdamore/tcell/v2"

// FromTcell adapts a tcell key event into a device-independent Event.
// Ctrl-letter chords arrive from tcell as dedicated key codes; they are
// folded back into character events so Translate stays the single
// encoding path.
func FromTcell(ev *tcell.EventKey) Event {
	mods := ev.Modifiers()
	out := Event{
		Shift: mods&tcell.ModShift != 0,
		Ctrl:  mods&tcell.ModCtrl != 0,
	}
	switch key := ev.Key(); key {
	case tcell.KeyRune:
		out.Code = CodeCharacter
		out.Rune = ev.Rune()
	case tcell.KeyEnter:
		out.Code = CodeEnter
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		out.Code = CodeBackspace
	case tcell.KeyTab:
		out.Code = CodeTab
	case tcell.KeyEsc:
		out.Code = CodeEscape
	case tcell.KeyUp:
		out.Code = CodeUp
	case tcell.KeyDown:
		out.Code = CodeDown
	case tcell.KeyRight:
		out.Code = CodeRight
	case tcell.KeyLeft:
		out.Code = CodeLeft
	case tcell.KeyHome:
		out.Code = CodeHome
	case tcell.KeyEnd:
		out.Code = CodeEnd
	case tcell.KeyInsert:
		out.Code = CodeInsert
	case tcell.KeyDelete:
		out.Code = CodeDelete
	case tcell.KeyPgUp:
		out.Code = CodePageUp
	case tcell.KeyPgDn:
		out.Code = CodePageDown
	case tcell.KeyF1:
		out.Code = CodeF1
	case tcell.KeyF2:
		out.Code = CodeF2
	case tcell.KeyF3:
		out.Code = CodeF3
	case tcell.KeyF4:
		out.Code = CodeF4
	case tcell.KeyF5:
		out.Code = CodeF5
	case tcell.KeyF6:
		out.Code = CodeF6
	case tcell.KeyF7:
		out.Code = CodeF7
	case tcell.KeyF8:
		out.Code = CodeF8
	case tcell.KeyF9:
		out.Code = CodeF9
	case tcell.KeyF10:
		out.Code = CodeF10
	case tcell.KeyF11:
		out.Code = CodeF11
	case tcell.KeyF12:
		out.Code = CodeF12
	default:
		if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
			out.Code = CodeCharacter
			out.Rune = 'a' + rune(key-tcell.KeyCtrlA)
			out.Ctrl = true
		}
	}
	return out
}
