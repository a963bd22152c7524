package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/kaleidoscope/internal/control"
	"github.com/iburimskiy/kaleidoscope/internal/pattern"
)

func keyCommand(ev *tcell.EventKey) control.Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return control.Do(control.ActionQuit)
	case tcell.KeyUp:
		return control.Do(control.ActionSelectPrev)
	case tcell.KeyDown:
		return control.Do(control.ActionSelectNext)
	case tcell.KeyLeft:
		return control.Do(control.ActionDecrease)
	case tcell.KeyRight:
		return control.Do(control.ActionIncrease)
	case tcell.KeyTab:
		return control.Do(control.ActionTogglePanel)
	case tcell.KeyRune:
	default:
		return control.Do(control.ActionNone)
	}

	switch r := ev.Rune(); r {
	case 'q', 'Q':
		return control.Do(control.ActionQuit)
	case ' ':
		return control.Do(control.ActionTogglePause)
	case '+', '=':
		return control.Do(control.ActionSpeedUp)
	case '-', '_':
		return control.Do(control.ActionSpeedDown)
	default:
		if r >= '1' && r < '1'+rune(pattern.PresetCount) {
			return control.PresetCommand(pattern.PresetID(r - '1'))
		}
	}
	return control.Do(control.ActionNone)
}
