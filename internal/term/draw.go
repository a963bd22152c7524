package term

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/kaleidoscope/internal/pattern"
)

// Upper half block: foreground paints the top pixel, background the bottom.
const halfBlock = '▀'

var statusStyle = tcell.StyleDefault.
	Foreground(tcell.NewRGBColor(230, 230, 240)).
	Background(tcell.NewRGBColor(20, 22, 32))

func rgbColor(c pattern.RGB) tcell.Color {
	r, g, b := c.Quantize()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// cellStyle colors terminal cell (x, row) from pixel rows 2*row and 2*row+1.
func cellStyle(buf *pattern.ColorBuffer, x, row int) tcell.Style {
	top := buf.At(x, 2*row)
	bottom := buf.At(x, 2*row+1)
	return tcell.StyleDefault.Foreground(rgbColor(top)).Background(rgbColor(bottom))
}

// draw evaluates one frame over every row but the last, which holds the
// status line.
func (a *App) draw(ctx context.Context) error {
	rows := a.height - 1
	if a.width > 0 && rows > 0 {
		buf, err := a.eval.EvaluateInto(ctx, a.ctl.Store.Params(), a.ctl.Frame(a.width, 2*rows))
		if err != nil {
			return err
		}
		for row := 0; row < rows; row++ {
			for x := 0; x < a.width; x++ {
				a.screen.SetContent(x, row, halfBlock, nil, cellStyle(buf, x, row))
			}
		}
	}
	if a.height > 0 {
		a.drawStatus(a.height - 1)
	}
	a.screen.Show()
	return nil
}

func (a *App) statusLine() string {
	s := a.ctl.Status()
	if a.ctl.Panel.Visible {
		slider := a.ctl.Panel.Current()
		s += fmt.Sprintf("  | %s %.2f", slider.Label, slider.Get(a.ctl.Store.Params()))
	}
	return s
}

func (a *App) drawStatus(y int) {
	line := []rune(a.statusLine())
	for x := 0; x < a.width; x++ {
		r := ' '
		if x < len(line) {
			r = line[x]
		}
		a.screen.SetContent(x, y, r, nil, statusStyle)
	}
}
