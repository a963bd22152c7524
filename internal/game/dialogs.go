package game

import (
	"image/color"

	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
	"golang.design/x/clipboard"

	"github.com/iburimskiy/kaleidoscope/internal/config"
	"github.com/iburimskiy/kaleidoscope/internal/pattern"
)

func fromColor(c color.Color) pattern.RGB {
	r, g, b, _ := c.RGBA()
	return pattern.RGB{R: float64(r) / 0xffff, G: float64(g) / 0xffff, B: float64(b) / 0xffff}
}

// pickColor opens a color dialog for gradient color i (0 or 1) without
// blocking the game loop. The result goes straight into the store.
func (g *Game) pickColor(i int) {
	if !g.dialogOpen.CompareAndSwap(false, true) {
		return
	}
	current := g.ctl.Store.Params()
	initial := [2]pattern.RGB{current.Color1, current.Color2}[i]

	go func() {
		defer g.dialogOpen.Store(false)

		c, err := zenity.SelectColor(
			zenity.Title("Gradient color"),
			zenity.Color(rgba(initial)),
		)
		if err != nil {
			if errors.Is(err, zenity.ErrCanceled) {
				return
			}
			g.report(errors.Wrap(err, "color dialog"))
			return
		}

		rgb := fromColor(c)
		g.ctl.Store.Update(func(p *pattern.ParameterSet) {
			if i == 0 {
				p.Color1 = rgb
			} else {
				p.Color2 = rgb
			}
		})
		g.logger.Printf("color%d set to %s", i+1, config.ColorString(rgb))
	}()
}

func (g *Game) initClipboard() {
	if err := clipboard.Init(); err != nil {
		g.logger.Printf("clipboard disabled: %v", err)
		return
	}
	g.clipboardOK = true
}

// copyParams puts the current parameters on the clipboard as JSON.
func (g *Game) copyParams() error {
	if !g.clipboardOK {
		return errors.New("clipboard unavailable")
	}
	data, err := config.EncodeParameters(g.ctl.Store.Params())
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, data)
	g.logger.Print("parameters copied")
	return nil
}

// pasteParams applies JSON parameters from the clipboard. Invalid content
// leaves the store untouched.
func (g *Game) pasteParams() error {
	if !g.clipboardOK {
		return errors.New("clipboard unavailable")
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return errors.New("clipboard is empty")
	}
	p, err := config.DecodeParameters(data, g.ctl.Store.Params())
	if err != nil {
		return errors.Wrap(err, "paste parameters")
	}
	g.ctl.Store.Replace(p)
	g.logger.Print("parameters pasted")
	return nil
}
