package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/kaleidoscope/internal/control"
	"github.com/iburimskiy/kaleidoscope/internal/game/shader"
	"github.com/iburimskiy/kaleidoscope/internal/pattern"
)

// Held arrow keys repeat after this many ticks, every repeatInterval ticks.
const (
	repeatDelay    = 20
	repeatInterval = 4
)

var presetKeys = [pattern.PresetCount]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
}

func (g *Game) justPressed(k ebiten.Key) bool {
	pressed := ebiten.IsKeyPressed(k)
	jp := pressed && !g.prevKey[k]
	g.prevKey[k] = pressed
	return jp
}

func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0)
}

// handleInput maps this tick's input onto controller commands. It returns
// false when the user asked to quit.
func (g *Game) handleInput() bool {
	if g.justPressed(ebiten.KeyEscape) || g.justPressed(ebiten.KeyQ) {
		return g.ctl.Apply(control.Do(control.ActionQuit))
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	if g.justPressed(ebiten.KeySpace) {
		g.ctl.Apply(control.Do(control.ActionTogglePause))
	}
	if g.justPressed(ebiten.KeyTab) {
		g.ctl.Apply(control.Do(control.ActionTogglePanel))
	}

	for key, action := range map[ebiten.Key]control.Action{
		ebiten.KeyArrowUp:    control.ActionSelectPrev,
		ebiten.KeyArrowDown:  control.ActionSelectNext,
		ebiten.KeyArrowLeft:  control.ActionDecrease,
		ebiten.KeyArrowRight: control.ActionIncrease,
	} {
		if repeating(key) {
			g.ctl.Apply(control.Do(action))
		}
	}

	for i, k := range presetKeys {
		if !g.justPressed(k) {
			continue
		}
		if shift && i < 2 {
			g.pickColor(i)
		} else if !shift {
			g.ctl.Apply(control.PresetCommand(pattern.PresetID(i)))
		}
	}

	if g.justPressed(ebiten.KeyG) {
		g.toggleGPU()
	}
	if g.justPressed(ebiten.KeyF5) {
		g.reloadShader()
	}

	if g.justPressed(ebiten.KeyC) && ctrl {
		g.setErr(g.copyParams())
	}
	if g.justPressed(ebiten.KeyV) && ctrl {
		g.setErr(g.pasteParams())
	}

	if g.ctl.Panel.Visible {
		g.handleMouse()
	} else {
		g.dragging = -1
	}
	return true
}

func (g *Game) reloadShader() {
	if g.gpu == nil {
		g.toggleGPU()
		return
	}
	if err := g.gpu.reload(); err != nil {
		g.setErr(err)
		return
	}
	g.setErr(nil)
	g.logger.Printf("shader reloaded (from disk: %v, %s)", g.gpu.fromDisk, shader.SourcePath)
}

// handleMouse drags sliders and opens the color dialogs from the swatches.
func (g *Game) handleMouse() {
	mouseX, mouseY := ebiten.CursorPosition()
	sliders := g.ctl.Panel.Sliders()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if i := sliderAt(mouseX, mouseY, len(sliders)); i >= 0 {
			g.dragging = i
			g.ctl.Panel.Select(i - g.ctl.Panel.Selected())
		}
		for i := 0; i < 2; i++ {
			if pt := swatchRect(i, len(sliders)); mouseX >= pt.Min.X && mouseX <= pt.Max.X && mouseY >= pt.Min.Y && mouseY <= pt.Max.Y {
				g.pickColor(i)
			}
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = -1
	}

	if g.dragging >= 0 {
		s := sliders[g.dragging]
		current := g.ctl.Store.Params()
		next := current
		s.Set(&next, sliderValueAt(s, g.dragging, mouseX))
		// snap onto the step grid
		s.Nudge(&next, 0)
		if next != current {
			g.ctl.Store.Replace(next)
		}
	}
}
