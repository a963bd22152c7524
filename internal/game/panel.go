package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/kaleidoscope/internal/config"
	"github.com/iburimskiy/kaleidoscope/internal/control"
	"github.com/iburimskiy/kaleidoscope/internal/pattern"
)

var (
	panelBackground = color.RGBA{R: 12, G: 14, B: 24, A: 200}
	panelBorder     = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	trackColor      = color.RGBA{R: 25, G: 30, B: 40, A: 220}
	selectedColor   = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	labelColor      = color.RGBA{R: 220, G: 225, B: 235, A: 255}
)

// sliderRect is the track of slider i in screen pixels.
func sliderRect(i int) image.Rectangle {
	x := config.PanelPadding
	y := config.PanelTopOffset + i*config.SliderSpacing
	return image.Rect(x, y, config.PanelWidth-config.PanelPadding, y+config.SliderHeight)
}

// sliderAt returns the slider under the cursor, or -1.
func sliderAt(x, y, n int) int {
	for i := 0; i < n; i++ {
		r := sliderRect(i)
		// Grab area is a little taller than the track.
		if x >= r.Min.X && x <= r.Max.X && y >= r.Min.Y-4 && y <= r.Max.Y+4 {
			return i
		}
	}
	return -1
}

// sliderValueAt maps a cursor x onto slider i's range.
func sliderValueAt(s config.Slider, i, x int) float64 {
	r := sliderRect(i)
	frac := pattern.Clamp(float64(x-r.Min.X)/float64(r.Dx()), 0, 1)
	return s.Min + frac*(s.Max-s.Min)
}

func swatchRect(i, n int) image.Rectangle {
	y := config.PanelTopOffset + n*config.SliderSpacing
	x := config.PanelPadding + i*(config.PanelWidth-2*config.PanelPadding)/2
	return image.Rect(x, y, x+40, y+24)
}

func rgba(c pattern.RGB) color.RGBA {
	r, g, b := c.Quantize()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func (g *Game) drawPanel(screen *ebiten.Image, p pattern.ParameterSet) {
	sliders := g.ctl.Panel.Sliders()
	height := config.PanelTopOffset + len(sliders)*config.SliderSpacing + 48
	vector.DrawFilledRect(screen, 0, 0, float32(config.PanelWidth), float32(height), panelBackground, false)
	vector.StrokeRect(screen, 0, 0, float32(config.PanelWidth), float32(height), 2, panelBorder, false)

	drawLabel(screen, g.ctl.PresetTitle(), config.PanelPadding, 24, labelColor)
	drawLabel(screen, "1-5 presets  Tab hide  Space pause", config.PanelPadding, 44, selectedColor)

	for i, s := range sliders {
		r := sliderRect(i)
		label := fmt.Sprintf("%s: %.2f", s.Label, s.Get(p))
		drawLabel(screen, label, r.Min.X, r.Min.Y-5, labelColor)

		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), trackColor, false)
		frac := s.Fraction(p)
		if frac > 0 {
			vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(frac*float64(r.Dx())), float32(r.Dy()), control.SliderTint(frac), false)
		}

		// position indicator
		ix := float32(r.Min.X) + float32(frac*float64(r.Dx()))
		vector.StrokeLine(screen, ix, float32(r.Min.Y-2), ix, float32(r.Max.Y+2), 2, color.White, false)

		if i == g.ctl.Panel.Selected() {
			vector.StrokeRect(screen, float32(r.Min.X-3), float32(r.Min.Y-3), float32(r.Dx()+6), float32(r.Dy()+6), 1, selectedColor, false)
		}
	}

	for i, c := range [2]pattern.RGB{p.Color1, p.Color2} {
		r := swatchRect(i, len(sliders))
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), rgba(c), false)
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, panelBorder, false)
		drawLabel(screen, fmt.Sprintf("Shift+%d", i+1), r.Max.X+6, r.Min.Y+16, labelColor)
	}
}
