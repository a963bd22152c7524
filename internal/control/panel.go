package control

import (
	"github.com/iburimskiy/kaleidoscope/internal/config"
	"github.com/iburimskiy/kaleidoscope/internal/pattern"
	"github.com/iburimskiy/kaleidoscope/internal/store"
)

// Panel is the selection state of the slider panel.
type Panel struct {
	Visible  bool
	selected int
	sliders  []config.Slider
}

func NewPanel(sliders []config.Slider) *Panel {
	return &Panel{Visible: true, sliders: sliders}
}

func (p *Panel) Sliders() []config.Slider {
	return p.sliders
}

func (p *Panel) Selected() int {
	return p.selected
}

// Select moves the selection by delta, wrapping at both ends.
func (p *Panel) Select(delta int) {
	n := len(p.sliders)
	if n == 0 {
		return
	}
	p.selected = ((p.selected+delta)%n + n) % n
}

// Current returns the selected slider.
func (p *Panel) Current() config.Slider {
	return p.sliders[p.selected]
}

// Nudge moves the selected slider by steps and publishes the result.
func (p *Panel) Nudge(s *store.Store, steps int) float64 {
	var v float64
	slider := p.Current()
	s.Update(func(ps *pattern.ParameterSet) {
		v = slider.Nudge(ps, steps)
	})
	return v
}
