package config

import (
	"math"

	"github.com/iburimskiy/kaleidoscope/internal/pattern"
)

const (
	WindowWidth  = 1024
	WindowHeight = 576

	// The CPU path evaluates one pixel per RenderScale×RenderScale block.
	RenderScale    = 2
	MaxRenderScale = 8

	TicksPerSecond = 60

	// Control panel
	PanelWidth     = 300
	PanelPadding   = 16
	SliderHeight   = 14
	SliderSpacing  = 34
	PanelTopOffset = 64

	// Frame timing history shown in the HUD
	FrameTapSize   = 240
	SparklineWidth = 240
	SparkHeight    = 40

	// Terminal driver tick
	TerminalFrameMillis = 16

	// Logging
	LogDir      = "logs"
	LogFileName = "kaleidoscope.log"
)

// Slider describes one control of the parameter panel.
type Slider struct {
	Label          string
	Min, Max, Step float64
	Get            func(p pattern.ParameterSet) float64
	Set            func(p *pattern.ParameterSet, v float64)
}

// Nudge moves the slider by n steps and returns the new value, kept in range
// and snapped to the step grid.
func (s Slider) Nudge(p *pattern.ParameterSet, n int) float64 {
	v := s.Get(*p) + float64(n)*s.Step
	v = pattern.Clamp(snap(v, s.Min, s.Step), s.Min, s.Max)
	s.Set(p, v)
	return v
}

// Fraction returns the slider position in [0,1].
func (s Slider) Fraction(p pattern.ParameterSet) float64 {
	return pattern.Clamp((s.Get(p)-s.Min)/(s.Max-s.Min), 0, 1)
}

// SliderSpeed indexes the speed control in Sliders.
const SliderSpeed = 0

// Sliders mirrors the control panel: ranges and steps per parameter.
var Sliders = []Slider{
	{"Speed", pattern.MinSpeedFactor, pattern.MaxSpeedFactor, 0.1,
		func(p pattern.ParameterSet) float64 { return p.SpeedFactor },
		func(p *pattern.ParameterSet, v float64) { p.SpeedFactor = v }},
	{"Symmetry", pattern.MinSymmetry, pattern.MaxSymmetry, 1,
		func(p pattern.ParameterSet) float64 { return p.Symmetry },
		func(p *pattern.ParameterSet, v float64) { p.Symmetry = v }},
	{"Rotation", pattern.MinRotationSpeed, pattern.MaxRotationSpeed, 0.01,
		func(p pattern.ParameterSet) float64 { return p.RotationSpeed },
		func(p *pattern.ParameterSet, v float64) { p.RotationSpeed = v }},
	{"Iterations", pattern.MinIterations, pattern.MaxIterations, 1,
		func(p pattern.ParameterSet) float64 { return float64(p.Iterations) },
		func(p *pattern.ParameterSet, v float64) { p.Iterations = int(v + 0.5) }},
	{"Complexity", pattern.MinComplexity, pattern.MaxComplexity, 1,
		func(p pattern.ParameterSet) float64 { return p.Complexity },
		func(p *pattern.ParameterSet, v float64) { p.Complexity = v }},
	{"Harmonic", pattern.MinHarmonicScale, pattern.MaxHarmonicScale, 0.5,
		func(p pattern.ParameterSet) float64 { return p.HarmonicScale },
		func(p *pattern.ParameterSet, v float64) { p.HarmonicScale = v }},
	{"Spiral", pattern.MinSpiralFactor, pattern.MaxSpiralFactor, 0.5,
		func(p pattern.ParameterSet) float64 { return p.SpiralFactor },
		func(p *pattern.ParameterSet, v float64) { p.SpiralFactor = v }},
	{"Pattern mix", 0, 1, 0.01,
		func(p pattern.ParameterSet) float64 { return p.PatternMix },
		func(p *pattern.ParameterSet, v float64) { p.PatternMix = v }},
	{"Edge", 0, 1, 0.01,
		func(p pattern.ParameterSet) float64 { return p.EdgeIntensity },
		func(p *pattern.ParameterSet, v float64) { p.EdgeIntensity = v }},
	{"Glow", 0, 1, 0.01,
		func(p pattern.ParameterSet) float64 { return p.GlowIntensity },
		func(p *pattern.ParameterSet, v float64) { p.GlowIntensity = v }},
}

// snap rounds v to the step grid starting at lo. The result is rounded to
// six decimals so repeated 0.1 steps do not drift.
func snap(v, lo, step float64) float64 {
	n := math.Round((v - lo) / step)
	return math.Round((lo+n*step)*1e6) / 1e6
}
