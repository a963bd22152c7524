package pattern

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultParametersValid(t *testing.T) {
	if err := DefaultParameters().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	for _, p := range extremeParams() {
		if err := p.Validate(); err != nil {
			t.Errorf("range bound %+v invalid: %v", p, err)
		}
	}
}

func TestValidateAcceptsIterationsPastCap(t *testing.T) {
	for _, n := range []int{MaxIterations, MaxIterations + 1, 1000} {
		p := DefaultParameters()
		p.Iterations = n
		if err := p.Validate(); err != nil {
			t.Errorf("iterations=%d rejected: %v", n, err)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*ParameterSet)
	}{
		{"zero speed", func(p *ParameterSet) { p.SpeedFactor = 0 }},
		{"inf speed", func(p *ParameterSet) { p.SpeedFactor = math.Inf(1) }},
		{"zero iterations", func(p *ParameterSet) { p.Iterations = 0 }},
		{"negative iterations", func(p *ParameterSet) { p.Iterations = -3 }},
		{"symmetry below two", func(p *ParameterSet) { p.Symmetry = 1.5 }},
		{"symmetry nan", func(p *ParameterSet) { p.Symmetry = math.NaN() }},
		{"complexity high", func(p *ParameterSet) { p.Complexity = 51 }},
		{"negative rotation", func(p *ParameterSet) { p.RotationSpeed = -0.01 }},
		{"edge above one", func(p *ParameterSet) { p.EdgeIntensity = 1.01 }},
		{"glow negative", func(p *ParameterSet) { p.GlowIntensity = -1 }},
		{"harmonic low", func(p *ParameterSet) { p.HarmonicScale = 4 }},
		{"spiral high", func(p *ParameterSet) { p.SpiralFactor = 21 }},
		{"mix high", func(p *ParameterSet) { p.PatternMix = 2 }},
		{"color1 channel", func(p *ParameterSet) { p.Color1.G = 1.5 }},
		{"color2 nan", func(p *ParameterSet) { p.Color2.B = math.NaN() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.modify(&p)
			err := p.Validate()
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("Validate() = %v, want ErrOutOfRange", err)
			}
		})
	}
}

func TestClamped(t *testing.T) {
	p := ParameterSet{
		SpeedFactor:   math.NaN(),
		Iterations:    99,
		Symmetry:      0,
		Complexity:    1000,
		RotationSpeed: -3,
		Color1:        RGB{-1, 2, math.NaN()},
		Color2:        RGB{0.5, 0.5, 0.5},
		EdgeIntensity: 3,
		GlowIntensity: math.Inf(-1),
		HarmonicScale: 0,
		SpiralFactor:  100,
		PatternMix:    -0.5,
	}
	got := p.Clamped()
	if err := got.Validate(); err != nil {
		t.Fatalf("Clamped() still invalid: %v", err)
	}

	d := DefaultParameters()
	checks := []struct {
		name      string
		got, want float64
	}{
		{"speed falls back", got.SpeedFactor, d.SpeedFactor},
		{"iterations", float64(got.Iterations), MaxIterations},
		{"symmetry", got.Symmetry, MinSymmetry},
		{"complexity", got.Complexity, MaxComplexity},
		{"rotation", got.RotationSpeed, MinRotationSpeed},
		{"color1.r", got.Color1.R, 0},
		{"color1.g", got.Color1.G, 1},
		{"color1.b", got.Color1.B, 0},
		{"edge", got.EdgeIntensity, 1},
		{"glow falls back", got.GlowIntensity, d.GlowIntensity},
		{"harmonic", got.HarmonicScale, MinHarmonicScale},
		{"spiral", got.SpiralFactor, MaxSpiralFactor},
		{"mix", got.PatternMix, 0},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if got.Color2 != p.Color2 {
		t.Errorf("in-range color changed: %v", got.Color2)
	}
}

func TestFrameContextValidate(t *testing.T) {
	if err := (FrameContext{Time: 0, Resolution: Resolution{1, 1}}).Validate(); err != nil {
		t.Errorf("minimal frame rejected: %v", err)
	}
	if err := (FrameContext{Time: math.Inf(1), Resolution: Resolution{1, 1}}).Validate(); !errors.Is(err, ErrBadFrame) {
		t.Errorf("infinite time accepted: %v", err)
	}
}
