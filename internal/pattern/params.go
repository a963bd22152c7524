package pattern

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfRange reports a ParameterSet field outside its documented range.
	ErrOutOfRange = errors.New("parameter out of range")
	// ErrBadFrame reports an unusable FrameContext.
	ErrBadFrame = errors.New("invalid frame context")
)

// MaxIterations is the hard upper bound on iterated map steps. Larger
// iteration counts are accepted and behave like MaxIterations.
const MaxIterations = 10

// Field ranges. SpeedFactor has no documented upper bound, only > 0.
const (
	MinIterations    = 1
	MinSymmetry      = 2.0
	MaxSymmetry      = 20.0
	MinComplexity    = 5.0
	MaxComplexity    = 50.0
	MinRotationSpeed = 0.0
	MaxRotationSpeed = 0.3
	MinHarmonicScale = 5.0
	MaxHarmonicScale = 40.0
	MinSpiralFactor  = 1.0
	MaxSpiralFactor  = 20.0

	// Limits used when pulling a speed factor into range for the UI.
	MinSpeedFactor = 0.1
	MaxSpeedFactor = 3.0
)

// RGB is a linear color with channels nominally in [0,1].
type RGB struct {
	R, G, B float64
}

func (c RGB) Add(d RGB) RGB {
	return RGB{c.R + d.R, c.G + d.G, c.B + d.B}
}

func (c RGB) Scale(s float64) RGB {
	return RGB{c.R * s, c.G * s, c.B * s}
}

// Mix linearly interpolates from c to d.
func (c RGB) Mix(d RGB, t float64) RGB {
	return RGB{Lerp(c.R, d.R, t), Lerp(c.G, d.G, t), Lerp(c.B, d.B, t)}
}

func (c RGB) Clamped() RGB {
	return RGB{clampChannel(c.R), clampChannel(c.G), clampChannel(c.B)}
}

func (c RGB) finite() bool {
	return finite(c.R) && finite(c.G) && finite(c.B)
}

func (c RGB) inUnitRange() bool {
	return c.R >= 0 && c.R <= 1 && c.G >= 0 && c.G <= 1 && c.B >= 0 && c.B <= 1
}

func clampChannel(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return Clamp(v, 0, 1)
}

// ParameterSet is every user-tunable value of the pattern. It is a value
// type; the evaluator only ever reads a copy.
type ParameterSet struct {
	SpeedFactor   float64
	Iterations    int
	Symmetry      float64
	Complexity    float64
	RotationSpeed float64
	Color1        RGB
	Color2        RGB
	EdgeIntensity float64
	GlowIntensity float64
	HarmonicScale float64
	SpiralFactor  float64
	PatternMix    float64
}

// DefaultParameters returns the initial control panel state.
func DefaultParameters() ParameterSet {
	return ParameterSet{
		SpeedFactor:   1.0,
		Iterations:    5,
		Symmetry:      5,
		Complexity:    20,
		RotationSpeed: 0.1,
		Color1:        RGB{0.25, 0.5, 1.0},
		Color2:        RGB{1.0, 0.25, 0.5},
		EdgeIntensity: 0.5,
		GlowIntensity: 0.3,
		HarmonicScale: 20,
		SpiralFactor:  5,
		PatternMix:    0.5,
	}
}

func checkRange(name string, v, lo, hi float64) error {
	if !finite(v) {
		return errors.Wrapf(ErrOutOfRange, "%s is not finite", name)
	}
	if v < lo || v > hi {
		return errors.Wrapf(ErrOutOfRange, "%s=%g not in [%g, %g]", name, v, lo, hi)
	}
	return nil
}

// Validate reports the first field outside its documented range.
func (p ParameterSet) Validate() error {
	if !finite(p.SpeedFactor) || p.SpeedFactor <= 0 {
		return errors.Wrapf(ErrOutOfRange, "speedFactor=%g must be > 0", p.SpeedFactor)
	}
	if p.Iterations < MinIterations {
		return errors.Wrapf(ErrOutOfRange, "iterations=%d below %d", p.Iterations, MinIterations)
	}
	checks := []struct {
		name   string
		v      float64
		lo, hi float64
	}{
		{"symmetry", p.Symmetry, MinSymmetry, MaxSymmetry},
		{"complexity", p.Complexity, MinComplexity, MaxComplexity},
		{"rotationSpeed", p.RotationSpeed, MinRotationSpeed, MaxRotationSpeed},
		{"edgeIntensity", p.EdgeIntensity, 0, 1},
		{"glowIntensity", p.GlowIntensity, 0, 1},
		{"harmonicScale", p.HarmonicScale, MinHarmonicScale, MaxHarmonicScale},
		{"spiralFactor", p.SpiralFactor, MinSpiralFactor, MaxSpiralFactor},
		{"patternMix", p.PatternMix, 0, 1},
	}
	for _, c := range checks {
		if err := checkRange(c.name, c.v, c.lo, c.hi); err != nil {
			return err
		}
	}
	for i, c := range [2]RGB{p.Color1, p.Color2} {
		if !c.finite() || !c.inUnitRange() {
			return errors.Wrapf(ErrOutOfRange, "color%d=%v channels must be in [0, 1]", i+1, c)
		}
	}
	return nil
}

func clampOr(v, lo, hi, fallback float64) float64 {
	if !finite(v) {
		return fallback
	}
	return Clamp(v, lo, hi)
}

// Clamped returns a copy with every field pulled into range. Non-finite
// values fall back to the defaults.
func (p ParameterSet) Clamped() ParameterSet {
	d := DefaultParameters()
	p.SpeedFactor = clampOr(p.SpeedFactor, MinSpeedFactor, MaxSpeedFactor, d.SpeedFactor)
	p.Iterations = Clamp(p.Iterations, MinIterations, MaxIterations)
	p.Symmetry = clampOr(p.Symmetry, MinSymmetry, MaxSymmetry, d.Symmetry)
	p.Complexity = clampOr(p.Complexity, MinComplexity, MaxComplexity, d.Complexity)
	p.RotationSpeed = clampOr(p.RotationSpeed, MinRotationSpeed, MaxRotationSpeed, d.RotationSpeed)
	p.Color1 = p.Color1.Clamped()
	p.Color2 = p.Color2.Clamped()
	p.EdgeIntensity = clampOr(p.EdgeIntensity, 0, 1, d.EdgeIntensity)
	p.GlowIntensity = clampOr(p.GlowIntensity, 0, 1, d.GlowIntensity)
	p.HarmonicScale = clampOr(p.HarmonicScale, MinHarmonicScale, MaxHarmonicScale, d.HarmonicScale)
	p.SpiralFactor = clampOr(p.SpiralFactor, MinSpiralFactor, MaxSpiralFactor, d.SpiralFactor)
	p.PatternMix = clampOr(p.PatternMix, 0, 1, d.PatternMix)
	return p
}

// Resolution is the viewport size in pixels.
type Resolution struct {
	Width, Height int
}

// MinSide returns the shorter viewport dimension.
func (r Resolution) MinSide() int {
	return min(r.Width, r.Height)
}

// FrameContext carries the per-frame driver state.
type FrameContext struct {
	Time       float64 // seconds since the driver's clock started
	Resolution Resolution
}

func (fc FrameContext) Validate() error {
	if fc.Resolution.Width <= 0 || fc.Resolution.Height <= 0 {
		return errors.Wrapf(ErrBadFrame, "resolution %dx%d", fc.Resolution.Width, fc.Resolution.Height)
	}
	if !finite(fc.Time) || fc.Time < 0 {
		return errors.Wrapf(ErrBadFrame, "time=%g", fc.Time)
	}
	return nil
}
