package pattern

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	white     = RGB{1, 1, 1}
	glowColor = RGB{1, 0.8, 0.5}
)

const (
	ambientHue        = 0.7
	ambientSaturation = 0.5
)

// Harmonic is the radial ring pattern, in [0,1].
func Harmonic(q Vec2, scale, t float64) float64 {
	return 0.5 + 0.5*math.Sin(q.Len()*scale-t*2)
}

// Spiral is the angular spiral banding, in [0,1].
func Spiral(q Vec2, factor, t float64) float64 {
	a := q.Angle()
	r := q.Len()
	return 0.5 + 0.5*math.Sin(r*10-a*factor+t)
}

// MixWeight is the harmonic/spiral blend weight. It drifts with time and is
// not clamped, so the blend may extrapolate past either sub-pattern.
func MixWeight(patternMix, t float64) float64 {
	return patternMix + 0.5*math.Sin(t*0.2)
}

// Edge sharpens the pattern value into thin bands.
func Edge(v, complexity float64) float64 {
	return math.Pow(0.5+0.5*math.Sin(v*complexity), 10)
}

// Highlight produces the fast flickering filaments.
func Highlight(v, t float64) float64 {
	return math.Pow(math.Abs(math.Sin(v*50+t)), 20)
}

// Ambient is the dim background tint at distance dist from the center.
func Ambient(dist float64) RGB {
	c := colorful.Hsv(ambientHue*360, ambientSaturation, 0.1*dist*0.5)
	return RGB{c.R, c.G, c.B}
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Shade turns the combined pattern value into a color. uv is the normalized
// (unfolded) coordinate, q the iterated point.
func Shade(p ParameterSet, v float64, uv, q Vec2, t float64) RGB {
	col := p.Color1.Mix(p.Color2, Clamp(v*2-0.5, 0, 1))
	col = col.Add(white.Scale(Edge(v, p.Complexity) * p.EdgeIntensity))
	col = col.Scale(1 + q.Len()*0.5)

	dist := uv.Len()
	w := (v*0.8 + 0.2) * (1 - dist*0.25)
	mixed := toColorful(Ambient(dist)).BlendRgb(toColorful(col), w)
	col = RGB{mixed.R, mixed.G, mixed.B}

	return col.Add(glowColor.Scale(Highlight(v, t) * p.GlowIntensity))
}

// Pixel evaluates one normalized coordinate. t is the already speed-scaled
// animation time.
func Pixel(p ParameterSet, t float64, uv Vec2) RGB {
	k := Fold(uv, p.Symmetry)
	k = Rotate(k, t*p.RotationSpeed)

	q := Iterate(k, t, p.Iterations, p.Symmetry, p.RotationSpeed)

	v := Lerp(Harmonic(q, p.HarmonicScale, t), Spiral(q, p.SpiralFactor, t), MixWeight(p.PatternMix, t))
	return Shade(p, v, uv, q, t)
}
