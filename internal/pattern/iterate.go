package pattern

import "math"

// invert is the fold-and-invert step abs(p)/dot(p,p) - 0.5. Near the origin
// the result grows without bound; only an exact zero is guarded so the
// step never produces NaN.
func invert(p Vec2) Vec2 {
	d := p.Dot(p)
	if d == 0 {
		return Vec2{-0.5, -0.5}
	}
	a := p.Abs()
	return Vec2{a.X/d - 0.5, a.Y/d - 0.5}
}

// step is the i-th application of the map.
func step(p Vec2, t float64, i int, symmetry, rotationSpeed float64) Vec2 {
	p = invert(p)
	p = Rotate(p, t*rotationSpeed+float64(i)*0.1+2*math.Pi/symmetry)
	return CMul(p, CExp(Vec2{0, t * 0.1}))
}

// Iterate applies the nonlinear map to p. The loop never runs more than
// MaxIterations times, whatever iterations says.
func Iterate(p Vec2, t float64, iterations int, symmetry, rotationSpeed float64) Vec2 {
	for i := 0; i < MaxIterations; i++ {
		if i >= iterations {
			break
		}
		p = step(p, t, i, symmetry, rotationSpeed)
	}
	return p
}
