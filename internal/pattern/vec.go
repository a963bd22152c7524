package pattern

import "math"

// Vec2 is a point on the pattern plane. It doubles as a complex number
// (X real, Y imaginary) for the iterated map.
type Vec2 struct {
	X, Y float64
}

func (p Vec2) Abs() Vec2 {
	return Vec2{math.Abs(p.X), math.Abs(p.Y)}
}

func (p Vec2) Dot(q Vec2) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Vec2) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Angle returns atan2(y, x) in (-Pi, Pi].
func (p Vec2) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Rotate turns p counter-clockwise by theta radians.
func Rotate(p Vec2, theta float64) Vec2 {
	c := math.Cos(theta)
	s := math.Sin(theta)
	return Vec2{
		X: p.X*c - p.Y*s,
		Y: p.X*s + p.Y*c,
	}
}

// CMul multiplies two complex numbers stored as vectors.
func CMul(a, b Vec2) Vec2 {
	return Vec2{
		X: a.X*b.X - a.Y*b.Y,
		Y: a.X*b.Y + a.Y*b.X,
	}
}

// CExp is the complex exponential.
func CExp(z Vec2) Vec2 {
	e := math.Exp(z.X)
	return Vec2{e * math.Cos(z.Y), e * math.Sin(z.Y)}
}
