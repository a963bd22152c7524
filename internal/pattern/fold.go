package pattern

import "math"

// Normalize maps a pixel position to the pattern plane: centered on the
// viewport, with the shorter side spanning unit length.
func Normalize(px, py float64, res Resolution) Vec2 {
	s := float64(res.MinSide())
	return Vec2{
		X: (px - 0.5*float64(res.Width)) / s,
		Y: (py - 0.5*float64(res.Height)) / s,
	}
}

// wedge returns the wedge index of angle and the base angle of that wedge.
func wedge(angle, segmentAngle float64) (index, base float64) {
	index = math.Floor(angle / segmentAngle)
	return index, index * segmentAngle
}

// odd reports whether a wedge index is odd, using a floored modulus so
// negative indices alternate the same way positive ones do.
func odd(index float64) bool {
	return index-2*math.Floor(index/2) >= 1
}

// Fold mirrors uv into its wedge so that adjacent wedges are reflections of
// each other. The radius is preserved.
func Fold(uv Vec2, symmetry float64) Vec2 {
	angle := uv.Angle()
	segmentAngle := 2 * math.Pi / symmetry

	index, base := wedge(angle, segmentAngle)
	rel := angle - base
	if odd(index) {
		rel = segmentAngle - rel
	}

	r := uv.Len()
	a := rel + base
	return Vec2{r * math.Cos(a), r * math.Sin(a)}
}
