package control

import (
	"fmt"
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/kaleidoscope/internal/pattern"
)

// SliderTint colors a slider fill by position, blue at the low end through
// to magenta at the high end.
func SliderTint(fraction float64) color.RGBA {
	r, g, b := colorful.Hsv(220+pattern.Clamp(fraction, 0, 1)*110, 0.7, 0.95).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// FrameTint colors a frame time bar: green within budget, red at twice the
// budget and beyond.
func FrameTint(d, budget time.Duration) color.RGBA {
	over := 0.0
	if budget > 0 {
		over = pattern.Clamp(float64(d)/float64(budget)-1, 0, 1)
	}
	r, g, b := colorful.Hsv(120*(1-over), 0.8, 0.9).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 220}
}

// FormatClock formats a duration as MM:SS
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
