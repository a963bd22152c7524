package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/kaleidoscope/internal/config"
	"github.com/iburimskiy/kaleidoscope/internal/control"
)

var (
	hudBackground = color.RGBA{R: 20, G: 25, B: 35, A: 200}
	hudBorder     = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	errorColor    = color.RGBA{R: 255, G: 110, B: 110, A: 255}
)

// frameBudget is one tick at the target rate.
const frameBudget = time.Second / config.TicksPerSecond

var uiFace = text.NewGoXFace(basicfont.Face7x13)

// drawLabel draws s with its baseline at y.
func drawLabel(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y)-uiFace.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, uiFace, op)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	mode := "CPU"
	if g.useGPU {
		mode = "GPU"
		if g.gpu.fromDisk {
			mode += " (disk)"
		}
	}
	status := fmt.Sprintf("%s  FPS %.0f  TPS %.0f  %s", mode, ebiten.ActualFPS(), ebiten.ActualTPS(), control.FormatClock(g.ctl.Clock.Elapsed()))
	if g.ctl.Clock.Paused() {
		status += "  paused"
	}
	x := g.width - len(status)*7 - 12
	drawLabel(screen, status, x, 20, color.White)

	if !g.useGPU {
		g.drawSparkline(screen)
	}

	if g.lastErr != nil {
		drawLabel(screen, "Error: "+g.lastErr.Error(), 12, g.height-12, errorColor)
	}
}

// drawSparkline draws recent CPU frame times as bars, one pixel each,
// scaled so the frame budget sits at half height.
func (g *Game) drawSparkline(screen *ebiten.Image) {
	samples := g.ctl.Tap.Snapshot(config.SparklineWidth)
	if len(samples) == 0 {
		return
	}

	barX := g.width - config.SparklineWidth - 12
	barY := 32
	w, h := float32(config.SparklineWidth), float32(config.SparkHeight)

	vector.DrawFilledRect(screen, float32(barX), float32(barY), w, h, hudBackground, false)
	vector.StrokeRect(screen, float32(barX), float32(barY), w, h, 1, hudBorder, false)

	for i, d := range samples {
		frac := float32(d) / float32(2*frameBudget)
		if frac > 1 {
			frac = 1
		}
		segmentHeight := max(frac*h, 1)
		sx := float32(barX + config.SparklineWidth - len(samples) + i)
		vector.DrawFilledRect(screen, sx, float32(barY)+h-segmentHeight, 1, segmentHeight, control.FrameTint(d, frameBudget), false)
	}

	// budget line
	midY := float32(barY) + h/2
	vector.StrokeLine(screen, float32(barX), midY, float32(barX)+w, midY, 1, color.RGBA{R: 100, G: 110, B: 130, A: 160}, false)

	avg := g.ctl.Tap.Average(config.SparklineWidth)
	label := fmt.Sprintf("frame %.1fms  peak %.1fms", float64(avg)/float64(time.Millisecond), float64(g.ctl.Tap.Peak(config.SparklineWidth))/float64(time.Millisecond))
	drawLabel(screen, label, barX, barY+int(h)+16, color.White)
}
