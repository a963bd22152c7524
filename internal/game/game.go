// Package game is the windowed driver: it runs the evaluator inside an
// ebiten game loop and draws the control panel on top.
package game

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/kaleidoscope/internal/config"
	"github.com/iburimskiy/kaleidoscope/internal/control"
)

type Game struct {
	ctl    *control.Controller
	logger *log.Logger

	cpu    *cpuRenderer
	gpu    *gpuRenderer
	useGPU bool

	width, height int

	// input edge detection
	prevKey map[ebiten.Key]bool

	// slider drag state, -1 when idle
	dragging int

	clipboardOK bool
	dialogOpen  atomic.Bool

	// errors from dialog goroutines, shown by the next Update
	errs    chan error
	lastErr error
}

func NewGame(opts config.Options, ctl *control.Controller, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{
		ctl:      ctl,
		logger:   logger,
		cpu:      newCPURenderer(opts.Scale, ctl.Store.Subscribe()),
		width:    opts.Width,
		height:   opts.Height,
		prevKey:  map[ebiten.Key]bool{},
		dragging: -1,
		errs:     make(chan error, 4),
	}
	if opts.GPU {
		g.toggleGPU()
	}
	g.initClipboard()
	return g
}

// report hands an error from another goroutine to the game loop.
func (g *Game) report(err error) {
	select {
	case g.errs <- err:
	default:
	}
}

func (g *Game) setErr(err error) {
	if err != nil {
		g.logger.Print(err)
	}
	g.lastErr = err
}

// toggleGPU switches evaluation paths, compiling the shader on first use.
func (g *Game) toggleGPU() {
	if g.useGPU {
		g.useGPU = false
		return
	}
	if g.gpu == nil {
		gpu, err := newGPURenderer()
		if err != nil {
			g.setErr(err)
			return
		}
		g.gpu = gpu
	}
	g.useGPU = true
}

func (g *Game) Update() error {
	select {
	case err := <-g.errs:
		g.setErr(err)
	default:
	}

	if !g.handleInput() {
		return ebiten.Termination
	}

	g.ctl.Tick(time.Second / config.TicksPerSecond)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.cpu.poll()
	p := g.ctl.Store.Params()

	if g.useGPU {
		g.gpu.draw(screen, p, g.ctl.Frame(g.width, g.height))
	} else {
		fc := g.ctl.Frame(g.width, g.height)
		fc.Resolution = g.cpu.resolution(g.width, g.height)

		start := time.Now()
		evaluated, err := g.cpu.render(context.Background(), p, fc)
		if err != nil {
			g.setErr(err)
		} else if evaluated {
			g.ctl.Tap.Record(time.Since(start))
		}
		g.cpu.draw(screen)
	}

	if g.ctl.Panel.Visible {
		g.drawPanel(screen, p)
	}
	g.drawHUD(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = max(outsideWidth, 1), max(outsideHeight, 1)
	return g.width, g.height
}
