// Package term renders the pattern into a terminal with half-block cells,
// two vertically stacked pixels per character.
package term

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/iburimskiy/kaleidoscope/internal/config"
	"github.com/iburimskiy/kaleidoscope/internal/control"
	"github.com/iburimskiy/kaleidoscope/internal/pattern"
)

type App struct {
	screen tcell.Screen
	ctl    *control.Controller
	eval   pattern.Evaluator
	logger *log.Logger

	width, height int
}

// New wraps an initialized screen. The caller owns Init and Fini.
func New(screen tcell.Screen, ctl *control.Controller, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	a := &App{
		screen: screen,
		ctl:    ctl,
		logger: logger,
	}
	a.width, a.height = screen.Size()
	return a
}

// Run drives the terminal until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(config.TerminalFrameMillis * time.Millisecond)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			a.ctl.Tick(now.Sub(last))
			last = now

			start := time.Now()
			if err := a.draw(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return errors.Wrap(err, "draw frame")
			}
			a.ctl.Tap.Record(time.Since(start))
		}
	}
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.ctl.Apply(keyCommand(ev))

	case *tcell.EventResize:
		a.width, a.height = a.screen.Size()
		a.logger.Printf("resize %dx%d", a.width, a.height)
		a.screen.Sync()
	}
	return true
}
