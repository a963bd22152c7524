package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"

	"github.com/iburimskiy/kaleidoscope/internal/config"
	"github.com/iburimskiy/kaleidoscope/internal/control"
	"github.com/iburimskiy/kaleidoscope/internal/game"
	"github.com/iburimskiy/kaleidoscope/internal/logging"
	"github.com/iburimskiy/kaleidoscope/internal/store"
)

func main() {
	opts, err := config.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logging.ErrorLogger.Fatal(err)
	}

	logFile, err := logging.Setup(opts.Debug, os.Stderr)
	if err != nil {
		logging.ErrorLogger.Fatal(err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	params, err := opts.Parameters()
	if err != nil {
		logging.ErrorLogger.Fatal(err)
	}
	st := store.New(params)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if opts.Watch {
		w := store.NewWatcher(opts.ParamsFile, st, logging.InfoLogger)
		go func() {
			if err := w.Run(ctx); err != nil {
				logging.ErrorLogger.Printf("watcher stopped: %v", err)
			}
		}()
	}

	ctl := control.NewController(st, logging.InfoLogger)
	g := game.NewGame(opts, ctl, logging.InfoLogger)

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle("Kaleidoscope")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)

	logging.InfoLogger.Printf("starting, preset %s", ctl.PresetTitle())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logging.ErrorLogger.Print(err)
		cancel()
		os.Exit(1)
	}
}
