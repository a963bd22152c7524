// Command kaleidoterm renders the kaleidoscope in a true color terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/kaleidoscope/internal/config"
	"github.com/iburimskiy/kaleidoscope/internal/control"
	"github.com/iburimskiy/kaleidoscope/internal/logging"
	"github.com/iburimskiy/kaleidoscope/internal/store"
	"github.com/iburimskiy/kaleidoscope/internal/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "kaleidoterm: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts, err := config.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	// The screen owns the terminal, so only the debug file may log.
	logFile, err := logging.Setup(opts.Debug, io.Discard)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	params, err := opts.Parameters()
	if err != nil {
		return err
	}
	st := store.New(params)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if opts.Watch {
		w := store.NewWatcher(opts.ParamsFile, st, logging.InfoLogger)
		go func() {
			if err := w.Run(ctx); err != nil {
				logging.ErrorLogger.Printf("watcher stopped: %v", err)
			}
		}()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	ctl := control.NewController(st, logging.InfoLogger)
	logging.InfoLogger.Printf("terminal driver started, preset %s", ctl.PresetTitle())
	return term.New(screen, ctl, logging.InfoLogger).Run(ctx)
}
