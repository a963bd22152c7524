// Package logging holds the process wide loggers and the optional debug
// log file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/iburimskiy/kaleidoscope/internal/config"
)

// Log files past this size are rotated aside on startup.
const maxLogSize = 10 << 20

var (
	InfoLogger  = log.New(os.Stdout, "INFO: ", log.Lshortfile)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Lshortfile)
)

// Setup routes the loggers. With debug set everything goes to the log file
// under config.LogDir, otherwise to console. The returned file, if any, must
// be closed by the caller.
func Setup(debug bool, console io.Writer) (*os.File, error) {
	return setup(config.LogDir, debug, console)
}

func setup(dir string, debug bool, console io.Writer) (*os.File, error) {
	if !debug {
		log.SetOutput(console)
		InfoLogger.SetOutput(console)
		ErrorLogger.SetOutput(console)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create log dir")
	}
	path := filepath.Join(dir, config.LogFileName)
	if err := rotate(path); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	InfoLogger.SetOutput(f)
	ErrorLogger.SetOutput(io.MultiWriter(f, console))
	return f, nil
}

func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}
	ext := filepath.Ext(path)
	aside := fmt.Sprintf("%s-%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
	return errors.Wrap(os.Rename(path, aside), "rotate log file")
}
