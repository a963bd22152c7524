package store

import (
	"context"
	"hash/crc64"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/iburimskiy/kaleidoscope/internal/config"
)

var crcTable = crc64.MakeTable(crc64.ECMA)

// Watcher reloads a parameter file into a Store whenever it changes on disk.
type Watcher struct {
	path   string
	store  *Store
	logger *log.Logger

	lastSum uint64
}

func NewWatcher(path string, s *Store, logger *log.Logger) *Watcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Watcher{
		path:   filepath.Clean(path),
		store:  s,
		logger: logger,
	}
}

// Run watches until ctx is cancelled. The directory is watched rather than
// the file so editors that replace the file on save are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return errors.Wrapf(err, "watch %s", filepath.Dir(w.path))
	}
	w.logger.Printf("watching %s", w.path)

	// Seed the checksum so the first event for unchanged content is ignored.
	if data, err := os.ReadFile(w.path); err == nil {
		w.lastSum = crc64.Checksum(data, crcTable)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.reload()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Printf("watch error: %v", err)
		}
	}
}

// reload applies the file if its content changed since the last load.
// Errors leave the store untouched.
func (w *Watcher) reload() bool {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.logger.Printf("reload %s: %v", w.path, err)
		return false
	}
	sum := crc64.Checksum(data, crcTable)
	if sum == w.lastSum {
		return false
	}

	p, err := config.DecodeParameters(data, w.store.Params())
	if err != nil {
		w.logger.Printf("reload %s: %v", w.path, err)
		return false
	}
	w.lastSum = sum
	w.store.Replace(p)
	w.logger.Printf("reloaded %s", w.path)
	return true
}
