package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/normbridge/internal/ports"
	"github.com/bft-labs/normbridge/pkg/log"
)

// Watcher reruns a pipeline whenever a new descriptor lands.
//
// Runs happen on the watch goroutine itself, so two runs never overlap.
// A failed run is logged and the watcher keeps going.
type Watcher struct {
	runner    Runner
	inputPath string
	debounce  time.Duration
	logger    ports.Logger
}

// NewWatcher creates a watcher for inputPath.
func NewWatcher(runner Runner, inputPath string, debounce time.Duration, logger ports.Logger) *Watcher {
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		runner:    runner,
		inputPath: inputPath,
		debounce:  debounce,
		logger:    logger,
	}
}

// Run blocks until ctx is cancelled. A descriptor already present when
// watching starts is processed immediately.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.inputPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Info("watching for descriptors", log.String("path", w.inputPath))

	if fileExists(w.inputPath) {
		w.runOnce(ctx)
	}

	name := filepath.Base(w.inputPath)
	timer := time.NewTimer(w.debounce)
	stopTimer(timer)
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			stopTimer(timer)
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			stopTimer(timer)
			timer.Reset(w.debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			if fileExists(w.inputPath) {
				w.runOnce(ctx)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) runOnce(ctx context.Context) {
	if _, err := w.runner.Run(ctx); err != nil {
		w.logger.Error("bridge run failed", log.Err(err))
	}
}

// stopTimer stops t and drains a pending tick so Reset starts clean.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
