package wsdlmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch generates the documentation once and then again every time
// the input file changes, until ctx is cancelled. Failed
// regenerations are logged and do not stop the watch; only a failure
// of the initial generation or of the file watcher itself is
// returned. Remote inputs cannot be watched.
func (cfg *Config) Watch(ctx context.Context) error {
	if isURL(cfg.input) {
		return fmt.Errorf("cannot watch remote input %s", cfg.input)
	}
	path, err := filepath.Abs(cfg.input)
	if err != nil {
		return fmt.Errorf("absolute path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory; editors that save atomically replace
	// the file rather than writing to it.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}

	if err := cfg.regenerate(); err != nil {
		return err
	}
	cfg.logf("watching %s for changes", cfg.input)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isInputEvent(event, path) {
				continue
			}
			cfg.verbosef("%s: %s", event.Op, event.Name)
			if err := cfg.regenerate(); err != nil {
				cfg.logf("regenerate failed: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", cfg.input, err)
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		}
	}
}

func (cfg *Config) regenerate() error {
	files, err := cfg.Generate()
	if cfg.onGenerate != nil {
		cfg.onGenerate(files, err)
	}
	return err
}

// isInputEvent reports whether event means the file at path has new
// content.
func isInputEvent(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create) != 0
}
