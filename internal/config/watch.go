package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/pensool/pensool"
)

// Watch reloads the file at path whenever it is written or replaced and
// hands each valid configuration to fn. Invalid files are logged and
// skipped. Watch blocks until ctx is done.
//
// The directory is watched rather than the file so that editors which
// save by renaming a temporary file keep being seen.
func Watch(ctx context.Context, path string, fn func(*Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("config: watch %s: %w", abs, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load(abs)
			if err != nil {
				pensool.Logger().Warn("config: reload failed", "path", abs, "err", err)
				continue
			}
			pensool.Logger().Info("config: reloaded", "path", abs)
			fn(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			pensool.Logger().Warn("config: watcher error", "err", err)
		}
	}
}
