package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch calls fn with a freshly loaded config every time filename is written,
// created or replaced, until ctx is done. fn runs on the watcher goroutine.
// The parent directory is watched: editors often save by renaming over the file.
func Watch(ctx context.Context, filename string, fn func(*Config, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config watcher: %w", err)
	}

	abs, err := filepath.Abs(filename)
	if err != nil {
		watcher.Close()
		return fmt.Errorf("config watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", filename, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(e.Name) != abs {
					continue
				}
				if e.Has(fsnotify.Write) || e.Has(fsnotify.Create) {
					fn(Load(abs))
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fn(nil, fmt.Errorf("config watcher: %w", err))
			}
		}
	}()
	return nil
}
