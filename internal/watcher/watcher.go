// Package watcher drives rebuild-on-change for watch mode.
package watcher

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/themetools/vsixpack/internal/logger"
)

// Watch blocks, invoking onChange each time one of the given files is
// written or recreated, until ctx is cancelled. Parent directories are
// watched rather than the files themselves, which survives the
// delete-and-replace dance editors perform on save.
func Watch(ctx context.Context, paths []string, log *logger.Logger, onChange func(path string)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	watched := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		watched[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, ok := watched[abs]; !ok {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				log.WithFields(map[string]any{"file": abs}).Debug("file changed")
				onChange(abs)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Error(err, "file watcher error")
		}
	}
}
