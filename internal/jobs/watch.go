// SPDX-License-Identifier: MIT

package jobs

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	xglog "github.com/ManuGH/epgclean/internal/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of file events into one callback.
const DefaultDebounce = 500 * time.Millisecond

// WatchOptions configures Watch.
type WatchOptions struct {
	// Paths are the files to watch. Their parent directories are watched so that
	// atomic replacements (write temp, rename) are seen.
	Paths    []string
	Debounce time.Duration
	// OnChange receives the changed paths, sorted. Errors are logged and watching
	// continues.
	OnChange func(ctx context.Context, changed []string) error
}

// Watch blocks until ctx is cancelled, calling OnChange after each quiet period that
// follows a write to one of the watched files. Callbacks run on the calling
// goroutine, one at a time.
func Watch(ctx context.Context, opts WatchOptions) error {
	logger := xglog.WithComponentFromContext(ctx, "watch")
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watched := make(map[string]struct{}, len(opts.Paths))
	dirs := make(map[string]struct{})
	for _, p := range opts.Paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", p, err)
		}
		watched[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	if len(watched) == 0 {
		return fmt.Errorf("watch: no paths given")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	logger.Info().
		Str(xglog.FieldEvent, "watch.started").
		Int("files", len(watched)).
		Msg("watching for changes")

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending = make(map[string]struct{})
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Str(xglog.FieldEvent, "watch.stopped").Msg("watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Clean(event.Name)
			if _, ok := watched[name]; !ok {
				continue
			}
			logger.Debug().
				Str(xglog.FieldEvent, "watch.file_changed").
				Str(xglog.FieldPath, name).
				Str("op", event.Op.String()).
				Msg("file changed")
			pending[name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Str(xglog.FieldEvent, "watch.error").Msg("watcher error")

		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			slices.Sort(changed)
			clear(pending)
			if opts.OnChange == nil {
				continue
			}
			if err := opts.OnChange(ctx, changed); err != nil {
				logger.Error().Err(err).
					Str(xglog.FieldEvent, "watch.callback_failed").
					Strs("paths", changed).
					Msg("change handler failed")
			}
		}
	}
}
