package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// PollInterval is how often Watch checks the file when fsnotify is
// unavailable.
var PollInterval = 500 * time.Millisecond

// Update is one reload result delivered by Watch.
type Update struct {
	Config Config
	Err    error
}

// Watch reloads path whenever it is written and sends the result on the
// returned channel. The channel is closed when ctx is cancelled.
// Uses fsnotify with a polling fallback.
func Watch(ctx context.Context, path string) <-chan Update {
	ch := make(chan Update, 1)

	go func() {
		defer close(ch)

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			pollFile(ctx, path, ch)
			return
		}
		defer watcher.Close()

		// Editors often replace the file, so watch the directory.
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			pollFile(ctx, path, ch)
			return
		}

		watchFile(ctx, path, watcher, ch)
	}()

	return ch
}

func watchFile(ctx context.Context, path string, watcher *fsnotify.Watcher, ch chan<- Update) {
	base := filepath.Base(path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !send(ctx, ch, reload(path)) {
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			if !send(ctx, ch, Update{Err: err}) {
				return
			}
		}
	}
}

// pollFile compares modification times when fsnotify cannot be used.
func pollFile(ctx context.Context, path string, ch chan<- Update) {
	var last time.Time
	if info, err := os.Stat(path); err == nil {
		last = info.ModTime()
	}

	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil || !info.ModTime().After(last) {
				continue
			}
			last = info.ModTime()
			if !send(ctx, ch, reload(path)) {
				return
			}
		}
	}
}

func reload(path string) Update {
	cfg, err := Load(path)
	return Update{Config: cfg, Err: err}
}

func send(ctx context.Context, ch chan<- Update, u Update) bool {
	select {
	case ch <- u:
		return true
	case <-ctx.Done():
		return false
	}
}
