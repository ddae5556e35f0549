package main

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 250 * time.Millisecond

// watch reloads the reminders and runs the window again whenever one of
// the reminder files changes, until ctx is done.
func (a *app) watch(ctx context.Context, onChange func(context.Context) error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	files := make(map[string]struct{}, len(a.opts.files))
	dirs := make(map[string]struct{})
	for _, file := range a.opts.files {
		path, err := filepath.Abs(file)
		if err != nil {
			return err
		}
		files[path] = struct{}{}
		dirs[filepath.Dir(path)] = struct{}{}
	}
	// editors replace files on save, so the directories are watched
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return err
		}
	}

	var (
		timerMtx sync.Mutex
		timer    *time.Timer
	)
	debounce := func() {
		timerMtx.Lock()
		defer timerMtx.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(watchDebounce, func() {
			if err := a.reload(); err != nil {
				a.logger.Error("Reload failed", "error", err)
				return
			}
			if err := onChange(ctx); err != nil {
				a.logger.Error("Run failed", "error", err)
			}
		})
	}
	defer func() {
		timerMtx.Lock()
		if timer != nil {
			timer.Stop()
		}
		timerMtx.Unlock()
	}()

	a.logger.Info("Watching reminder files", "files", len(files))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if _, watched := files[ev.Name]; !watched {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				a.logger.Debug("Reminder file changed", "file", ev.Name, "op", ev.Op.String())
				debounce()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("Watcher error", "error", err)
		}
	}
}
