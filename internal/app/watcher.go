package app

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 500 * time.Millisecond

// ConfigWatcher reloads the configuration file when it changes on disk.
// Editors that replace the file atomically generate bursts of events, so
// reloads are debounced.
type ConfigWatcher struct {
	path    string
	log     *slog.Logger
	watcher *fsnotify.Watcher
	onLoad  func(*Config)

	mu    sync.Mutex
	timer *time.Timer
	done  chan struct{}
}

// WatchConfig starts watching the config file's directory (watching the
// file itself breaks on atomic replacement) and invokes onLoad with each
// successfully reloaded configuration.
func WatchConfig(path string, log *slog.Logger, onLoad func(*Config)) (*ConfigWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	cw := &ConfigWatcher{
		path:    path,
		log:     log,
		watcher: w,
		onLoad:  onLoad,
		done:    make(chan struct{}),
	}
	go cw.loop()
	return cw, nil
}

// Close stops the watcher.
func (cw *ConfigWatcher) Close() error {
	close(cw.done)
	cw.mu.Lock()
	if cw.timer != nil {
		cw.timer.Stop()
	}
	cw.mu.Unlock()
	return cw.watcher.Close()
}

func (cw *ConfigWatcher) loop() {
	for {
		select {
		case <-cw.done:
			return

		case ev, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(cw.path) {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				cw.schedule()
			}

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.log.Warn("config watcher error", "error", err)
		}
	}
}

func (cw *ConfigWatcher) schedule() {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	if cw.timer != nil {
		cw.timer.Reset(reloadDebounce)
		return
	}
	cw.timer = time.AfterFunc(reloadDebounce, cw.reload)
}

func (cw *ConfigWatcher) reload() {
	cw.mu.Lock()
	cw.timer = nil
	cw.mu.Unlock()

	cfg, err := LoadConfig(cw.path)
	if err != nil {
		cw.log.Warn("config reload failed, keeping previous settings", "error", err)
		return
	}
	cw.log.Info("config reloaded", "path", cw.path)
	cw.onLoad(cfg)
}
