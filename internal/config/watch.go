package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 100 * time.Millisecond

// Watcher reloads a config file when it changes on disk and publishes each
// valid result on Updates. Invalid files are logged and skipped.
type Watcher struct {
	path     string
	fs       *fsnotify.Watcher
	log      *zap.Logger
	debounce time.Duration
	updates  chan *Config
	done     chan struct{}
}

// Watch starts watching path. The parent directory is watched rather than
// the file so editors that save by rename are still seen.
func Watch(ctx context.Context, path string, log *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		fs:       fw,
		log:      log,
		debounce: defaultDebounce,
		updates:  make(chan *Config, 1),
		done:     make(chan struct{}),
	}
	go w.run(ctx)
	log.Debug("watching config", zap.String("path", abs))
	return w, nil
}

// Updates delivers reloaded configurations. Only the latest unread one is
// kept.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			fire = time.After(w.debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		w.log.Warn("ignoring config change", zap.String("path", w.path), zap.Error(err))
		return
	}

	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
	w.log.Info("config reloaded", zap.String("path", w.path))
}
