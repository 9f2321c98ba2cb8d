package config

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func waitForUpdate(t *testing.T, w *Watcher) *Config {
	t.Helper()
	select {
	case cfg := <-w.Updates():
		return cfg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
		return nil
	}
}

func TestWatcherReloadsValidChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "viewer.yaml")
	writeFile(t, path, "steps:\n  rotate: 2\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := Watch(ctx, path, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, path, "steps:\n  rotate: 3\n")
	cfg := waitForUpdate(t, w)
	assert.Equal(t, float32(3), cfg.Steps.Rotate)
}

func TestWatcherSkipsInvalidChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "viewer.yaml")
	writeFile(t, path, "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := Watch(ctx, path, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, path, "window:\n  width: -1\n")
	select {
	case cfg := <-w.Updates():
		t.Fatalf("unexpected update %+v", cfg)
	case <-time.After(500 * time.Millisecond):
	}

	writeFile(t, path, "window:\n  width: 1024\n")
	cfg := waitForUpdate(t, w)
	assert.Equal(t, 1024, cfg.Window.Width)
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "viewer.yaml")
	writeFile(t, path, "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := Watch(ctx, path, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, filepath.Join(dir, "other.yaml"), "window:\n  width: 1\n")
	select {
	case cfg := <-w.Updates():
		t.Fatalf("unexpected update %+v", cfg)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherStopsOnContextCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	ctx, cancel := context.WithCancel(context.Background())

	w, err := Watch(ctx, path, zaptest.NewLogger(t))
	require.NoError(t, err)
	cancel()

	select {
	case <-w.done:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
	require.NoError(t, w.Close())
}
