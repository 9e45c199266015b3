package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"calcsat/hal"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zapcore"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("Load(\"\") mismatch (-want +got):\n%s", diff)
	}

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Display.Cols)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calcsat.yaml")
	writeFile(t, path, `
display:
  cols: 20
runner:
  hz: 120
logging:
  level: DEBUG
keymap:
  enter: "*"
  x: "#"
watch: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Display.Cols = 20
	want.Runner.Hz = 120
	want.Logging.Level = "DEBUG"
	want.Keymap = map[string]string{"enter": "*", "x": "#"}
	want.Watch = true
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("Load() mismatch (-want +got):\n%s", diff)
	}

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	km, err := cfg.KeymapTable()
	require.NoError(t, err)
	sym, ok := km.Translate(hal.KeyEvent{Press: true, Rune: 'x'})
	require.True(t, ok)
	assert.Equal(t, '#', sym)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"cols":      "display:\n  cols: 4\n",
		"rows":      "display:\n  rows: 9\n",
		"hz":        "runner:\n  hz: 0\n",
		"key_every": "runner:\n  key_every: -1\n",
		"level":     "logging:\n  level: loud\n",
		"key name":  "keymap:\n  pageup: \"1\"\n",
		"symbol":    "keymap:\n  x: \"Z\"\n",
	}
	dir := t.TempDir()
	for name, body := range cases {
		path := filepath.Join(dir, "bad.yaml")
		writeFile(t, path, body)
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalid, name)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "display: [")
	_, err := Load(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestWatcherReloads(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "calcsat.yaml")
	writeFile(t, path, "runner:\n  hz: 30\n")

	changes := make(chan Config, 4)
	errs := make(chan error, 4)
	w, err := NewWatcher(path, func(c Config) { changes <- c }, func(err error) { errs <- err })
	require.NoError(t, err)
	w.Debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)
	defer w.Stop()

	writeFile(t, path, "runner:\n  hz: 90\n")
	select {
	case cfg := <-changes:
		assert.Equal(t, 90, cfg.Runner.Hz)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}

	writeFile(t, path, "runner:\n  hz: 0\n")
	select {
	case err := <-errs:
		assert.ErrorIs(t, err, ErrInvalid)
	case <-time.After(5 * time.Second):
		t.Fatal("no error after invalid write")
	}
}

func TestWatcherStopAfterCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "calcsat.yaml")
	writeFile(t, path, "")
	w, err := NewWatcher(path, nil, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	cancel()
	w.Stop()
	w.Stop()
}
