// SPDX-License-Identifier: MIT

package jobs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func startWatch(t *testing.T, opts WatchOptions) (cancel func()) {
	t.Helper()
	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, opts) }()

	// Give the watcher time to register its directories.
	time.Sleep(100 * time.Millisecond)

	return func() {
		stop()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("Watch did not return after cancel")
		}
	}
}

func TestWatchCoalescesWrites(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	target := filepath.Join(dir, "epg.xml")
	require.NoError(t, os.WriteFile(target, []byte("v0"), 0o600))

	calls := make(chan []string, 8)
	cancel := startWatch(t, WatchOptions{
		Paths:    []string{target},
		Debounce: 150 * time.Millisecond,
		OnChange: func(_ context.Context, changed []string) error {
			calls <- changed
			return nil
		},
	})
	defer cancel()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(target, []byte("v"+string(rune('1'+i))), 0o600))
		time.Sleep(20 * time.Millisecond)
	}

	select {
	case changed := <-calls:
		assert.Equal(t, []string{target}, changed)
	case <-time.After(3 * time.Second):
		t.Fatal("OnChange was not called")
	}

	select {
	case changed := <-calls:
		t.Fatalf("burst produced a second callback: %v", changed)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatchIgnoresUnrelatedFiles(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	target := filepath.Join(dir, "epg.xml")
	require.NoError(t, os.WriteFile(target, []byte("v0"), 0o600))

	calls := make(chan []string, 1)
	cancel := startWatch(t, WatchOptions{
		Paths:    []string{target},
		Debounce: 50 * time.Millisecond,
		OnChange: func(_ context.Context, changed []string) error {
			calls <- changed
			return nil
		},
	})
	defer cancel()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "clean_epg.xml"), []byte("out"), 0o600))

	select {
	case changed := <-calls:
		t.Fatalf("unexpected callback for %v", changed)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchSeesAtomicReplace(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	target := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(target, []byte("a: 1"), 0o600))

	calls := make(chan []string, 4)
	cancel := startWatch(t, WatchOptions{
		Paths:    []string{target},
		Debounce: 50 * time.Millisecond,
		OnChange: func(_ context.Context, changed []string) error {
			calls <- changed
			return errors.New("handler errors are logged, not fatal")
		},
	})
	defer cancel()

	tmp := filepath.Join(dir, ".config.yaml.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("a: 2"), 0o600))
	require.NoError(t, os.Rename(tmp, target))

	select {
	case changed := <-calls:
		assert.Equal(t, []string{target}, changed)
	case <-time.After(3 * time.Second):
		t.Fatal("rename onto watched file was not reported")
	}
}

func TestWatchRequiresPaths(t *testing.T) {
	err := Watch(context.Background(), WatchOptions{Paths: []string{""}})
	assert.ErrorContains(t, err, "no paths")
}
