package dictionary

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordListOrderAndRank(t *testing.T) {
	wl := NewWordList([]string{"the", "hello", "help", "the", "he"})
	assert.Equal(t, 5, wl.Len())
	assert.Equal(t, "help", wl.Word(2))

	rank, ok := wl.Rank("the")
	require.True(t, ok)
	assert.Equal(t, 0, rank, "repeats keep the first rank")

	rank, ok = wl.Rank("he")
	require.True(t, ok)
	assert.Equal(t, 4, rank)

	_, ok = wl.Rank("hel")
	assert.False(t, ok)

	assert.True(t, wl.HasPrefix("hel"))
	assert.True(t, wl.HasPrefix(""))
	assert.False(t, wl.HasPrefix("x"))

	var seen []string
	wl.Each(func(_ int, w string) bool {
		seen = append(seen, w)
		return len(seen) < 3
	})
	assert.Equal(t, []string{"the", "hello", "help"}, seen)
}

func TestLoad(t *testing.T) {
	input := "the\r\nHello\n\nit's\nhelp\n  and  \n"

	wl, stats, err := Load(strings.NewReader(input), LoadOptions{LowercaseOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 2, wl.Len())
	assert.Equal(t, "the", wl.Word(0))
	assert.Equal(t, "help", wl.Word(1))
	assert.Equal(t, 6, stats.Lines)
	assert.Equal(t, 4, stats.Skipped)

	wl, _, err = Load(strings.NewReader(input), LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "Hello", "it's", "help", "and"}, words(wl))

	wl, _, err = Load(strings.NewReader(input), LoadOptions{MaxWords: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "Hello"}, words(wl))
}

func TestLoadEmpty(t *testing.T) {
	_, _, err := Load(strings.NewReader("\n\nABC\n"), LoadOptions{LowercaseOnly: true})
	assert.True(t, errors.Is(err, ErrEmptyWordList))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\nplover\n"), 0o644))

	wl, err := LoadFile(path, LoadOptions{LowercaseOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "plover"}, words(wl))

	_, err = LoadFile(filepath.Join(dir, "missing.txt"), LoadOptions{})
	assert.Error(t, err)

	_, err = LoadFile(dir, LoadOptions{})
	assert.Error(t, err)
}

func TestValidateFileFormat(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"words":      "a\n",
		"words.txt":  "a\n",
		"words.json": "[]",
		"empty.txt":  "",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	assert.NoError(t, ValidateFileFormat(filepath.Join(dir, "words"), FormatText))
	assert.NoError(t, ValidateFileFormat(filepath.Join(dir, "words.txt"), FormatText))
	assert.Error(t, ValidateFileFormat(filepath.Join(dir, "words.json"), FormatText))
	assert.Error(t, ValidateFileFormat(filepath.Join(dir, "empty.txt"), FormatText))
	assert.Error(t, ValidateFileFormat(filepath.Join(dir, "words.txt"), FormatUnknown))
	assert.Error(t, ValidateFileFormat(dir, FormatText))
}

func TestWatcherReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0o644))
	initial, err := LoadFile(path, LoadOptions{})
	require.NoError(t, err)

	w := NewWatcher(path, LoadOptions{}, initial)
	var got *WordList
	w.OnReload(func(wl *WordList) { got = wl })

	require.NoError(t, os.WriteFile(path, []byte("plover\nhello\n"), 0o644))
	require.NoError(t, w.Reload())
	assert.Equal(t, []string{"plover", "hello"}, words(w.Current()))
	assert.Same(t, w.Current(), got)
	assert.Equal(t, []string{"hello"}, words(initial), "old lists are untouched")

	require.NoError(t, os.WriteFile(path, []byte("\n"), 0o644))
	assert.Error(t, w.Reload())
	assert.Equal(t, []string{"plover", "hello"}, words(w.Current()))
}

func TestConcurrentReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\nplover\n"), 0o644))
	initial, err := LoadFile(path, LoadOptions{})
	require.NoError(t, err)

	w := NewWatcher(path, LoadOptions{}, initial)
	var inFlight atomic.Int32
	var overlapped atomic.Bool
	var last atomic.Pointer[WordList]
	w.OnReload(func(wl *WordList) {
		if inFlight.Add(1) > 1 {
			overlapped.Store(true)
		}
		time.Sleep(time.Millisecond)
		last.Store(wl)
		inFlight.Add(-1)
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, w.Reload())
		}()
	}
	wg.Wait()

	assert.False(t, overlapped.Load(), "reloads must not interleave")
	assert.Same(t, w.Current(), last.Load(), "the list in use is the one last announced")
}

func TestWatcherRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0o644))
	initial, err := LoadFile(path, LoadOptions{})
	require.NoError(t, err)

	w := NewWatcher(path, LoadOptions{}, initial)
	w.SetDelay(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// keep rewriting until the watcher is registered and picks it up
	require.Eventually(t, func() bool {
		if w.Current().Len() == 2 {
			return true
		}
		_ = os.WriteFile(path, []byte("hello\nworld\n"), 0o644)
		return false
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func words(wl *WordList) []string {
	var out []string
	wl.Each(func(_ int, w string) bool {
		out = append(out, w)
		return true
	})
	return out
}
