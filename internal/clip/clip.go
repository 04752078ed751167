// Package clip provides a unified interface to the system clipboard's text
// contents across platforms. Build constraints select the implementation:
//
//	clip_darwin.go   — macOS via golang.design/x/clipboard + cgo changeCount
//	clip_windows.go  — Windows via golang.design/x/clipboard + AddClipboardFormatListener
//	clip_linux.go    — Linux via golang.design/x/clipboard, polling only
//	clip_other.go    — headless / container stub
//	clip_headless.go — no-op backend shared by linux (no display) and clip_other.go
package clip

import (
	"errors"
	"fmt"
)

// ErrNoText is returned by ReadText when the clipboard is empty or holds
// something other than text. It is not worth retrying.
var ErrNoText = errors.New("clipboard holds no text")

// Event is a clipboard change notification. A non-nil Err means the watcher
// hit a problem instead of observing a change.
type Event struct {
	Err error
}

// Backend is the interface that all platform clipboard implementations satisfy.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// ReadText returns the current clipboard text.
	ReadText() (string, error)

	// WriteText replaces the clipboard contents with text.
	WriteText(text string) error

	// Watch returns a channel that receives an event whenever the clipboard
	// changes. Bursts of changes coalesce into one event. On platforms
	// without native change notification this is implemented via polling.
	// The caller should call ReadText when it receives from the channel.
	Watch() <-chan Event

	// Close releases any resources held by the backend.
	Close()
}

// DefaultRetryPolicy matches the usual contention window when another
// process holds the clipboard open.
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 10}

// RetryPolicy bounds how often a clipboard read is retried. Retries are
// immediate.
type RetryPolicy struct {
	MaxAttempts int
}

// ReadText reads from b, retrying failures other than ErrNoText until the
// attempt budget is spent.
func (p RetryPolicy) ReadText(b Backend) (string, error) {
	attempts := max(p.MaxAttempts, 1)
	var err error
	for range attempts {
		var text string
		text, err = b.ReadText()
		if err == nil {
			return text, nil
		}
		if errors.Is(err, ErrNoText) {
			return "", err
		}
	}
	return "", fmt.Errorf("clipboard read failed after %d attempts: %w", attempts, err)
}

// notify delivers ev without blocking; a pending event already covers it.
func notify(ch chan Event, ev Event) {
	select {
	case ch <- ev:
	default:
	}
}

func textOrErr(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrNoText
	}
	return string(data), nil
}
