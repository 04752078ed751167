//go:build darwin

package clip

// #cgo CFLAGS: -x objective-c
// #cgo LDFLAGS: -framework Cocoa
// #import <Cocoa/Cocoa.h>
//
// NSInteger furiclean_changeCount() {
//     return [[NSPasteboard generalPasteboard] changeCount];
// }
import "C"

import (
	"fmt"
	"log/slog"
	"time"

	"golang.design/x/clipboard"
)

const darwinPollInterval = 100 * time.Millisecond

type darwinBackend struct {
	lastChange C.NSInteger
	initErr    error
	watchCh    chan Event
	done       chan struct{}
}

// New returns the macOS clipboard backend.
// clipboard.Init is called here rather than in init() so that the clean
// sub-command, which never constructs a Backend, doesn't log spurious
// warnings.
func New() Backend {
	b := &darwinBackend{
		lastChange: C.furiclean_changeCount(),
		watchCh:    make(chan Event, 1),
		done:       make(chan struct{}),
	}
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard init failed", "err", err)
		b.initErr = fmt.Errorf("clipboard init: %w", err)
	}
	go b.poll()
	return b
}

func (b *darwinBackend) Name() string { return "macOS NSPasteboard" }

func (b *darwinBackend) poll() {
	t := time.NewTicker(darwinPollInterval)
	defer t.Stop()
	for {
		select {
		case <-b.done:
			return
		case <-t.C:
			cc := C.furiclean_changeCount()
			if cc != b.lastChange {
				b.lastChange = cc
				notify(b.watchCh, Event{})
			}
		}
	}
}

func (b *darwinBackend) ReadText() (string, error) {
	if b.initErr != nil {
		return "", b.initErr
	}
	return textOrErr(clipboard.Read(clipboard.FmtText))
}

func (b *darwinBackend) WriteText(text string) error {
	if b.initErr != nil {
		return b.initErr
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (b *darwinBackend) Watch() <-chan Event { return b.watchCh }
func (b *darwinBackend) Close()              { close(b.done) }
