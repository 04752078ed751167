// Package cleaner connects a clipboard backend to the furigana rewriter.
package cleaner

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"go.klb.dev/furiclean/internal/clip"
	"go.klb.dev/furiclean/internal/furigana"
	"go.klb.dev/furiclean/internal/logging"
	"go.klb.dev/furiclean/internal/script"
)

// Stats counts what the cleaner has done since it started.
type Stats struct {
	Events        int
	Rewritten     int
	Unchanged     int
	ReadFailures  int
	WriteFailures int
	WatchErrors   int
}

// Cleaner rewrites the system clipboard whenever it changes.
type Cleaner struct {
	backend clip.Backend
	rw      *furigana.Rewriter
	policy  clip.RetryPolicy

	mu    sync.Mutex
	stats Stats
}

// New creates a cleaner but does not start it.
func New(backend clip.Backend, rw *furigana.Rewriter, policy clip.RetryPolicy) *Cleaner {
	return &Cleaner{
		backend: backend,
		rw:      rw,
		policy:  policy,
	}
}

// Stats returns a snapshot of the counters.
func (c *Cleaner) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Run handles clipboard events one at a time until ctx is cancelled or the
// backend's watch channel is closed.
func (c *Cleaner) Run(ctx context.Context) {
	slog.Info("clipboard cleaner started", "backend", c.backend.Name())
	events := c.backend.Watch()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.Err != nil {
				c.count(func(s *Stats) { s.WatchErrors++ })
				slog.Warn("clipboard watch error", "err", ev.Err)
				continue
			}
			c.Handle()
		}
	}
}

// Handle processes a single clipboard change. It reports whether the
// clipboard was rewritten.
func (c *Cleaner) Handle() bool {
	c.count(func(s *Stats) { s.Events++ })

	text, err := c.policy.ReadText(c.backend)
	if err != nil {
		c.count(func(s *Stats) { s.ReadFailures++ })
		if errors.Is(err, clip.ErrNoText) {
			slog.Debug("clipboard change ignored", "reason", err)
		} else {
			slog.Warn("clipboard read failed", "err", err)
		}
		return false
	}

	out, ok := c.rw.Rewrite(text)
	if !ok {
		c.count(func(s *Stats) { s.Unchanged++ })
		if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
			slog.Debug("clipboard left unchanged",
				"bytes", len(text),
				"jp_ratio", script.Ratio(text),
			)
		}
		return false
	}

	if err := c.backend.WriteText(out); err != nil {
		c.count(func(s *Stats) { s.WriteFailures++ })
		slog.Error("clipboard write failed", "err", err)
		return false
	}
	c.count(func(s *Stats) { s.Rewritten++ })
	logging.LogRewrite(text, out)
	return true
}

func (c *Cleaner) count(f func(*Stats)) {
	c.mu.Lock()
	f(&c.stats)
	c.mu.Unlock()
}
