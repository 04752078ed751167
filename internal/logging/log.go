package logging

import (
	"context"
	"log/slog"
	"unicode/utf8"
)

const previewRunes = 120

// LogRewrite logs a clipboard rewrite at INFO (byte sizes) and DEBUG (text
// preview up to 120 characters of each side).
func LogRewrite(before, after string) {
	slog.Info("clipboard rewritten", "before_bytes", len(before), "after_bytes", len(after))

	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	slog.Debug("clipboard rewrite", "before", Preview(before), "after", Preview(after))
}

// Preview truncates s to 120 characters, appending an ellipsis when cut.
func Preview(s string) string {
	if utf8.RuneCountInString(s) <= previewRunes {
		return s
	}
	n := 0
	for i := range s {
		if n == previewRunes {
			return s[:i] + "…"
		}
		n++
	}
	return s
}
