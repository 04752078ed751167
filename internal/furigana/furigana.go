// Package furigana strips furigana filler lines from copied Japanese text.
//
// Text copied out of e-book readers and web pages that render ruby
// annotations often arrives with the readings on their own lines. A Rewriter
// drops interior lines made up only of kana (and a few filler glyphs) and
// joins what remains into a single line.
package furigana

import (
	"bytes"
	"strings"
)

// sesameDot is the emphasis mark that some readers emit as whole lines.
const sesameDot = '\ufe45'

const lineBreaks = "\r\n"

// IsSkippable reports whether every rune of segment is kana, a space, or the
// sesame dot marker. The empty string is skippable.
func IsSkippable(segment string) bool {
	for _, r := range segment {
		switch {
		case r == ' ', r == '\u3000', r == sesameDot:
		case r >= '\u3040' && r <= '\u309f': // hiragana
		case r >= '\u30a0' && r <= '\u30ff': // katakana
		case r >= '\u31f0' && r <= '\u31ff': // katakana phonetic extensions
		default:
			return false
		}
	}
	return true
}

// Detector reports whether text is Japanese enough to be worth rewriting.
type Detector func(text string) bool

// Rewriter applies the furigana filter to whole clipboard values.
// A Rewriter reuses its output buffer between calls and must not be used
// from more than one goroutine at a time.
type Rewriter struct {
	detect Detector
	buf    bytes.Buffer
}

// New returns a Rewriter gated by detect. A nil detect accepts all text.
func New(detect Detector) *Rewriter {
	if detect == nil {
		detect = func(string) bool { return true }
	}
	return &Rewriter{detect: detect}
}

// ShouldProcess reports whether text passes the content gate: it must
// contain at least one line break and be accepted by the detector.
func (rw *Rewriter) ShouldProcess(text string) bool {
	return strings.ContainsAny(text, lineBreaks) && rw.detect(text)
}

// Rewrite returns the cleaned replacement for text and true, or "" and false
// when the clipboard should be left alone.
//
// The dirty check compares against the length of the untrimmed input, so a
// result that happens to be exactly as long as the original is dropped.
func (rw *Rewriter) Rewrite(text string) (string, bool) {
	if !rw.ShouldProcess(text) {
		return "", false
	}
	out := rw.clean(text)
	if !changed(out, text) {
		return "", false
	}
	return out, true
}

// Clean applies the segment filter to text without the content gate.
func Clean(text string) string {
	var rw Rewriter
	return rw.clean(text)
}

// clean trims text, splits it on CR and LF, and concatenates the segments.
// The first and last segments are always kept; interior segments are kept
// only when non-empty and not skippable.
func (rw *Rewriter) clean(text string) string {
	defer rw.buf.Reset()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}

	parts := splitLines(trimmed)
	last := len(parts) - 1
	rw.buf.Grow(len(trimmed))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if i != 0 && i != last && (part == "" || IsSkippable(part)) {
			continue
		}
		rw.buf.WriteString(part)
	}
	return rw.buf.String()
}

// splitLines splits s on every CR and LF. A CRLF pair yields an empty
// segment between the two bytes. The result always has at least one element.
func splitLines(s string) []string {
	parts := make([]string, 0, strings.Count(s, "\n")+1)
	for {
		i := strings.IndexAny(s, lineBreaks)
		if i < 0 {
			return append(parts, s)
		}
		parts = append(parts, s[:i])
		s = s[i+1:]
	}
}

// changed is the dirty check used by Rewrite.
func changed(out, original string) bool {
	return len(out) != len(original)
}
