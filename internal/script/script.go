// Package script guesses whether clipboard text is written in Japanese.
package script

import (
	"unicode"

	"golang.org/x/text/width"
)

// IsJapanese reports whether text contains at least one kana character.
// Half-width katakana count. Han ideographs alone do not, since they are
// shared with Chinese.
func IsJapanese(text string) bool {
	for _, r := range text {
		if isKana(fold(r)) {
			return true
		}
	}
	return false
}

// Ratio returns the share of letters in text that are kana or Han, in [0, 1].
// Text without letters has a ratio of 0.
func Ratio(text string) float64 {
	var letters, jp int
	for _, r := range text {
		r = fold(r)
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if isKana(r) || unicode.Is(unicode.Han, r) {
			jp++
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(jp) / float64(letters)
}

// fold maps half-width and full-width compatibility forms to their
// canonical width.
func fold(r rune) rune {
	if f := width.LookupRune(r).Folded(); f != 0 {
		return f
	}
	return r
}

func isKana(r rune) bool {
	return unicode.In(r, unicode.Hiragana, unicode.Katakana)
}
