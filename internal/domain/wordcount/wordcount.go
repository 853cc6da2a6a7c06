// Package wordcount estimates the word count of mixed CJK/Latin text.
package wordcount

import "strings"

// CJK Unified Ideographs range counted one word per character.
const (
	cjkLo = 0x4E00
	cjkHi = 0x9FA5
)

func isCJK(r rune) bool {
	return r >= cjkLo && r <= cjkHi
}

// Count returns the estimated word count of text. Each CJK ideograph counts
// as one word; the remaining text is split on whitespace and each non-empty
// token counts as one word. CJK characters are stripped before tokenizing so
// mixed-script runs are not counted twice.
func Count(text string) int {
	if text == "" {
		return 0
	}

	cjk := 0
	var latin strings.Builder
	for _, r := range text {
		if isCJK(r) {
			cjk++
			latin.WriteByte(' ')
			continue
		}
		latin.WriteRune(r)
	}

	return cjk + len(strings.Fields(latin.String()))
}
