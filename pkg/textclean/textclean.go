// Package textclean strips fixed character sets out of free text.
package textclean

import (
	"strings"
	"unicode"
)

// Punctuation is the ASCII punctuation set.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// StopChars are removed from titles before tokenizing: ASCII punctuation, newline,
// non-breaking space, tab, guillemets, em/en dashes and the ellipsis.
const StopChars = Punctuation + "\n\u00a0«»\t—…–"

// RemoveChars returns text with every rune that occurs in chars removed.
func RemoveChars(text, chars string) string {
	if text == "" || chars == "" {
		return text
	}
	set := runeSet(chars)
	return strings.Map(func(r rune) rune {
		if _, drop := set[r]; drop {
			return -1
		}
		return r
	}, text)
}

// Strip behaves like RemoveChars except that whitespace runes found in chars
// become a plain space, so words on either side of a newline or tab stay apart.
func Strip(text, chars string) string {
	if text == "" || chars == "" {
		return text
	}
	set := runeSet(chars)
	return strings.Map(func(r rune) rune {
		if _, hit := set[r]; !hit {
			return r
		}
		if unicode.IsSpace(r) {
			return ' '
		}
		return -1
	}, text)
}

func runeSet(chars string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return set
}
