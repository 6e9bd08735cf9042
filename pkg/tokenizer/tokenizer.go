// Package tokenizer splits cleaned text into word tokens.
package tokenizer

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tokenizer turns text into an ordered list of tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// WordTokenizer emits maximal runs of word characters (letters, combining marks,
// digits and underscore) after NFC normalisation.
type WordTokenizer struct{}

func (WordTokenizer) Tokenize(text string) []string {
	return strings.FieldsFunc(norm.NFC.String(text), func(r rune) bool {
		return !isWordRune(r)
	})
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r)
}

// WhitespaceTokenizer splits on Unicode whitespace only, keeping symbols inside tokens.
type WhitespaceTokenizer struct{}

func (WhitespaceTokenizer) Tokenize(text string) []string {
	return strings.Fields(text)
}

// ByName resolves a tokenizer from its CLI name.
func ByName(name string) (Tokenizer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "word":
		return WordTokenizer{}, nil
	case "whitespace":
		return WhitespaceTokenizer{}, nil
	default:
		return nil, fmt.Errorf("unknown tokenizer %q (valid: word, whitespace)", name)
	}
}
