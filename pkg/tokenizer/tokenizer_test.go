package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordTokenizer(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: []string{}},
		{name: "spaces only", text: "   ", want: []string{}},
		{name: "cyrillic", text: " Кот и пёс  Кот спит", want: []string{"Кот", "и", "пёс", "Кот", "спит"}},
		{name: "symbols split words", text: "C++ и Go№1", want: []string{"C", "и", "Go", "1"}},
		{name: "digits and underscore", text: "web3 x_train 2024", want: []string{"web3", "x_train", "2024"}},
		// "й" written as и + combining breve must stay one token.
		{name: "decomposed letters", text: "мои\u0306", want: []string{"мой"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordTokenizer{}.Tokenize(tt.text)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWhitespaceTokenizer(t *testing.T) {
	got := WhitespaceTokenizer{}.Tokenize("C++ и\tGo№1\n")
	assert.Equal(t, []string{"C++", "и", "Go№1"}, got)
}

func TestByName(t *testing.T) {
	tok, err := ByName("")
	require.NoError(t, err)
	assert.IsType(t, WordTokenizer{}, tok)

	tok, err = ByName("Whitespace")
	require.NoError(t, err)
	assert.IsType(t, WhitespaceTokenizer{}, tok)

	_, err = ByName("nltk")
	assert.Error(t, err)
}
