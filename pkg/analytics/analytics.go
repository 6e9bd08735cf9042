// Package analytics computes word frequencies over the titles of an article dataset.
package analytics

import (
	"sort"
	"strings"

	"github.com/dtnitsch/article-stats/models"
	"github.com/dtnitsch/article-stats/pkg/textclean"
	"github.com/dtnitsch/article-stats/pkg/tokenizer"
)

// Analytics holds the immutable configuration of the frequent-word computer.
// A zero value uses DefaultStopWords, the word tokenizer and textclean.StopChars.
type Analytics struct {
	StopWords StopWords
	Tokenizer tokenizer.Tokenizer
	StopChars string
}

// NewAnalytics returns an Analytics using the given stop-words and tokenizer.
// A nil tokenizer falls back to tokenizer.WordTokenizer.
func NewAnalytics(stopWords StopWords, tok tokenizer.Tokenizer) *Analytics {
	if tok == nil {
		tok = tokenizer.WordTokenizer{}
	}
	return &Analytics{
		StopWords: stopWords,
		Tokenizer: tok,
		StopChars: textclean.StopChars,
	}
}

func (a *Analytics) stopWords() StopWords {
	if a.StopWords == nil {
		return DefaultStopWords()
	}
	return a.StopWords
}

func (a *Analytics) tokenizer() tokenizer.Tokenizer {
	if a.Tokenizer == nil {
		return tokenizer.WordTokenizer{}
	}
	return a.Tokenizer
}

func (a *Analytics) stopChars() string {
	if a.StopChars == "" {
		return textclean.StopChars
	}
	return a.StopChars
}

// JoinTitles concatenates every string title of ds, each preceded by a newline.
// Rows whose title is missing or not a string are skipped.
func JoinTitles(ds models.Dataset) string {
	var sb strings.Builder
	for _, row := range ds {
		title, ok := row[models.ColumnTitle].(string)
		if !ok {
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(title)
	}
	return sb.String()
}

// ComputeFrequentWords counts the non-stop-word tokens of all titles in ds.
func (a *Analytics) ComputeFrequentWords(ds models.Dataset) FrequencyTable {
	return a.WordFrequency(JoinTitles(ds))
}

// WordFrequency strips stop characters from text, tokenizes it and counts every
// token that is not a stop-word.
func (a *Analytics) WordFrequency(text string) FrequencyTable {
	frequencies := make(FrequencyTable)
	if text == "" {
		return frequencies
	}

	stop := a.stopWords()
	cleaned := textclean.Strip(text, a.stopChars())
	for _, token := range a.tokenizer().Tokenize(cleaned) {
		token = strings.TrimSpace(token)
		if token == "" || stop.Contains(token) {
			continue
		}
		frequencies[token]++
	}

	return frequencies
}

// FrequencyTable maps a token to the number of times it occurred.
type FrequencyTable map[string]int

// WordCount is one entry of a FrequencyTable.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Get returns the count of word, zero when absent.
func (ft FrequencyTable) Get(word string) int {
	return ft[word]
}

// Total returns the sum of all counts, i.e. the number of surviving tokens.
func (ft FrequencyTable) Total() int {
	total := 0
	for _, c := range ft {
		total += c
	}
	return total
}

// MostCommon returns the n most frequent words, highest count first. Equal counts
// are ordered by word so the output is stable. n <= 0 returns every entry.
func (ft FrequencyTable) MostCommon(n int) []WordCount {
	counts := make([]WordCount, 0, len(ft))
	for k, v := range ft {
		counts = append(counts, WordCount{k, v})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Word < counts[j].Word
	})

	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
