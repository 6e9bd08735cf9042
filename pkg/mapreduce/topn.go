package mapreduce

import (
	"fmt"
	"io"

	"github.com/dtnitsch/article-stats/pkg/analytics"
)

// TopKeywords returns the top N keywords as formatted strings.
// Each string is formatted as "word:count" (e.g., "нейросети:153").
func TopKeywords(wordCounts analytics.FrequencyTable, n int) []string {
	top := wordCounts.MostCommon(n)

	keywords := make([]string, len(top))
	for i, wc := range top {
		keywords[i] = fmt.Sprintf("%s:%d", wc.Word, wc.Count)
	}

	return keywords
}

// PrintTopKeywords writes the top N keywords to w in a numbered list format.
func PrintTopKeywords(w io.Writer, wordCounts analytics.FrequencyTable, n int) error {
	for i, wc := range wordCounts.MostCommon(n) {
		if _, err := fmt.Fprintf(w, "%d. %s: %d\n", i+1, wc.Word, wc.Count); err != nil {
			return err
		}
	}
	return nil
}
