package mapreduce

import (
	"github.com/dtnitsch/article-stats/models"
	"github.com/dtnitsch/article-stats/pkg/analytics"
)

// Map generates a word frequency table for the titles of a single dataset.
func Map(ds models.Dataset, a *analytics.Analytics) analytics.FrequencyTable {
	return a.ComputeFrequentWords(ds)
}

// Reduce aggregates a slice of frequency tables into a single table.
func Reduce(intermediate []analytics.FrequencyTable) analytics.FrequencyTable {
	finalResults := make(analytics.FrequencyTable)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}
