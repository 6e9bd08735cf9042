package manifest

import (
	"fmt"
	"time"

	"github.com/dtnitsch/article-stats/models"
	"github.com/dtnitsch/article-stats/pkg/analytics"
	"github.com/dtnitsch/article-stats/pkg/grouping"
	"github.com/dtnitsch/article-stats/pkg/mapreduce"
	"github.com/dtnitsch/article-stats/pkg/storage"
	"gopkg.in/yaml.v3"
)

// Input is one loaded data source passed to BuildReport.
type Input struct {
	Source  string
	Dataset models.Dataset
}

// BuildReport computes word frequencies per input, reduces them, and groups the
// combined dataset by each of columns. top limits the keyword list.
func BuildReport(inputs []Input, a *analytics.Analytics, columns []string, top int, s *storage.Storage) (*Report, error) {
	report := &Report{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	var combined models.Dataset
	intermediate := make([]analytics.FrequencyTable, 0, len(inputs))
	for _, in := range inputs {
		summary := InputSummary{Source: in.Source, Rows: in.Dataset.Len()}
		// Non-file sources (database tables, collections) have no stats.
		if s != nil && s.HasFile(in.Source) {
			if stats, err := s.GetFileStats(in.Source); err == nil {
				summary.SizeBytes = stats.SizeBytes
			}
		}
		report.Inputs = append(report.Inputs, summary)

		intermediate = append(intermediate, mapreduce.Map(in.Dataset, a))
		combined = append(combined, in.Dataset...)
	}

	counts := mapreduce.Reduce(intermediate)
	report.Rows = combined.Len()
	report.TotalTokens = counts.Total()
	report.DistinctTokens = len(counts)
	report.TopKeywords = mapreduce.TopKeywords(counts, top)

	for _, column := range columns {
		summary, err := grouping.GroupBy(combined, column)
		if err != nil {
			return nil, fmt.Errorf("error grouping by %q: %w", column, err)
		}
		report.Groupings = append(report.Groupings, summary)
	}

	return report, nil
}

// SaveReport writes report as YAML to path and returns the path written.
// An empty path defaults to results/report-<date>.yaml.
func SaveReport(report *Report, path string, s *storage.Storage) (string, error) {
	if path == "" {
		path = fmt.Sprintf("results/report-%s.yaml", time.Now().Format("2006-01-02"))
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("error marshalling report: %w", err)
	}

	if err := s.SaveFile(path, data); err != nil {
		return "", fmt.Errorf("error saving report: %w", err)
	}

	return path, nil
}
