package manifest

import "github.com/dtnitsch/article-stats/pkg/grouping"

// Report is the summary written by the report command.
// It combines the title word frequencies and the grouped engagement metrics
// of one dataset, so a reader does not need to open the raw data.
type Report struct {
	GeneratedAt    string              `json:"generated_at" yaml:"generated_at"`
	Inputs         []InputSummary      `json:"inputs" yaml:"inputs"`
	Rows           int                 `json:"rows" yaml:"rows"`
	TotalTokens    int                 `json:"total_tokens" yaml:"total_tokens"`
	DistinctTokens int                 `json:"distinct_tokens" yaml:"distinct_tokens"`
	TopKeywords    []string            `json:"top_keywords" yaml:"top_keywords"`
	Groupings      []*grouping.Summary `json:"groupings,omitempty" yaml:"groupings,omitempty"`
}

// InputSummary describes one data source of a report.
type InputSummary struct {
	Source    string `json:"source" yaml:"source"`
	Rows      int    `json:"rows" yaml:"rows"`
	SizeBytes int64  `json:"size_bytes,omitempty" yaml:"size_bytes,omitempty"`
}
