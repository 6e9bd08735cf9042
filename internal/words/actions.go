package words

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dtnitsch/article-stats/internal/common"
	"github.com/dtnitsch/article-stats/pkg/analytics"
	"github.com/dtnitsch/article-stats/pkg/mapreduce"
	"github.com/urfave/cli/v2"
)

// Result is the output of the words command.
type Result struct {
	Rows           int                   `json:"rows" yaml:"rows"`
	TotalTokens    int                   `json:"total_tokens" yaml:"total_tokens"`
	DistinctTokens int                   `json:"distinct_tokens" yaml:"distinct_tokens"`
	Words          []analytics.WordCount `json:"words" yaml:"words"`
}

func WordsAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.ResolveConfig(c)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	inputs, err := common.LoadInputs(c, cfg, logger)
	if err != nil {
		return err
	}

	combined := common.Combine(inputs)
	a, err := common.ResolveAnalytics(cfg, analytics.JoinTitles(combined), logger)
	if err != nil {
		return fmt.Errorf("failed to configure word counter: %w", err)
	}

	// Map per input, then reduce.
	intermediate := make([]analytics.FrequencyTable, 0, len(inputs))
	for _, in := range inputs {
		intermediate = append(intermediate, mapreduce.Map(in.Dataset, a))
	}
	counts := mapreduce.Reduce(intermediate)
	logger.Info("Counted title words", "inputs", len(inputs), "rows", combined.Len(), "distinct", len(counts))

	top := counts.MostCommon(cfg.Top)
	result := Result{
		Rows:           combined.Len(),
		TotalTokens:    counts.Total(),
		DistinctTokens: len(counts),
		Words:          top,
	}

	records := make([][]string, len(top))
	for i, wc := range top {
		records[i] = []string{wc.Word, strconv.Itoa(wc.Count)}
	}

	return common.WriteOutput(c, common.Output{
		Value:   result,
		Header:  []string{"word", "count"},
		Records: records,
		Text: func(w io.Writer) error {
			return mapreduce.PrintTopKeywords(w, counts, cfg.Top)
		},
	}, cfg.Format, logger)
}
