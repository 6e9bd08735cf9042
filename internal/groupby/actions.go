package groupby

import (
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/article-stats/internal/common"
	"github.com/dtnitsch/article-stats/pkg/grouping"
	"github.com/urfave/cli/v2"
)

func GroupByAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	column := strings.TrimSpace(c.String("column"))
	if column == "" {
		return fmt.Errorf("no column provided via --column flag")
	}

	cfg, err := common.ResolveConfig(c)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	inputs, err := common.LoadInputs(c, cfg, logger)
	if err != nil {
		return err
	}

	combined := common.Combine(inputs)
	summary, err := grouping.GroupBy(combined, column)
	if err != nil {
		return fmt.Errorf("failed to group by %q: %w", column, err)
	}
	logger.Info("Grouped articles", "column", column, "rows", combined.Len(), "groups", len(summary.Groups))

	return common.WriteOutput(c, common.Output{
		Value:   summary,
		Header:  summary.Columns(),
		Records: summary.Records(),
		Text: func(w io.Writer) error {
			return printSummary(w, summary)
		},
	}, cfg.Format, logger)
}

// printSummary writes the summary as an aligned table.
func printSummary(w io.Writer, summary *grouping.Summary) error {
	header := summary.Columns()
	records := summary.Records()

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len([]rune(h))
	}
	for _, rec := range records {
		for i, cell := range rec {
			if n := len([]rune(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	writeRow := func(cells []string) error {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = cell + strings.Repeat(" ", widths[i]-len([]rune(cell)))
		}
		_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
		return err
	}

	if err := writeRow(header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := writeRow(rec); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nTotal: %d groups, %d articles\n", len(summary.Groups), summary.TotalCount())
	return err
}
