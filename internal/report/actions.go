package report

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/article-stats/internal/common"
	"github.com/dtnitsch/article-stats/pkg/analytics"
	"github.com/dtnitsch/article-stats/pkg/manifest"
	"github.com/dtnitsch/article-stats/pkg/storage"
	"github.com/urfave/cli/v2"
)

func ReportAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.ResolveConfig(c)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	inputs, err := common.LoadInputs(c, cfg, logger)
	if err != nil {
		return err
	}

	a, err := common.ResolveAnalytics(cfg, analytics.JoinTitles(common.Combine(inputs)), logger)
	if err != nil {
		return fmt.Errorf("failed to configure word counter: %w", err)
	}

	var columns []string
	for _, col := range c.StringSlice("column") {
		if col = strings.TrimSpace(col); col != "" {
			columns = append(columns, col)
		}
	}

	s := &storage.Storage{}
	r, err := manifest.BuildReport(inputs, a, columns, cfg.Top, s)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	path, err := manifest.SaveReport(r, c.String("output"), s)
	if err != nil {
		return err
	}
	logger.Info("Report saved", "path", path, "rows", r.Rows, "groupings", len(r.Groupings))

	if !c.Bool("quiet") {
		fmt.Fprintf(c.App.Writer, "Report saved to: %s\n", path)
	}
	return nil
}
