package db

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/article-stats/internal/common"
	dbpkg "github.com/dtnitsch/article-stats/pkg/db"
	"github.com/urfave/cli/v2"
)

// ImportAction copies every loaded input into the sqlite articles table.
func ImportAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.ResolveConfig(c)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	inputs, err := common.LoadInputs(c, cfg, logger)
	if err != nil {
		return err
	}

	path := c.String("db")
	if path == "" {
		path = dbpkg.DefaultDBName
	}
	database, err := dbpkg.OpenSQLite(path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	total := 0
	for _, in := range inputs {
		n, err := database.InsertArticles(contextOf(c), in.Dataset)
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", in.Source, err)
		}
		logger.Info("Imported articles", "source", in.Source, "rows", n)
		total += n
	}

	fmt.Fprintf(c.App.Writer, "Imported %d articles into %s\n", total, path)
	return nil
}

// ShowAction prints the first rows of the articles table of a sqlite database.
func ShowAction(c *cli.Context) error {
	path := c.String("db")
	if path == "" {
		path = dbpkg.DefaultDBName
	}
	database, err := dbpkg.OpenSQLite(path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	ds, err := database.LoadTable(contextOf(c), "articles")
	if err != nil {
		return fmt.Errorf("failed to load articles: %w", err)
	}

	if len(ds) == 0 {
		fmt.Fprintln(c.App.Writer, "No articles found")
		return nil
	}

	limit := c.Int("limit")
	if limit <= 0 || limit > len(ds) {
		limit = len(ds)
	}

	w := c.App.Writer
	// Print table header
	fmt.Fprintf(w, "%-6s %-10s %-8s %-10s %-50s\n", "ID", "Views", "Likes", "Hits", "Title")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for _, row := range ds[:limit] {
		fmt.Fprintf(w, "%-6v %-10v %-8v %-10v %-50s\n",
			cell(row["article_id"]),
			cell(row["views"]),
			cell(row["likes"]),
			cell(row["hits"]),
			truncate(fmt.Sprint(cell(row["title"])), 50),
		)
	}

	fmt.Fprintf(w, "\nTotal: %d articles\n", len(ds))
	return nil
}
