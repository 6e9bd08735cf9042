package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dtnitsch/article-stats/internal/db"
	"github.com/dtnitsch/article-stats/internal/groupby"
	"github.com/dtnitsch/article-stats/internal/report"
	"github.com/dtnitsch/article-stats/internal/words"
	"github.com/dtnitsch/article-stats/pkg/help"
	"github.com/urfave/cli/v2"
)

// inputFlags select the data sources shared by every analysis command.
var inputFlags = []cli.Flag{
	&cli.StringSliceFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "Dataset file (.json, .jsonl, .yaml, .csv, .xlsx); repeatable",
	},
	&cli.StringFlag{
		Name:  "db-driver",
		Value: "sqlite",
		Usage: "SQL driver for --dsn: sqlite or postgres",
	},
	&cli.StringFlag{
		Name:    "dsn",
		Usage:   "SQL data source to read the article table from",
		EnvVars: []string{"ARTSTATS_DSN"},
	},
	&cli.StringFlag{
		Name:  "table",
		Usage: "SQL table to read (default: articles)",
	},
	&cli.StringFlag{
		Name:    "mongo-uri",
		Usage:   "MongoDB connection URI",
		EnvVars: []string{"ARTSTATS_MONGO_URI"},
	},
	&cli.StringFlag{
		Name:  "mongo-db",
		Value: "amadeus",
		Usage: "MongoDB database",
	},
	&cli.StringFlag{
		Name:  "mongo-collection",
		Value: "vc_new",
		Usage: "MongoDB collection",
	},
	&cli.StringFlag{
		Name:  "cache-dir",
		Usage: "Directory for cached MongoDB snapshots; empty disables caching",
	},
	&cli.DurationFlag{
		Name:  "cache-ttl",
		Value: 24 * time.Hour,
		Usage: "Maximum age of a cached snapshot, 0 to never expire",
	},
}

var wordFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "lang",
		Usage: "Stop-word language: ru, en or auto (default: ru)",
	},
	&cli.StringSliceFlag{
		Name:  "stop-word",
		Usage: "Additional stop-word; repeatable",
	},
	&cli.StringFlag{
		Name:  "tokenizer",
		Usage: "Tokenizer: word or whitespace (default: word)",
	},
	&cli.IntFlag{
		Name:  "top",
		Usage: "Number of most common words to keep, 0 for all (default: 25)",
	},
}

func withFlags(groups ...[]cli.Flag) []cli.Flag {
	var flags []cli.Flag
	for _, g := range groups {
		flags = append(flags, g...)
	}
	return flags
}

func main() {
	app := &cli.App{
		Name:  "article-stats",
		Usage: "Word frequencies and engagement summaries for article datasets",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only log errors",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: yaml, json, csv or text (default: yaml)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write output to file instead of stdout",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "quickstart",
				Usage: "Print example invocations",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprint(c.App.Writer, help.ColdstartYAML)
					return err
				},
			},
			{
				Name:   "words",
				Usage:  "Count the most frequent words in article titles",
				Flags:  withFlags(inputFlags, wordFlags),
				Action: words.WordsAction,
			},
			{
				Name:  "groupby",
				Usage: "Sum and average views, likes, comments, favorites and hits per column value",
				Flags: withFlags(inputFlags, []cli.Flag{
					&cli.StringFlag{
						Name:     "column",
						Aliases:  []string{"c"},
						Usage:    "Column to group by",
						Required: true,
					},
				}),
				Action: groupby.GroupByAction,
			},
			{
				Name:  "report",
				Usage: "Write a YAML report with top words and grouped summaries",
				Flags: withFlags(inputFlags, wordFlags, []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "column",
						Aliases: []string{"c"},
						Usage:   "Column to group by; repeatable",
					},
				}),
				Action: report.ReportAction,
			},
			{
				Name:  "db",
				Usage: "Store articles in a local sqlite database",
				Subcommands: []*cli.Command{
					{
						Name:  "import",
						Usage: "Import inputs into the articles table",
						Flags: withFlags(inputFlags, []cli.Flag{
							&cli.StringFlag{Name: "db", Usage: "SQLite file (default: articles.db)"},
						}),
						Action: db.ImportAction,
					},
					{
						Name:  "show",
						Usage: "Print stored articles",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "db", Usage: "SQLite file (default: articles.db)"},
							&cli.IntFlag{Name: "limit", Value: 20, Usage: "Maximum rows to print, 0 for all"},
						},
						Action: db.ShowAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
