package common

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dtnitsch/article-stats/models"
	"github.com/dtnitsch/article-stats/pkg/analytics"
	"github.com/dtnitsch/article-stats/pkg/caching"
	"github.com/dtnitsch/article-stats/pkg/dataset"
	dbpkg "github.com/dtnitsch/article-stats/pkg/db"
	"github.com/dtnitsch/article-stats/pkg/detector"
	"github.com/dtnitsch/article-stats/pkg/manifest"
	"github.com/dtnitsch/article-stats/pkg/storage"
	"github.com/dtnitsch/article-stats/pkg/tokenizer"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// LanguageAuto asks ResolveAnalytics to detect the title language.
const LanguageAuto = "auto"

// NewLogger returns the JSON stderr logger shared by all commands.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// ResolveConfig loads the environment config and applies any flags set on the command line.
func ResolveConfig(c *cli.Context) (*models.Config, error) {
	cfg, err := models.LoadConfig()
	if err != nil {
		return nil, err
	}

	if c.IsSet("lang") {
		cfg.Language = c.String("lang")
	}
	if c.IsSet("stop-word") {
		cfg.ExtraStopWords = append(cfg.ExtraStopWords, c.StringSlice("stop-word")...)
	}
	if c.IsSet("tokenizer") {
		cfg.Tokenizer = c.String("tokenizer")
	}
	if c.IsSet("top") {
		if c.Int("top") < 0 {
			return nil, fmt.Errorf("--top must not be negative")
		}
		cfg.Top = c.Int("top")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("table") {
		cfg.Table = c.String("table")
	}
	cfg.Format = strings.ToLower(cfg.Format)

	return cfg, nil
}

// LoadInputs loads every source named by the input flags: files, a SQL table and a
// mongo collection. At least one source is required.
func LoadInputs(c *cli.Context, cfg *models.Config, logger *slog.Logger) ([]manifest.Input, error) {
	var inputs []manifest.Input
	s := &storage.Storage{}
	loader := dataset.NewLoader(s)

	for _, path := range c.StringSlice("input") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		ds, err := loader.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		logger.Info("Loaded input file", "path", path, "rows", ds.Len())
		inputs = append(inputs, manifest.Input{Source: path, Dataset: ds})
	}

	if dsn := c.String("dsn"); dsn != "" {
		ds, err := loadTable(contextOf(c), c.String("db-driver"), dsn, cfg.Table)
		if err != nil {
			return nil, err
		}
		logger.Info("Loaded table", "driver", c.String("db-driver"), "table", cfg.Table, "rows", ds.Len())
		inputs = append(inputs, manifest.Input{Source: cfg.Table, Dataset: ds})
	}

	if uri := c.String("mongo-uri"); uri != "" {
		src := dataset.MongoSource{
			URI:        uri,
			Database:   c.String("mongo-db"),
			Collection: c.String("mongo-collection"),
		}
		ds, err := loadMongo(c, src, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s.%s: %w", src.Database, src.Collection, err)
		}
		logger.Info("Loaded mongo collection", "database", src.Database, "collection", src.Collection, "rows", ds.Len())
		inputs = append(inputs, manifest.Input{Source: src.Database + "." + src.Collection, Dataset: ds})
	}

	if len(inputs) == 0 {
		return nil, fmt.Errorf("no input provided: use --input, --dsn or --mongo-uri")
	}
	return inputs, nil
}

// Combine concatenates the datasets of all inputs in order.
func Combine(inputs []manifest.Input) models.Dataset {
	var ds models.Dataset
	for _, in := range inputs {
		ds = append(ds, in.Dataset...)
	}
	return ds
}

func loadTable(ctx context.Context, driver, dsn, table string) (models.Dataset, error) {
	database, err := dbpkg.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	ds, err := database.LoadTable(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("failed to load table: %w", err)
	}
	return ds, nil
}

// loadMongo reads the collection, going through the snapshot cache when --cache-dir is set.
func loadMongo(c *cli.Context, src dataset.MongoSource, logger *slog.Logger) (models.Dataset, error) {
	dir := c.String("cache-dir")
	if dir == "" {
		return dataset.LoadMongo(contextOf(c), src)
	}

	cache, err := caching.NewCache(dir, c.Duration("cache-ttl"))
	if err != nil {
		return nil, err
	}
	key := src.URI + "/" + src.Database + "/" + src.Collection
	if data, ok := cache.Get(key); ok {
		logger.Info("Using cached snapshot", "database", src.Database, "collection", src.Collection)
		return dataset.ParseJSONLines(data)
	}

	ds, err := dataset.LoadMongo(contextOf(c), src)
	if err != nil {
		return nil, err
	}
	data, err := dataset.EncodeJSONLines(ds)
	if err != nil {
		return nil, err
	}
	if err := cache.Set(key, data); err != nil {
		logger.Warn("Failed to cache snapshot", "error", err)
	}
	return ds, nil
}

func contextOf(c *cli.Context) context.Context {
	if c.Context != nil {
		return c.Context
	}
	return context.Background()
}

// ResolveAnalytics builds the word counter for cfg. With language "auto" the
// stop-word list follows the detected language of titles, falling back to Russian.
func ResolveAnalytics(cfg *models.Config, titles string, logger *slog.Logger) (*analytics.Analytics, error) {
	lang := strings.ToLower(cfg.Language)
	if lang == LanguageAuto {
		lang = detector.NewLanguageDetector().DetectOr(titles, "ru")
		logger.Info("Detected title language", "language", lang)
	}

	stopWords, err := analytics.StopWordsFor(lang, cfg.ExtraStopWords...)
	if err != nil {
		return nil, err
	}
	tok, err := tokenizer.ByName(cfg.Tokenizer)
	if err != nil {
		return nil, err
	}
	return analytics.NewAnalytics(stopWords, tok), nil
}

// Output is a command result renderable in every supported format.
type Output struct {
	Value   any
	Header  []string
	Records [][]string
	Text    func(w io.Writer) error
}

// Render encodes out in format: yaml, json, csv or text.
func Render(out Output, format string) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case "", "yaml":
		data, err := yaml.Marshal(out.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal yaml: %w", err)
		}
		return data, nil
	case "json":
		data, err := json.MarshalIndent(out.Value, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal json: %w", err)
		}
		return append(data, '\n'), nil
	case "csv":
		w := csv.NewWriter(&buf)
		if err := w.Write(out.Header); err != nil {
			return nil, fmt.Errorf("failed to write csv: %w", err)
		}
		if err := w.WriteAll(out.Records); err != nil {
			return nil, fmt.Errorf("failed to write csv: %w", err)
		}
	case "text":
		if out.Text == nil {
			return nil, fmt.Errorf("text format not supported by this command")
		}
		if err := out.Text(&buf); err != nil {
			return nil, fmt.Errorf("failed to render text: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q (expected yaml, json, csv or text)", format)
	}

	return buf.Bytes(), nil
}

// WriteOutput renders out and writes it to --output, or to the app writer when unset.
func WriteOutput(c *cli.Context, out Output, format string, logger *slog.Logger) error {
	data, err := Render(out, format)
	if err != nil {
		return err
	}

	if path := c.String("output"); path != "" {
		s := &storage.Storage{}
		if err := s.SaveFile(path, data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("Output written", "path", path, "format", format, "bytes", len(data))
		return nil
	}

	w := c.App.Writer
	if w == nil {
		w = os.Stdout
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
