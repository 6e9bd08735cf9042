package words

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/article-stats/pkg/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestWordsAction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"title": "Кот и пёс"},
		{"title": "Кот спит"},
		{"title": null}
	]`), 0600))

	var out bytes.Buffer
	app := &cli.App{
		Writer: &out,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "quiet"},
			&cli.StringFlag{Name: "format"},
			&cli.StringFlag{Name: "output"},
			&cli.StringSliceFlag{Name: "input"},
			&cli.IntFlag{Name: "top"},
		},
		Action: WordsAction,
	}

	require.NoError(t, app.Run([]string{"words", "--quiet", "--format", "json", "--top", "2", "--input", path}))

	var got Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 3, got.Rows)
	assert.Equal(t, 4, got.TotalTokens)
	assert.Equal(t, 3, got.DistinctTokens)
	assert.Equal(t, []analytics.WordCount{{Word: "Кот", Count: 2}, {Word: "пёс", Count: 1}}, got.Words)
}
