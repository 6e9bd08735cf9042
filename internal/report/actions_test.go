package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/article-stats/pkg/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func TestReportAction(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "articles.yaml")
	require.NoError(t, os.WriteFile(input, []byte(`
- title: Кот и пёс
  rubric: pets
  views: 10
  likes: 1
  comments: 0
  favorites: 0
  hits: 100
- title: Кот спит
  rubric: pets
  views: 20
  likes: 3
  comments: 2
  favorites: 1
  hits: 300
`), 0600))
	output := filepath.Join(dir, "report.yaml")

	var out bytes.Buffer
	app := &cli.App{
		Writer: &out,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "quiet"},
			&cli.StringFlag{Name: "output"},
			&cli.StringSliceFlag{Name: "input"},
			&cli.StringSliceFlag{Name: "column"},
		},
		Action: ReportAction,
	}
	require.NoError(t, app.Run([]string{"report", "--quiet", "--output", output, "--input", input, "--column", "rubric"}))

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var got manifest.Report
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, 2, got.Rows)
	assert.Equal(t, []string{"Кот:2", "пёс:1", "спит:1"}, got.TopKeywords)
	require.Len(t, got.Groupings, 1)
	assert.Equal(t, "rubric", got.Groupings[0].Column)
	assert.Equal(t, 2, got.Groupings[0].Groups[0].Count)
}
