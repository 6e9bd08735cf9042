package groupby

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newApp(out *bytes.Buffer) *cli.App {
	return &cli.App{
		Writer: out,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "quiet"},
			&cli.StringFlag{Name: "format"},
			&cli.StringFlag{Name: "output"},
			&cli.StringSliceFlag{Name: "input"},
			&cli.StringFlag{Name: "column"},
		},
		Action: GroupByAction,
	}
}

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "articles.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"rubric,views,likes,comments,favorites,hits\n"+
			"a,10,1,2,0,100\n"+
			"a,20,3,4,1,300\n"+
			"b,5,0,0,0,50\n"), 0600))
	return path
}

func TestGroupByActionCSV(t *testing.T) {
	var out bytes.Buffer

	err := newApp(&out).Run([]string{"groupby", "--quiet", "--format", "csv", "--column", "rubric", "--input", writeCSV(t)})
	require.NoError(t, err)

	assert.Equal(t,
		"rubric,count,views,likes,comments,favorites,hits,avg_hits,avg_views,avg_likes,avg_comments,avg_favorites\n"+
			"a,2,30,4,6,1,400,200,15,2,3,0.5\n"+
			"b,1,5,0,0,0,50,50,5,0,0,0\n",
		out.String())
}

func TestGroupByActionText(t *testing.T) {
	var out bytes.Buffer

	err := newApp(&out).Run([]string{"groupby", "--quiet", "--format", "text", "--column", "rubric", "--input", writeCSV(t)})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "rubric  count")
	assert.Contains(t, out.String(), "Total: 2 groups, 3 articles")
}

func TestGroupByActionMissingColumn(t *testing.T) {
	var out bytes.Buffer

	err := newApp(&out).Run([]string{"groupby", "--quiet", "--column", "author", "--input", writeCSV(t)})
	assert.Error(t, err)

	err = newApp(&out).Run([]string{"groupby", "--quiet", "--input", writeCSV(t)})
	assert.Error(t, err)
}
