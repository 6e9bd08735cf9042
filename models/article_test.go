package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetColumns(t *testing.T) {
	ds := Dataset{
		{"title": "a", "views": 1},
		{"title": "b", "likes": 2},
		{},
	}

	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, []string{"likes", "title", "views"}, ds.Columns())
	assert.True(t, ds.HasColumn("likes"))
	assert.False(t, ds.HasColumn("hits"))
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "ru", cfg.Language)
	assert.Equal(t, []string{"это"}, cfg.ExtraStopWords)
	assert.Equal(t, "word", cfg.Tokenizer)
	assert.Equal(t, 25, cfg.Top)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "articles", cfg.Table)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ARTSTATS_LANGUAGE", "en")
	t.Setenv("ARTSTATS_EXTRA_STOP_WORDS", "foo,bar")
	t.Setenv("ARTSTATS_TOP", "10")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, []string{"foo", "bar"}, cfg.ExtraStopWords)
	assert.Equal(t, 10, cfg.Top)
}

func TestLoadConfigRejectsNegativeTop(t *testing.T) {
	t.Setenv("ARTSTATS_TOP", "-1")

	_, err := LoadConfig()
	assert.Error(t, err)
}
