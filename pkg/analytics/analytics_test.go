package analytics

import (
	"testing"

	"github.com/dtnitsch/article-stats/models"
	"github.com/dtnitsch/article-stats/pkg/tokenizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinTitles(t *testing.T) {
	tests := []struct {
		name string
		ds   models.Dataset
		want string
	}{
		{name: "empty dataset", ds: nil, want: ""},
		{name: "no string titles", ds: models.Dataset{{"title": nil}, {"title": 42}, {}}, want: ""},
		{
			name: "skips non-string titles",
			ds: models.Dataset{
				{"title": "Кот и пёс"},
				{"title": 3.5},
				{"views": 10},
				{"title": "Кот спит"},
			},
			want: "\nКот и пёс\nКот спит",
		},
		{name: "empty string title counts", ds: models.Dataset{{"title": ""}}, want: "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinTitles(tt.ds))
		})
	}
}

func TestComputeFrequentWords(t *testing.T) {
	ds := models.Dataset{
		{"title": "Кот и пёс"},
		{"title": "Кот спит"},
		{"title": nil},
	}

	got := (&Analytics{}).ComputeFrequentWords(ds)

	assert.Equal(t, FrequencyTable{"Кот": 2, "пёс": 1, "спит": 1}, got)
}

func TestComputeFrequentWordsStripsPunctuationAndStopWords(t *testing.T) {
	ds := models.Dataset{
		{"title": "«Это» — не баг, это фича…"},
		{"title": "Баг\tили фича?"},
	}

	got := NewAnalytics(DefaultStopWords(), nil).ComputeFrequentWords(ds)

	// Membership is case-sensitive: "Это" survives while "это" and "не" do not.
	assert.Equal(t, FrequencyTable{"Это": 1, "баг": 1, "фича": 2, "Баг": 1}, got)
}

func TestComputeFrequentWordsEmpty(t *testing.T) {
	a := NewAnalytics(DefaultStopWords(), nil)

	assert.Empty(t, a.ComputeFrequentWords(nil))
	assert.Empty(t, a.ComputeFrequentWords(models.Dataset{{"title": 1}, {"title": nil}}))
	assert.Empty(t, a.ComputeFrequentWords(models.Dataset{{"title": "и в на"}}))
}

func TestComputeFrequentWordsTotalMatchesSurvivingTokens(t *testing.T) {
	ds := models.Dataset{
		{"title": "Как мы запустили продукт за два месяца"},
		{"title": "Продукт, который мы не запустили"},
		{"title": "Go 1.25: что нового"},
	}
	a := NewAnalytics(DefaultStopWords(), tokenizer.WordTokenizer{})

	got := a.ComputeFrequentWords(ds)

	surviving := 0
	for _, tok := range (tokenizer.WordTokenizer{}).Tokenize("Как мы запустили продукт за два месяца Продукт который мы не запустили Go 125 что нового") {
		if !a.StopWords.Contains(tok) {
			surviving++
		}
	}
	assert.Equal(t, surviving, got.Total())
	assert.Equal(t, 2, got.Get("запустили"))
	assert.Equal(t, 1, got.Get("125"))
	assert.Zero(t, got.Get("мы"))
}

func TestComputeFrequentWordsIdempotent(t *testing.T) {
	ds := models.Dataset{{"title": "Один два три"}, {"title": "Три четыре"}}
	a := NewAnalytics(DefaultStopWords(), nil)

	first := a.ComputeFrequentWords(ds)
	second := a.ComputeFrequentWords(ds)

	assert.Equal(t, first, second)
	assert.Equal(t, models.Dataset{{"title": "Один два три"}, {"title": "Три четыре"}}, ds)
}

type fixedTokenizer struct{}

func (fixedTokenizer) Tokenize(text string) []string {
	return []string{" X ", "Y", " ", "X"}
}

func TestComputeFrequentWordsInjectedTokenizer(t *testing.T) {
	a := NewAnalytics(NewStopWords([]string{"Y"}), fixedTokenizer{})

	got := a.ComputeFrequentWords(models.Dataset{{"title": "anything"}})

	assert.Equal(t, FrequencyTable{"X": 2}, got)
}

func TestWordFrequencyCustomStopChars(t *testing.T) {
	a := &Analytics{StopWords: StopWords{}, StopChars: "#"}

	got := a.WordFrequency("#go #rust go")

	assert.Equal(t, FrequencyTable{"go": 2, "rust": 1}, got)
}

func TestMostCommon(t *testing.T) {
	ft := FrequencyTable{"b": 2, "a": 2, "c": 5, "d": 1}

	assert.Equal(t, []WordCount{{"c", 5}, {"a", 2}}, ft.MostCommon(2))
	assert.Len(t, ft.MostCommon(0), 4)
	assert.Len(t, ft.MostCommon(10), 4)
	assert.Equal(t, 10, ft.Total())
}

func TestStopWords(t *testing.T) {
	sw := DefaultStopWords()
	assert.True(t, sw.Contains("и"))
	assert.True(t, sw.Contains(CustomRussianStopWord))
	assert.False(t, sw.Contains("И"))

	extended := sw.With("кот", " ")
	assert.True(t, extended.Contains("кот"))
	assert.False(t, sw.Contains("кот"))
	assert.False(t, extended.Contains(""))

	en, err := StopWordsFor("EN", "golang")
	require.NoError(t, err)
	assert.True(t, en.Contains("the"))
	assert.True(t, en.Contains("golang"))

	_, err = StopWordsFor("de")
	assert.Error(t, err)
}
