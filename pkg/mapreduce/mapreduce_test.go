package mapreduce

import (
	"bytes"
	"testing"

	"github.com/dtnitsch/article-stats/models"
	"github.com/dtnitsch/article-stats/pkg/analytics"
)

func TestMapReduce(t *testing.T) {
	a := analytics.NewAnalytics(analytics.DefaultStopWords(), nil)
	first := models.Dataset{{"title": "Кот и пёс"}}
	second := models.Dataset{{"title": "Кот спит"}, {"title": nil}}

	got := Reduce([]analytics.FrequencyTable{Map(first, a), Map(second, a)})

	want := analytics.FrequencyTable{"Кот": 2, "пёс": 1, "спит": 1}
	if len(got) != len(want) {
		t.Fatalf("Reduce() = %v, want %v", got, want)
	}
	for word, count := range want {
		if got[word] != count {
			t.Errorf("Reduce()[%q] = %d, want %d", word, got[word], count)
		}
	}

	joined := a.ComputeFrequentWords(append(append(models.Dataset{}, first...), second...))
	if joined.Total() != got.Total() {
		t.Errorf("reduced total = %d, joined total = %d", got.Total(), joined.Total())
	}
}

func TestReduceEmpty(t *testing.T) {
	if got := Reduce(nil); len(got) != 0 {
		t.Errorf("Reduce(nil) = %v, want empty", got)
	}
}

func TestTopKeywords(t *testing.T) {
	counts := analytics.FrequencyTable{"go": 3, "rust": 1, "zig": 3}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{name: "top two", n: 2, want: []string{"go:3", "zig:3"}},
		{name: "more than available", n: 10, want: []string{"go:3", "zig:3", "rust:1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopKeywords(counts, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("TopKeywords() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("TopKeywords()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPrintTopKeywords(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintTopKeywords(&buf, analytics.FrequencyTable{"кот": 2, "пёс": 1}, 5); err != nil {
		t.Fatalf("PrintTopKeywords() error = %v", err)
	}

	want := "1. кот: 2\n2. пёс: 1\n"
	if buf.String() != want {
		t.Errorf("PrintTopKeywords() = %q, want %q", buf.String(), want)
	}
}
