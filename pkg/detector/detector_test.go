package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	d := NewLanguageDetector()

	tests := []struct {
		name   string
		text   string
		want   LanguageCode
		wantOK bool
	}{
		{name: "russian titles", text: "Как мы перенесли поиск на новую инфраструктуру", want: "ru", wantOK: true},
		{name: "english titles", text: "How we migrated our search to a new infrastructure", want: "en", wantOK: true},
		{name: "blank", text: " \n\t", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := d.Detect(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectOr(t *testing.T) {
	d := NewLanguageDetector()

	assert.Equal(t, "ru", d.DetectOr("", "ru"))
	assert.Equal(t, "en", d.DetectOr("The quick brown fox jumps over the lazy dog", "ru"))
}
