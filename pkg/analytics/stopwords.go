package analytics

import (
	"fmt"
	"strings"
)

// StopWords is a set of tokens excluded from frequency counts. Membership is
// case-sensitive, like the word lists it is built from.
type StopWords map[string]struct{}

// NewStopWords builds a set from one or more word lists.
func NewStopWords(lists ...[]string) StopWords {
	sw := make(StopWords)
	for _, list := range lists {
		for _, w := range list {
			if w = strings.TrimSpace(w); w != "" {
				sw[w] = struct{}{}
			}
		}
	}
	return sw
}

// Contains reports whether word is a stop-word.
func (sw StopWords) Contains(word string) bool {
	_, ok := sw[word]
	return ok
}

// With returns a copy of the set extended with extra words.
func (sw StopWords) With(extra ...string) StopWords {
	out := make(StopWords, len(sw)+len(extra))
	for w := range sw {
		out[w] = struct{}{}
	}
	for _, w := range extra {
		if w = strings.TrimSpace(w); w != "" {
			out[w] = struct{}{}
		}
	}
	return out
}

// CustomRussianStopWord is appended to the Russian list by DefaultStopWords.
const CustomRussianStopWord = "это"

// DefaultStopWords returns the Russian list extended with CustomRussianStopWord.
func DefaultStopWords() StopWords {
	return NewStopWords(russianStopWords, []string{CustomRussianStopWord})
}

// StopWordsFor returns the built-in list for an ISO-639-1 language code plus extra words.
func StopWordsFor(lang string, extra ...string) (StopWords, error) {
	list, ok := stopWordLists[strings.ToLower(strings.TrimSpace(lang))]
	if !ok {
		return nil, fmt.Errorf("no stop-word list for language %q", lang)
	}
	return NewStopWords(list, extra), nil
}

// SupportedLanguages lists the language codes accepted by StopWordsFor.
func SupportedLanguages() []string {
	return []string{"en", "ru"}
}

var stopWordLists = map[string][]string{
	"ru": russianStopWords,
	"en": englishStopWords,
}

var russianStopWords = []string{
	"и", "в", "во", "не", "что", "он", "на", "я", "с", "со", "как", "а", "то", "все",
	"она", "так", "его", "но", "да", "ты", "к", "у", "же", "вы", "за", "бы", "по",
	"только", "ее", "мне", "было", "вот", "от", "меня", "еще", "нет", "о", "из", "ему",
	"теперь", "когда", "даже", "ну", "вдруг", "ли", "если", "уже", "или", "ни", "быть",
	"был", "него", "до", "вас", "нибудь", "опять", "уж", "вам", "ведь", "там", "потом",
	"себя", "ничего", "ей", "может", "они", "тут", "где", "есть", "надо", "ней", "для",
	"мы", "тебя", "их", "чем", "была", "сам", "чтоб", "без", "будто", "чего", "раз",
	"тоже", "себе", "под", "будет", "ж", "тогда", "кто", "этот", "того", "потому",
	"этого", "какой", "совсем", "ним", "здесь", "этом", "один", "почти", "мой", "тем",
	"чтобы", "нее", "сейчас", "были", "куда", "зачем", "всех", "никогда", "можно",
	"при", "наконец", "два", "об", "другой", "хоть", "после", "над", "больше", "тот",
	"через", "эти", "нас", "про", "всего", "них", "какая", "много", "разве", "три",
	"эту", "моя", "впрочем", "хорошо", "свою", "этой", "перед", "иногда", "лучше",
	"чуть", "том", "нельзя", "такой", "им", "более", "всегда", "конечно", "всю", "между",
}

var englishStopWords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "you're",
	"you've", "you'll", "you'd", "your", "yours", "yourself", "yourselves", "he", "him",
	"his", "himself", "she", "she's", "her", "hers", "herself", "it", "it's", "its",
	"itself", "they", "them", "their", "theirs", "themselves", "what", "which", "who",
	"whom", "this", "that", "that'll", "these", "those", "am", "is", "are", "was", "were",
	"be", "been", "being", "have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as", "until", "while", "of",
	"at", "by", "for", "with", "about", "against", "between", "into", "through",
	"during", "before", "after", "above", "below", "to", "from", "up", "down", "in",
	"out", "on", "off", "over", "under", "again", "further", "then", "once", "here",
	"there", "when", "where", "why", "how", "all", "any", "both", "each", "few", "more",
	"most", "other", "some", "such", "no", "nor", "not", "only", "own", "same", "so",
	"than", "too", "very", "s", "t", "can", "will", "just", "don", "don't", "should",
	"should've", "now", "d", "ll", "m", "o", "re", "ve", "y", "ain", "aren", "aren't",
	"couldn", "couldn't", "didn", "didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn",
	"hasn't", "haven", "haven't", "isn", "isn't", "ma", "mightn", "mightn't", "mustn",
	"mustn't", "needn", "needn't", "shan", "shan't", "shouldn", "shouldn't", "wasn",
	"wasn't", "weren", "weren't", "won", "won't", "wouldn", "wouldn't",
}
