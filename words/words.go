// Package words turns raw text or delimited files into word frequencies.
package words

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-text/typesetting/segmenter"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// tracer traces with key 'iconcloud.words'
func tracer() tracing.Trace {
	return tracing.Select("iconcloud.words")
}

type Frequency struct {
	Word  string
	Count float64
	// Weight is Count relative to the most frequent word, in (0,1].
	Weight float64
}

type Config struct {
	// Stopwords are dropped from tokenized text. Nil drops nothing.
	Stopwords Set
	// MaxWords truncates the result; 0 keeps everything.
	MaxWords int
	// MinLength is the minimum token length in runes.
	MinLength int
	// NormalizePlurals folds "cats" into "cat" when both occur.
	NormalizePlurals bool
}

// DefaultConfig returns a config with a fresh default stopword set.
func DefaultConfig() Config {
	return Config{
		Stopwords:        DefaultStopwords(),
		MaxWords:         2000,
		MinLength:        2,
		NormalizePlurals: true,
	}
}

// WithStopwords returns a copy of cfg whose stopword set also contains
// extra. The original set is not modified.
func (cfg Config) WithStopwords(extra ...string) Config {
	s := make(Set, len(cfg.Stopwords)+len(extra))
	for w := range cfg.Stopwords {
		s[w] = struct{}{}
	}
	lower := cases.Lower(language.Und)
	for _, w := range extra {
		s[lower.String(strings.TrimSpace(w))] = struct{}{}
	}
	cfg.Stopwords = s
	return cfg
}

// Tokenize splits text at Unicode word boundaries and returns the
// lowercased tokens that contain at least one letter. A trailing
// possessive "'s" is removed.
func Tokenize(text string) []string {
	text = norm.NFC.String(strings.ReplaceAll(text, "’", "'"))
	lower := cases.Lower(language.Und)
	var seg segmenter.Segmenter
	seg.Init([]rune(text))
	iter := seg.WordIterator()
	var tokens []string
	for iter.Next() {
		w := strings.Trim(string(iter.Word().Text), "'")
		if !strings.ContainsFunc(w, unicode.IsLetter) {
			continue
		}
		w = lower.String(w)
		w = strings.TrimSuffix(w, "'s")
		if w != "" {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

// Count tokenizes text and counts the words that pass cfg.
func Count(text string, cfg Config) []Frequency {
	counts := map[string]float64{}
	for _, w := range Tokenize(text) {
		if utf8.RuneCountInString(w) < cfg.MinLength || cfg.Stopwords.Contains(w) {
			continue
		}
		counts[w]++
	}
	if cfg.NormalizePlurals {
		foldPlurals(counts)
	}
	return finish(counts, cfg.MaxWords)
}

// foldPlurals merges "xs" into "x" when x was seen too. Words ending in
// "ss" are left alone.
func foldPlurals(counts map[string]float64) {
	for w, n := range counts {
		if !strings.HasSuffix(w, "s") || strings.HasSuffix(w, "ss") {
			continue
		}
		singular := w[:len(w)-1]
		if _, ok := counts[singular]; ok {
			counts[singular] += n
			delete(counts, w)
		}
	}
}

// finish sorts by count, most frequent first, truncates to maxWords and
// fills in weights. Ties are broken alphabetically.
func finish(counts map[string]float64, maxWords int) []Frequency {
	freqs := make([]Frequency, 0, len(counts))
	for w, n := range counts {
		if n > 0 {
			freqs = append(freqs, Frequency{Word: w, Count: n})
		}
	}
	slices.SortFunc(freqs, func(a, b Frequency) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Word, b.Word)
	})
	if maxWords > 0 && len(freqs) > maxWords {
		freqs = freqs[:maxWords]
	}
	if len(freqs) > 0 {
		top := freqs[0].Count
		for i := range freqs {
			freqs[i].Weight = freqs[i].Count / top
		}
	}
	return freqs
}

// Frequencies computes the word frequencies of src. Pre-counted sources
// are used as given, apart from sorting and truncation.
func Frequencies(src Source, cfg Config) []Frequency {
	if src.Counts != nil {
		return finish(src.Counts, cfg.MaxWords)
	}
	freqs := Count(src.Text, cfg)
	tracer().Debugf("counted %d distinct words", len(freqs))
	return freqs
}
