// Package analyzer turns raw text into an ordered sequence of index terms:
// lowercase, maximal runs of Unicode letters/digits, with a stop-word and
// length filter. The same Analyzer is used at index time and query time;
// any difference between the two is a bug.
package analyzer

import (
	"strings"
	"unicode"
)

const (
	minTermLength = 2
	maxTermLength = 32
)

// Analyzer is a pure, deterministic, stateless tokenizer. The stop-word set
// is injected at construction; callers may pass a nil or empty set.
type Analyzer struct {
	stopwords map[string]struct{}
}

// New builds an Analyzer over the given stop-word list. Words are folded to
// lowercase so the set matches the tokens Analyze produces.
func New(stopwords []string) *Analyzer {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Analyzer{stopwords: set}
}

// SetStopwords replaces the analyzer's stop-word set in place, so a single
// Analyzer instance can be reconfigured (Searcher.set_stopwords in the
// engine API).
func (a *Analyzer) SetStopwords(stopwords []string) {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	a.stopwords = set
}

// Analyze tokenizes text into an ordered sequence of terms: maximal runs of
// Unicode letters/digits, lowercased, with stop-words and out-of-range
// lengths dropped. Pure, deterministic, performs no I/O.
func (a *Analyzer) Analyze(text string) []string {
	runes := []rune(text)
	n := len(runes)
	terms := make([]string, 0, n/5+1)

	i := 0
	for i < n {
		if !isWordRune(runes[i]) {
			i++
			continue
		}
		start := i
		for i < n && isWordRune(runes[i]) {
			i++
		}
		term := strings.ToLower(string(runes[start:i]))
		length := i - start
		if length < minTermLength || length > maxTermLength {
			continue
		}
		if _, stop := a.stopwords[term]; stop {
			continue
		}
		terms = append(terms, term)
	}
	return terms
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
