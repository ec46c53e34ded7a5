package analyzer

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// EnglishStopwords is a small, commonly-used English stop-word list. It is
// not loaded automatically — callers inject it (or their own list, or
// nothing) at Analyzer construction.
var EnglishStopwords = []string{
	"a", "an", "and", "are", "as", "at", "be", "but", "by",
	"for", "if", "in", "into", "is", "it", "no", "not", "of",
	"on", "or", "such", "that", "the", "their", "then", "there",
	"these", "they", "this", "to", "was", "will", "with",
}

// LoadStopwordsFile reads a newline-delimited stop-word list from path, one
// word per line, blank lines and lines starting with "#" ignored. Returns
// an empty slice (not an error) for an empty file.
func LoadStopwordsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stopwords file: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan stopwords file: %w", err)
	}
	return words, nil
}
