// Package chunker splits a document's text into fixed-size overlapping
// chunks, snapping boundaries to whitespace so words are not split across
// chunk edges where avoidable.
package chunker

import (
	"fmt"
	"strings"
	"unicode"
)

// Chunk splits text into chunks of at most size runes, each overlapping the
// previous chunk by overlap runes. Boundaries snap to the last whitespace
// before the hard cutoff when one exists within the window. The result is
// non-empty iff text contains at least one non-whitespace character.
//
// Panics if overlap >= size, per the contract's `overlap < size` invariant
// — a caller bug, not a runtime condition to recover from.
func Chunk(text string, size, overlap int) []string {
	if overlap >= size {
		panic(fmt.Sprintf("chunker: overlap (%d) must be < size (%d)", overlap, size))
	}
	if !containsNonSpace(text) {
		return nil
	}

	runes := []rune(text)
	n := len(runes)
	if n <= size {
		return []string{text}
	}

	var chunks []string
	start := 0
	for start < n {
		end := start + size
		if end >= n {
			end = n
		} else {
			if snapped := snapToWhitespace(runes, start, end); snapped > start {
				end = snapped
			}
		}

		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		if end >= n {
			break
		}

		next := end - overlap
		if next <= start {
			next = end
		}
		start = next
	}
	return chunks
}

// snapToWhitespace looks backward from end (exclusive) for the last
// whitespace rune strictly after start, so the chunk boundary lands on a
// word break instead of mid-word. Returns start if none is found (and the
// caller keeps the hard cutoff).
func snapToWhitespace(runes []rune, start, end int) int {
	for i := end - 1; i > start; i-- {
		if unicode.IsSpace(runes[i]) {
			return i
		}
	}
	return start
}

func containsNonSpace(text string) bool {
	for _, r := range text {
		if !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}
