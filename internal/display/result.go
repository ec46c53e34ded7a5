// Package display renders search hits and indexing progress to the
// terminal. It never touches the core index: PrintHits works only from the
// (book_id, score, chunk_id) triples the engine returns, plus an optional
// best-effort snippet sourced from the chunks_dir debug dump (spec.md §9 —
// snippet display is an orthogonal component keyed by chunk_id, not part
// of the core).
package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"biblio/internal/core"
)

var (
	headerFmt = color.New(color.FgGreen, color.Underline).SprintfFunc()
	rankFmt   = color.New(color.FgYellow).SprintfFunc()
	queryFmt  = color.New(color.FgRed, color.Bold).SprintFunc()
	scoreFmt  = color.New(color.FgGreen).SprintFunc()
)

// PrintHits renders a ranked hit list as a table: rank, book_id, score,
// chunk_id. It is the CLI's rendering of Searcher.search's return value.
func PrintHits(hits []core.Hit, query string) {
	if len(hits) == 0 {
		fmt.Printf("No results found for: %s\n", query)
		return
	}

	fmt.Printf("\nFound %s results for %s\n\n", scoreFmt(fmt.Sprintf("%d", len(hits))), queryFmt(query))

	tbl := table.New("#", "Book", "Score", "Chunk")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(rankFmt)
	for i, h := range hits {
		tbl.AddRow(i+1, h.BookID, fmt.Sprintf("%.4f", h.Score), h.ChunkID)
	}
	tbl.Print()
}

// PrintHitsWithSnippets is PrintHits plus a one-line best-effort snippet per
// hit, looked up from an optional chunks_dir dump (see
// internal/indexer.DumpedChunk). snippets may be nil or incomplete; a
// missing entry simply omits that hit's snippet line.
func PrintHitsWithSnippets(hits []core.Hit, query string, snippets map[uint64]string) {
	if len(hits) == 0 {
		fmt.Printf("No results found for: %s\n", query)
		return
	}

	fmt.Printf("\nFound %s results for %s\n\n", scoreFmt(fmt.Sprintf("%d", len(hits))), queryFmt(query))
	for i, h := range hits {
		fmt.Printf("%s %s  score=%s  chunk=%d\n",
			rankFmt(fmt.Sprintf("%d.", i+1)), h.BookID, scoreFmt(fmt.Sprintf("%.4f", h.Score)), h.ChunkID)
		if snippet, ok := snippets[h.ChunkID]; ok && snippet != "" {
			fmt.Printf("    %s\n", truncateSnippet(snippet, 160))
		}
	}
	fmt.Println()
}

func truncateSnippet(s string, maxLen int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
