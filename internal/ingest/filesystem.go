// Package ingest supplies (book_id, text) pairs to the indexer. Book
// acquisition and format conversion (EPUB/PDF parsing) are out of scope —
// callers hand the engine plain text; the one source this package provides
// reads it straight off disk.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"biblio/internal/core"
)

// FilesystemSource turns every *.txt file directly under Dir into one
// (book_id, text) Document, book_id derived from the file's base name
// without extension. Files are returned in sorted-name order, so a corpus
// re-indexed from the same directory always partitions into the same
// batches.
type FilesystemSource struct {
	Dir string
}

// Documents reads every *.txt file under Dir and returns one Document per
// file. It loads the whole corpus into memory; callers indexing gigabytes
// of text should prefer a streaming source (not provided here — the spec's
// batch indexer is the memory-bounded component, not ingestion).
func (s FilesystemSource) Documents() ([]core.Document, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read books dir %s: %v", core.ErrIO, s.Dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".txt") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	docs := make([]core.Document, 0, len(names))
	for _, name := range names {
		path := filepath.Join(s.Dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: read book file %s: %v", core.ErrIO, path, err)
		}
		bookID := strings.TrimSuffix(name, filepath.Ext(name))
		docs = append(docs, core.Document{BookID: bookID, Text: string(data)})
	}
	return docs, nil
}
