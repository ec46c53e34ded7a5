// Package engine is the top-level facade implementing the Engine API from
// spec.md §6: index_corpus, open → Searcher, and NrtIndexer.open /
// add_document / search / flush. It wires together analyzer, indexer,
// manifest, segment, search, and nrt without adding behavior of its own.
package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"biblio/internal/analyzer"
	"biblio/internal/constants"
	"biblio/internal/core"
	"biblio/internal/indexer"
	"biblio/internal/manifest"
	"biblio/internal/nrt"
	"biblio/internal/search"
	"biblio/internal/segment"
)

// IndexCorpus is the Go binding of index_corpus(books_dir, index_dir,
// chunks_dir, stopwords, chunk_size, chunk_overlap, batch_size).
func IndexCorpus(ctx context.Context, opts indexer.Options) (indexer.Result, error) {
	return indexer.IndexCorpus(ctx, opts)
}

// Searcher is the Go binding of open(index_dir) → Searcher. It holds one
// immutable segment.Reader per committed segment, safe for unlimited
// concurrent Search calls.
type Searcher struct {
	indexDir string
	manifest *manifest.Manifest
	readers  []*segment.Reader
	an       *analyzer.Analyzer
}

// Open loads the manifest and every segment it lists. A missing or
// malformed manifest fails outright — no partial Searcher is ever returned
// (spec.md §7, ErrInvalidManifest).
func Open(indexDir string) (*Searcher, error) {
	m, err := manifest.Load(indexDir)
	if err != nil {
		return nil, err
	}

	readers := make([]*segment.Reader, 0, len(m.Segments))
	for _, segName := range m.Segments {
		r, err := segment.Open(filepath.Join(indexDir, segName))
		if err != nil {
			for _, opened := range readers {
				opened.Close()
			}
			return nil, err
		}
		readers = append(readers, r)
	}

	return &Searcher{
		indexDir: indexDir,
		manifest: m,
		readers:  readers,
		an:       analyzer.New(nil),
	}, nil
}

// SetStopwords reconfigures the analyzer used to tokenize future queries.
func (s *Searcher) SetStopwords(stopwords []string) {
	s.an.SetStopwords(stopwords)
}

// Search is the Go binding of Searcher.search(query, top_k). A non-positive
// top_k is ErrBadInput; a query that reduces to no terms after analysis
// (e.g. all stop-words) returns an empty result, not an error.
func (s *Searcher) Search(ctx context.Context, query string, topK int) ([]core.Hit, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("%w: top_k must be positive, got %d", core.ErrBadInput, topK)
	}
	terms := s.an.Analyze(query)
	if len(terms) == 0 {
		return []core.Hit{}, nil
	}

	ms := search.NewMultiSearcher(s.readers, s.manifest.TotalDocs, s.manifest.AvgDL(), s.manifest.K1, s.manifest.B)
	return ms.Search(ctx, terms, topK)
}

// Close releases every segment reader's memory-mapped files.
func (s *Searcher) Close() error {
	var firstErr error
	for _, r := range s.readers {
		if err := r.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// OpenNrtIndexer is the Go binding of NrtIndexer.open(index_dir): it opens
// the current disk manifest and segment readers as the NRT layer's base,
// then replays the WAL to rebuild the in-RAM index.
func OpenNrtIndexer(indexDir string, stopwords []string) (*nrt.Indexer, error) {
	m, err := manifest.LoadOrNew(indexDir, constants.DefaultK1, constants.DefaultB)
	if err != nil {
		return nil, err
	}

	readers := make([]*segment.Reader, 0, len(m.Segments))
	for _, segName := range m.Segments {
		r, err := segment.Open(filepath.Join(indexDir, segName))
		if err != nil {
			for _, opened := range readers {
				opened.Close()
			}
			return nil, err
		}
		readers = append(readers, r)
	}

	an := analyzer.New(stopwords)
	return nrt.Open(indexDir, readers, m.TotalDocs, m.TotalLength, m.NextBaseChunkID(), an, m.K1, m.B)
}
