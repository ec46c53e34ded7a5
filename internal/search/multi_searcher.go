package search

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"biblio/internal/core"
	"biblio/internal/logger"
	"biblio/internal/segment"
)

// MultiSearcher fans a query out across every segment reader concurrently
// and merges the partial top-K results into one global top-K (spec.md
// §4.8). There is no cross-segment coordination during scoring — each
// segment's SegmentSearcher is fully independent.
type MultiSearcher struct {
	readers []*segment.Reader
	n       uint64
	avgdl   float64
	k1, b   float64
}

// NewMultiSearcher wraps readers with the corpus statistics every segment
// should be scored against.
func NewMultiSearcher(readers []*segment.Reader, n uint64, avgdl, k1, b float64) *MultiSearcher {
	return &MultiSearcher{readers: readers, n: n, avgdl: avgdl, k1: k1, b: b}
}

// Search issues per-segment searches concurrently and merges them into one
// top-K list, ties broken chunk_id ascending.
func (s *MultiSearcher) Search(ctx context.Context, terms []string, k int) ([]core.Hit, error) {
	if len(s.readers) == 0 || len(terms) == 0 || k <= 0 {
		return nil, nil
	}

	partials := make([][]core.Hit, len(s.readers))
	g, gctx := errgroup.WithContext(ctx)
	for i, reader := range s.readers {
		i, reader := i, reader
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			searcher := NewSegmentSearcher(reader, s.n, s.avgdl, s.k1, s.b)
			hits, err := searcher.Search(terms, k)
			if errors.Is(err, core.ErrInvalidPostings) {
				logger.Warnf("skipping corrupt segment %s: %v", reader.Dir(), err)
				return nil
			}
			if err != nil {
				return err
			}
			partials[i] = hits
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	top := newTopK(k)
	for _, hits := range partials {
		for _, h := range hits {
			top.offer(h.BookID, h.Score, h.ChunkID)
		}
	}

	merged := top.results()
	out := make([]core.Hit, len(merged))
	for i, h := range merged {
		out[i] = core.Hit{BookID: h.bookID, Score: h.score, ChunkID: h.chunkID}
	}
	return out, nil
}
