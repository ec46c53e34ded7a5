package search

import (
	"biblio/internal/core"
	"biblio/internal/segment"
)

// SegmentSearcher scores one segment's chunks against a query term list,
// using corpus-wide N/avgdl/k1/b supplied by the caller (spec.md §4.7: IDF
// and length normalization must use global statistics, never per-segment
// ones, so every segment reader agrees on a term's weight).
type SegmentSearcher struct {
	reader *segment.Reader
	n      uint64
	avgdl  float64
	k1, b  float64
}

// NewSegmentSearcher wraps reader with the corpus statistics it should
// score against.
func NewSegmentSearcher(reader *segment.Reader, n uint64, avgdl, k1, b float64) *SegmentSearcher {
	return &SegmentSearcher{reader: reader, n: n, avgdl: avgdl, k1: k1, b: b}
}

// Search returns up to k hits from this segment alone, ranked by BM25
// score descending, ties broken chunk_id ascending.
func (s *SegmentSearcher) Search(terms []string, k int) ([]core.Hit, error) {
	type acc struct {
		score  float64
		bookID string
	}
	base := s.reader.Stats().BaseChunkID
	scores := map[uint64]*acc{}

	for _, term := range terms {
		postings, df, ok, err := s.reader.Lookup(term)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		termIDF := idf(s.n, df)
		if termIDF == 0 {
			continue
		}
		for _, p := range postings {
			entry, err := s.reader.Chunk(localID(p.ChunkID, base))
			if err != nil {
				return nil, err
			}
			a, exists := scores[p.ChunkID]
			if !exists {
				a = &acc{bookID: entry.BookID}
				scores[p.ChunkID] = a
			}
			a.score += termScore(float64(p.TF), termIDF, float64(entry.Length), s.avgdl, s.k1, s.b)
		}
	}

	top := newTopK(k)
	for chunkID, a := range scores {
		top.offer(a.bookID, a.score, chunkID)
	}

	hits := top.results()
	out := make([]core.Hit, len(hits))
	for i, h := range hits {
		out[i] = core.Hit{BookID: h.bookID, Score: h.score, ChunkID: h.chunkID}
	}
	return out, nil
}

// localID converts a global chunk id into this segment's local ordinal.
func localID(globalChunkID, base uint64) uint32 {
	return uint32(globalChunkID - base)
}
