package nrt

import "biblio/internal/core"

// ramIndex is the growable, in-memory counterpart of a segment: the same
// term → postings / chunk-id → (book_id, length) shape, but backed by maps
// and slices instead of a fixed-width on-disk format (spec.md §4.9).
// Postings are appended in chunk-id order as documents arrive, so each
// term's posting list is already sorted ascending without further work.
type ramIndex struct {
	postings map[string][]core.Posting
	chunks   map[uint64]core.ChunkEntry
	count    uint64
	length   uint64
}

func newRAMIndex() *ramIndex {
	return &ramIndex{
		postings: make(map[string][]core.Posting),
		chunks:   make(map[uint64]core.ChunkEntry),
	}
}

// add records one analyzed chunk under chunkID, updating postings and the
// chunk table in place.
func (idx *ramIndex) add(chunkID uint64, bookID string, terms []string) {
	freq := make(map[string]uint32, len(terms))
	for _, t := range terms {
		freq[t]++
	}
	for term, tf := range freq {
		idx.postings[term] = append(idx.postings[term], core.Posting{ChunkID: chunkID, TF: tf})
	}
	idx.chunks[chunkID] = core.ChunkEntry{BookID: bookID, Length: uint32(len(terms))}
	idx.count++
	idx.length += uint64(len(terms))
}

func (idx *ramIndex) reset() {
	idx.postings = make(map[string][]core.Posting)
	idx.chunks = make(map[uint64]core.ChunkEntry)
	idx.count = 0
	idx.length = 0
}

func (idx *ramIndex) lookup(term string) ([]core.Posting, uint64, bool) {
	p, ok := idx.postings[term]
	if !ok {
		return nil, 0, false
	}
	return p, uint64(len(p)), true
}

func (idx *ramIndex) chunk(chunkID uint64) (core.ChunkEntry, bool) {
	c, ok := idx.chunks[chunkID]
	return c, ok
}
