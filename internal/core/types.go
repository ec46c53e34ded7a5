package core

// Document is an input (book_id, text) pair handed to the indexer.
// Documents are immutable once given to the indexer.
type Document struct {
	BookID string
	Text   string
}

// Chunk is the indexing unit carved from a Document by the chunker. It
// carries a globally unique ChunkID assigned monotonically at ingestion
// time and a back-reference to its source document.
type Chunk struct {
	ChunkID uint64
	BookID  string
	Text    string
}

// Posting is a single (chunk_id, tf) pair in a term's postings list.
type Posting struct {
	ChunkID uint64
	TF      uint32
}

// Hit is a single scored search result, as returned by a Searcher.
type Hit struct {
	BookID  string
	Score   float64
	ChunkID uint64
}

// ChunkEntry is a chunk table row: the book a chunk belongs to and its
// analyzed token length.
type ChunkEntry struct {
	BookID string
	Length uint32
}

// SegmentStats is the fixed-width summary written to a segment's stats
// file: its chunk count, the sum of chunk lengths, and the base of its
// owned chunk-id range.
type SegmentStats struct {
	ChunkCount  uint64
	TotalLength uint64
	BaseChunkID uint64
}

// TermEntry is one row of a segment's term dictionary.
type TermEntry struct {
	Term   string
	DF     uint64
	Offset uint64
	Length uint64
}
