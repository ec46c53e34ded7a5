// Package segment implements the on-disk, write-once, memory-mapped
// inverted index segment: a term dictionary, a postings blob, a chunk
// table, and fixed-width stats, published via a COMMIT sentinel.
package segment

import "biblio/internal/constants"

// termRecordSize is the fixed-width stride of one term-dictionary record:
// termOffset(u32) + termLen(u16) + df(u64) + postingsOffset(u64) + postingsLen(u64).
const termRecordSize = 4 + 2 + 8 + 8 + 8

// chunkRecordSize is the fixed-width stride of one chunk-table record:
// bookIDOffset(u32) + bookIDLen(u16) + length(u32).
const chunkRecordSize = 4 + 2 + 4

// statsSize is the fixed width of the stats file: chunk_count(u64) +
// total_length(u64) + base_chunk_id(u64).
const statsSize = 8 + 8 + 8

const (
	termsFile    = constants.TermsFileName
	postingsFile = constants.PostingsFileName
	chunksFile   = constants.ChunksFileName
	statsFile    = constants.StatsFileName
	commitFile   = constants.CommitSentinelName
)
