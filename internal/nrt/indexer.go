package nrt

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"biblio/internal/analyzer"
	"biblio/internal/constants"
	"biblio/internal/core"
	"biblio/internal/search"
	"biblio/internal/segment"
)

// Indexer accepts newly added documents and makes them searchable
// immediately, without rewriting any on-disk segment. It combines a
// write-ahead log, a growable in-RAM index, and the disk multi-segment
// searcher (spec.md §4.9).
//
// Readers (Search) take the lock shared; writers (AddDocument, Flush) take
// it exclusive — a concurrent Search may observe any prefix of committed
// documents, never a partial AddDocument.
type Indexer struct {
	mu sync.RWMutex

	wal *WAL
	ram *ramIndex
	an  *analyzer.Analyzer

	diskReaders []*segment.Reader
	diskTotal   uint64
	diskLength  uint64

	k1, b       float64
	nextChunkID uint64
}

// Open replays the WAL at indexDir/wal (if present) into a fresh in-RAM
// index, and prepares a real-time indexer layered on top of diskReaders.
// nextChunkID should be the disk manifest's next free chunk id — the in-RAM
// index's own chunk ids continue from there.
func Open(indexDir string, diskReaders []*segment.Reader, diskTotal, diskLength uint64, nextChunkID uint64, an *analyzer.Analyzer, k1, b float64) (*Indexer, error) {
	wal, err := OpenWAL(filepath.Join(indexDir, constants.WalFileName))
	if err != nil {
		return nil, err
	}

	idx := &Indexer{
		wal:         wal,
		ram:         newRAMIndex(),
		an:          an,
		diskReaders: diskReaders,
		diskTotal:   diskTotal,
		diskLength:  diskLength,
		k1:          k1,
		b:           b,
		nextChunkID: nextChunkID,
	}

	err = ReplayWAL(filepath.Join(indexDir, constants.WalFileName), func(text string, metadata []byte) error {
		terms := an.Analyze(text)
		idx.ram.add(idx.nextChunkID, string(metadata), terms)
		idx.nextChunkID++
		return nil
	})
	if err != nil {
		wal.Close()
		return nil, err
	}
	return idx, nil
}

// AddDocument appends text to the WAL, then indexes it as a single chunk
// (the NRT layer never re-chunks) and returns its new global chunk id.
// metadata is opaque to the indexer: it is stored verbatim and surfaced as
// a hit's book_id.
func (idx *Indexer) AddDocument(text string, metadata []byte) (uint64, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if err := idx.wal.Append(text, metadata); err != nil {
		return 0, err
	}

	terms := idx.an.Analyze(text)
	chunkID := idx.nextChunkID
	idx.ram.add(chunkID, string(metadata), terms)
	idx.nextChunkID++
	return chunkID, nil
}

// Search runs the multi-segment disk search and an identical search over
// the in-RAM index, and merges both into one top-K (spec.md §4.8, §4.9).
// N and avgdl combine disk and in-RAM totals so IDF and length
// normalization stay consistent across both result sets.
func (idx *Indexer) Search(ctx context.Context, terms []string, k int) ([]core.Hit, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	n := idx.diskTotal + idx.ram.count
	totalLength := idx.diskLength + idx.ram.length
	avgdl := 0.0
	if n > 0 {
		avgdl = float64(totalLength) / float64(n)
	}

	var diskHits []core.Hit
	if len(idx.diskReaders) > 0 {
		ms := search.NewMultiSearcher(idx.diskReaders, n, avgdl, idx.k1, idx.b)
		hits, err := ms.Search(ctx, terms, k)
		if err != nil {
			return nil, err
		}
		diskHits = hits
	}

	ramHits := idx.searchRAM(terms, k, n, avgdl)

	merged := mergeTopK(diskHits, ramHits, k)
	return merged, nil
}

func (idx *Indexer) searchRAM(terms []string, k int, n uint64, avgdl float64) []core.Hit {
	scores := map[uint64]float64{}
	for _, term := range terms {
		postings, df, ok := idx.ram.lookup(term)
		if !ok {
			continue
		}
		termIDF := search.IDF(n, df)
		if termIDF == 0 {
			continue
		}
		for _, p := range postings {
			entry, ok := idx.ram.chunk(p.ChunkID)
			if !ok {
				continue
			}
			scores[p.ChunkID] += search.TermScore(float64(p.TF), termIDF, float64(entry.Length), avgdl, idx.k1, idx.b)
		}
	}

	hits := make([]core.Hit, 0, len(scores))
	for chunkID, score := range scores {
		entry, _ := idx.ram.chunk(chunkID)
		hits = append(hits, core.Hit{BookID: entry.BookID, Score: score, ChunkID: chunkID})
	}
	return topKOf(hits, k)
}

// Flush drops the in-RAM index and truncates the WAL, returning how many
// documents were discarded. It never produces an on-disk segment — the
// caller is responsible for re-feeding flushed documents through the batch
// indexer if it wants them persisted.
func (idx *Indexer) Flush() (int, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	count := int(idx.ram.count)
	idx.ram.reset()
	if err := idx.wal.Truncate(); err != nil {
		return 0, fmt.Errorf("flush nrt index: %w", err)
	}
	return count, nil
}

// Close releases the WAL file handle.
func (idx *Indexer) Close() error { return idx.wal.Close() }
