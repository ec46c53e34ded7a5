// Package indexer implements the parallel batch indexer: it partitions a
// document stream into chunk batches, builds one immutable segment per
// batch concurrently, and publishes each segment to the manifest as soon as
// it commits (spec.md §4.6).
package indexer

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"biblio/internal/analyzer"
	"biblio/internal/chunker"
	"biblio/internal/constants"
	"biblio/internal/ingest"
	"biblio/internal/logger"
	"biblio/internal/manifest"
	"biblio/internal/segment"
)

// Options configures one batch-indexer run.
type Options struct {
	BooksDir     string
	IndexDir     string
	ChunksDir    string // optional: best-effort debug dump of chunk texts
	Stopwords    []string
	ChunkSize    int
	ChunkOverlap int
	BatchSize    int
	WorkerCount  int
	K1, B        float64
	Incremental  bool

	ProgressCallback func(current, total int, message string)
}

// Result is the return value of IndexCorpus: the engine API's
// (documents_indexed, chunks_written) pair.
type Result struct {
	DocumentsIndexed int
	ChunksWritten    int
}

type batch struct {
	index int
	base  uint64
	items []segment.ChunkInput
}

// IndexCorpus reads every document from opts.BooksDir, partitions it into
// batches of opts.BatchSize chunks, and builds + publishes one segment per
// batch using a worker pool of opts.WorkerCount goroutines. It is the Go
// binding of the engine API's index_corpus operation.
func IndexCorpus(ctx context.Context, opts Options) (Result, error) {
	if err := CleanOrphanedSegments(opts.IndexDir, logger.Get().Logger); err != nil {
		return Result{}, err
	}

	k1, b := opts.K1, opts.B
	if k1 == 0 {
		k1 = constants.DefaultK1
	}
	if b == 0 {
		b = constants.DefaultB
	}

	m, err := manifest.LoadOrNew(opts.IndexDir, k1, b)
	if err != nil {
		return Result{}, err
	}
	// Ensure a manifest file exists on disk before any worker tries to
	// publish against it — publish() uses a strict Load, not LoadOrNew.
	if err := manifest.SaveAtomic(opts.IndexDir, m); err != nil {
		return Result{}, err
	}

	source := ingest.FilesystemSource{Dir: opts.BooksDir}
	docs, err := source.Documents()
	if err != nil {
		return Result{}, err
	}

	hashes, err := loadHashes(opts.IndexDir)
	if err != nil {
		return Result{}, err
	}

	an := analyzer.New(opts.Stopwords)
	chunkSize := opts.ChunkSize
	if chunkSize == 0 {
		chunkSize = constants.DefaultChunkSize
	}
	chunkOverlap := opts.ChunkOverlap
	if chunkOverlap == 0 {
		chunkOverlap = constants.DefaultChunkOverlap
	}
	batchSize := opts.BatchSize
	if batchSize == 0 {
		batchSize = constants.DefaultBatchSize
	}
	workerCount := opts.WorkerCount
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}

	nextChunkID := atomic.NewUint64(m.NextBaseChunkID())
	documentsIndexed := 0

	// Partition stage: single-threaded so chunk-id ranges are assigned
	// deterministically before any worker starts scoring. Chunking itself
	// is cheap relative to analysis + postings construction, so doing it
	// here does not bottleneck the pipeline; the CPU-heavy Analyzer +
	// Segment writer work below still runs one goroutine per batch.
	var batches []batch
	var current []segment.ChunkInput
	nextSegmentIndex := len(m.Segments)

	flush := func() {
		if len(current) == 0 {
			return
		}
		base := nextChunkID.Add(uint64(len(current))) - uint64(len(current))
		batches = append(batches, batch{index: nextSegmentIndex, base: base, items: current})
		nextSegmentIndex++
		current = nil
	}

	for _, doc := range docs {
		if len(doc.Text) == 0 {
			continue // zero-length document text is skipped silently
		}
		hash := contentHash(doc.Text)
		if opts.Incremental && hashes[doc.BookID] == hash {
			continue
		}
		hashes[doc.BookID] = hash
		documentsIndexed++

		for _, chunkText := range chunker.Chunk(doc.Text, chunkSize, chunkOverlap) {
			current = append(current, segment.ChunkInput{BookID: doc.BookID, Text: chunkText})
			if len(current) >= batchSize {
				flush()
			}
		}
	}
	flush()

	totalChunks := 0
	for _, bt := range batches {
		totalChunks += len(bt.items)
	}

	written := atomic.NewInt32(0)
	lockMu := newManifestPublisher(opts.IndexDir)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount)

	for _, bt := range batches {
		bt := bt
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			segDir := filepath.Join(opts.IndexDir, fmt.Sprintf("%s%05d", constants.SegmentDirPrefix, bt.index))
			stats, err := segment.Write(segDir, bt.base, bt.items, an)
			if err != nil {
				return err
			}

			if opts.ChunksDir != "" {
				dumpChunkTexts(opts.ChunksDir, bt.index, bt.base, bt.items)
			}

			if err := lockMu.publish(filepath.Base(segDir), stats); err != nil {
				return err
			}

			n := written.Add(int32(len(bt.items)))
			if opts.ProgressCallback != nil {
				opts.ProgressCallback(int(n), totalChunks, fmt.Sprintf("indexed segment %d", bt.index))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	if err := saveHashes(opts.IndexDir, hashes); err != nil {
		return Result{}, err
	}

	return Result{DocumentsIndexed: documentsIndexed, ChunksWritten: int(written.Load())}, nil
}
