package indexer

import (
	"fmt"
	"sync"

	"biblio/internal/core"
	"biblio/internal/manifest"
)

// manifestPublisher serializes manifest read-modify-write cycles across
// worker goroutines within this process, and holds the cross-process
// manifest.Lock for the duration of each publish. It is the only
// cross-worker synchronization point in the indexing pipeline
// (spec.md §4.6, §5).
type manifestPublisher struct {
	indexDir string
	mu       sync.Mutex
}

func newManifestPublisher(indexDir string) *manifestPublisher {
	return &manifestPublisher{indexDir: indexDir}
}

// publish appends a newly-committed segment to the manifest and saves it
// atomically. Workers call this once their segment.Write has returned
// successfully; segments may publish out of commit order.
func (p *manifestPublisher) publish(segmentName string, stats core.SegmentStats) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	lock, err := manifest.AcquireLock(p.indexDir)
	if err != nil {
		return fmt.Errorf("acquire manifest lock: %w", err)
	}
	defer lock.Release()

	// A manifest file must already be on disk by the time any worker
	// publishes (IndexCorpus writes the bootstrap manifest before starting
	// the worker pool), so Load — not LoadOrNew — is correct here: it
	// would be a bug for this file to still be missing.
	m, err := manifest.Load(p.indexDir)
	if err != nil {
		return err
	}

	m = m.WithSegment(segmentName, stats)
	return manifest.SaveAtomic(p.indexDir, m)
}
