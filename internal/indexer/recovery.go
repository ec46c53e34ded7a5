package indexer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"biblio/internal/constants"
	"biblio/internal/core"
)

// CleanOrphanedSegments implements the spec's only crash-recovery rule
// (spec.md §4.6): a segment directory without a COMMIT sentinel is the
// product of a batch that never finished, and is deleted outright. No
// partial segment is ever consumed by a reader.
func CleanOrphanedSegments(indexDir string, log zerolog.Logger) error {
	entries, err := os.ReadDir(indexDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: list index dir: %v", core.ErrIO, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), constants.SegmentDirPrefix) {
			continue
		}
		segDir := filepath.Join(indexDir, entry.Name())
		commitPath := filepath.Join(segDir, constants.CommitSentinelName)
		if _, err := os.Stat(commitPath); err == nil {
			continue // committed, keep it
		}
		log.Warn().Str("segment", segDir).Msg("removing orphaned (uncommitted) segment directory")
		if err := os.RemoveAll(segDir); err != nil {
			return fmt.Errorf("%w: remove orphaned segment %s: %v", core.ErrIO, segDir, err)
		}
	}
	return nil
}
