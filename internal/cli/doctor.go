package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"biblio/internal/logger"
	"biblio/internal/manifest"
	"biblio/internal/segment"
)

var doctorIndexDirFlag string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Verify an index's on-disk invariants",
	Long: `Opens an index read-only and checks the invariants every committed segment
must hold: postings within a term are strictly increasing by chunk id, a term's df
matches its posting count, and manifest.total_docs equals the sum of every
segment's chunk_count. A segment that fails a check is reported here; a normal
search run only skips a corrupt segment with a logged warning.`,
	Example: `  biblio doctor`,
	Args:    cobra.NoArgs,
	Run:     doctorCmdExecute,
}

func init() {
	doctorCmd.Flags().StringVar(&doctorIndexDirFlag, "index-dir", "", "Index directory (default: the data directory's 'index' subfolder)")
}

func doctorCmdExecute(cmd *cobra.Command, args []string) {
	indexDir := doctorIndexDirFlag
	if indexDir == "" {
		indexDir = defaultIndexDir()
	}

	m, err := manifest.Load(indexDir)
	if err != nil {
		logger.PrintError("Failed to load manifest: %v", err)
		return
	}

	logger.Header("Checking index at %s", indexDir)
	logger.KeyValue("Segments", fmt.Sprintf("%d", len(m.Segments)))
	logger.KeyValue("Manifest total_docs", fmt.Sprintf("%d", m.TotalDocs))

	problems := 0
	chunkSum := uint64(0)

	for _, segName := range m.Segments {
		segDir := filepath.Join(indexDir, segName)
		r, err := segment.Open(segDir)
		if err != nil {
			logger.PrintError("segment %s: failed to open: %v", segName, err)
			problems++
			continue
		}

		stats := r.Stats()
		chunkSum += stats.ChunkCount

		for i := 0; i < r.TermCount(); i++ {
			term := r.TermAt(i)
			postings, df, ok, err := r.Lookup(term)
			if err != nil {
				logger.PrintError("segment %s: term %q: %v", segName, term, err)
				problems++
				continue
			}
			if !ok {
				logger.PrintError("segment %s: term %q: dictionary entry missing on lookup", segName, term)
				problems++
				continue
			}
			if uint64(len(postings)) != df {
				logger.PrintError("segment %s: term %q: df=%d but decoded %d postings", segName, term, df, len(postings))
				problems++
			}
			var prev uint64
			for i, p := range postings {
				if i > 0 && p.ChunkID <= prev {
					logger.PrintError("segment %s: term %q: postings not strictly increasing at index %d", segName, term, i)
					problems++
					break
				}
				if p.ChunkID < stats.BaseChunkID || p.ChunkID >= stats.BaseChunkID+stats.ChunkCount {
					logger.PrintError("segment %s: term %q: chunk id %d outside segment range [%d, %d)",
						segName, term, p.ChunkID, stats.BaseChunkID, stats.BaseChunkID+stats.ChunkCount)
					problems++
					break
				}
				prev = p.ChunkID
			}
		}

		r.Close()
	}

	if chunkSum != m.TotalDocs {
		logger.PrintError("manifest.total_docs (%d) does not equal the sum of segment chunk counts (%d)", m.TotalDocs, chunkSum)
		problems++
	}

	if problems == 0 {
		logger.Success("Index is consistent: %d segments, %d chunks, avgdl=%.2f", len(m.Segments), m.TotalDocs, m.AvgDL())
		return
	}
	logger.PrintError("Found %d problem(s)", problems)
}
