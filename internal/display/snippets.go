package display

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"biblio/internal/core"
	"biblio/internal/indexer"
)

// LoadSnippets scans every regular file directly under chunksDir (the batch
// indexer's optional chunks_dir dump writes one *.jsonl file per segment;
// other files are read too) and returns the text for each
// chunk id present in wanted. Missing files or malformed lines are skipped
// silently — this is a display convenience, never part of the core index.
func LoadSnippets(chunksDir string, wanted []uint64) (map[uint64]string, error) {
	want := make(map[uint64]bool, len(wanted))
	for _, id := range wanted {
		want[id] = true
	}

	out := make(map[uint64]string)
	entries, err := os.ReadDir(chunksDir)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, fmt.Errorf("%w: read chunks dir %s: %v", core.ErrIO, chunksDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		scanFile(filepath.Join(chunksDir, entry.Name()), want, out)
	}
	return out, nil
}

func scanFile(path string, want map[uint64]bool, out map[uint64]string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		var chunk indexer.DumpedChunk
		if err := json.Unmarshal(scanner.Bytes(), &chunk); err != nil {
			continue
		}
		if want[chunk.ChunkID] {
			out[chunk.ChunkID] = chunk.Text
		}
	}
}
