package indexer

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"biblio/internal/logger"
	"biblio/internal/segment"
)

// DumpedChunk is one line of a chunks_dir dump: a chunk's global id, the
// book it belongs to, and its raw text — the addressable, chunk_id-keyed
// snippet store the core itself deliberately does not provide (spec.md §9).
type DumpedChunk struct {
	ChunkID uint64 `json:"chunk_id"`
	BookID  string `json:"book_id"`
	Text    string `json:"text"`
}

// dumpChunkTexts is the optional, best-effort realization of the engine
// API's chunks_dir parameter: a plain-text, newline-delimited JSON dump of
// each batch's raw chunk text, keyed by global chunk_id. A failure here
// never fails indexing.
func dumpChunkTexts(chunksDir string, batchIndex int, base uint64, items []segment.ChunkInput) {
	if err := os.MkdirAll(chunksDir, 0755); err != nil {
		logger.Warnf("chunks_dir: failed to create %s: %v", chunksDir, err)
		return
	}
	path := filepath.Join(chunksDir, fmt.Sprintf("segment_%05d.jsonl", batchIndex))
	f, err := os.Create(path)
	if err != nil {
		logger.Warnf("chunks_dir: failed to create %s: %v", path, err)
		return
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()
	enc := json.NewEncoder(w)
	for i, item := range items {
		dumped := DumpedChunk{ChunkID: base + uint64(i), BookID: item.BookID, Text: item.Text}
		if err := enc.Encode(dumped); err != nil {
			logger.Warnf("chunks_dir: failed to encode chunk for %s: %v", item.BookID, err)
			return
		}
	}
}
