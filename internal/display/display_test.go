package display

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblio/internal/core"
	"biblio/internal/indexer"
)

func TestPrintHitsEmptyDoesNotPanic(t *testing.T) {
	PrintHits(nil, "anything")
}

func TestPrintHitsRenders(t *testing.T) {
	hits := []core.Hit{{BookID: "d1", Score: 1.23, ChunkID: 0}}
	PrintHits(hits, "justice")
}

func TestLoadSnippetsFindsMatchingChunkIDs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "segment_00000.jsonl")
	f, err := os.Create(path)
	require.NoError(t, err)
	enc := json.NewEncoder(f)
	require.NoError(t, enc.Encode(indexer.DumpedChunk{ChunkID: 0, BookID: "d1", Text: "liberty and justice"}))
	require.NoError(t, enc.Encode(indexer.DumpedChunk{ChunkID: 1, BookID: "d2", Text: "justice delayed"}))
	require.NoError(t, f.Close())

	snippets, err := LoadSnippets(dir, []uint64{1})
	require.NoError(t, err)
	assert.Equal(t, "justice delayed", snippets[1])
	assert.NotContains(t, snippets, uint64(0))
}

func TestLoadSnippetsMissingDirReturnsEmpty(t *testing.T) {
	snippets, err := LoadSnippets(filepath.Join(t.TempDir(), "absent"), []uint64{0})
	require.NoError(t, err)
	assert.Empty(t, snippets)
}
