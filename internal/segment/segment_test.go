package segment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblio/internal/analyzer"
)

func TestWriteAndReadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "segment_00000")
	an := analyzer.New([]string{"and", "for", "is"})

	inputs := []ChunkInput{
		{BookID: "d1", Text: "liberty and justice for all"},
		{BookID: "d2", Text: "justice delayed is justice denied"},
	}

	stats, err := Write(dir, 100, inputs, an)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), stats.ChunkCount)
	assert.Equal(t, uint64(100), stats.BaseChunkID)

	r, err := Open(dir)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, stats, r.Stats())

	postings, df, ok, err := r.Lookup("justice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint64(2), df)
	require.Len(t, postings, 2)
	assert.Equal(t, uint64(100), postings[0].ChunkID)
	assert.Equal(t, uint32(1), postings[0].TF)
	assert.Equal(t, uint64(101), postings[1].ChunkID)
	assert.Equal(t, uint32(2), postings[1].TF)

	_, _, ok, err = r.Lookup("nonexistent")
	require.NoError(t, err)
	assert.False(t, ok)

	c0, err := r.Chunk(0)
	require.NoError(t, err)
	assert.Equal(t, "d1", c0.BookID)
	assert.Equal(t, uint32(3), c0.Length) // "liberty","justice","all" — "and","for" are stopwords

	c1, err := r.Chunk(1)
	require.NoError(t, err)
	assert.Equal(t, "d2", c1.BookID)
}

func TestLookupMissingTermOnEmptySegment(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "segment_00000")
	an := analyzer.New(nil)

	_, err := Write(dir, 0, []ChunkInput{{BookID: "d1", Text: "   "}}, an)
	require.NoError(t, err)

	r, err := Open(dir)
	require.NoError(t, err)
	defer r.Close()

	_, _, ok, err := r.Lookup("anything")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenMissingCommitFails(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "segment_00000")
	an := analyzer.New(nil)
	_, err := Write(dir, 0, []ChunkInput{{BookID: "d1", Text: "hello world"}}, an)
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(dir, commitFile)))

	_, err = Open(dir)
	assert.Error(t, err)
}

func TestChunkOutOfRange(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "segment_00000")
	an := analyzer.New(nil)
	_, err := Write(dir, 0, []ChunkInput{{BookID: "d1", Text: "hello world"}}, an)
	require.NoError(t, err)

	r, err := Open(dir)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Chunk(5)
	assert.Error(t, err)
}

func TestTermsSortedForBinarySearch(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "segment_00000")
	an := analyzer.New(nil)
	inputs := []ChunkInput{
		{BookID: "d1", Text: "zebra apple mango banana"},
	}
	_, err := Write(dir, 0, inputs, an)
	require.NoError(t, err)

	r, err := Open(dir)
	require.NoError(t, err)
	defer r.Close()

	for _, term := range []string{"zebra", "apple", "mango", "banana"} {
		_, _, ok, err := r.Lookup(term)
		require.NoError(t, err)
		assert.True(t, ok, "expected term %q to be found", term)
	}
}
