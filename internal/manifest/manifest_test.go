package manifest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblio/internal/core"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	m := New(1.5, 0.75)
	m = m.WithSegment("segment_00000", core.SegmentStats{ChunkCount: 10, TotalLength: 500, BaseChunkID: 0})
	m = m.WithSegment("segment_00001", core.SegmentStats{ChunkCount: 5, TotalLength: 200, BaseChunkID: 10})

	data := m.Marshal()
	parsed, err := Unmarshal(data)
	require.NoError(t, err)

	assert.Equal(t, m.TotalDocs, parsed.TotalDocs)
	assert.Equal(t, m.TotalLength, parsed.TotalLength)
	assert.Equal(t, m.K1, parsed.K1)
	assert.Equal(t, m.B, parsed.B)
	assert.Equal(t, m.Segments, parsed.Segments)
	assert.InDelta(t, m.AvgDL(), parsed.AvgDL(), 1e-9)
}

func TestAvgDLZeroDocs(t *testing.T) {
	m := New(1.5, 0.75)
	assert.Equal(t, float64(0), m.AvgDL())
}

func TestUnmarshalRejectsUnknownVersion(t *testing.T) {
	_, err := Unmarshal([]byte("version: 99\ntotal_docs: 0\ntotal_length: 0\nk1: 1.5\nb: 0.75\nsegments: \n"))
	assert.ErrorIs(t, err, core.ErrInvalidManifest)
}

func TestUnmarshalRejectsMissingFields(t *testing.T) {
	_, err := Unmarshal([]byte("version: 1\n"))
	assert.ErrorIs(t, err, core.ErrInvalidManifest)
}

func TestSaveAtomicAndLoad(t *testing.T) {
	dir := t.TempDir()
	m := New(1.5, 0.75)
	m = m.WithSegment("segment_00000", core.SegmentStats{ChunkCount: 3, TotalLength: 30, BaseChunkID: 0})

	require.NoError(t, SaveAtomic(dir, m))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, m.TotalDocs, loaded.TotalDocs)
	assert.Equal(t, []string{"segment_00000"}, loaded.Segments)

	// no leftover staging files
	entries, err := filepath.Glob(filepath.Join(dir, "manifest.tmp.*"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoadMissingManifestIsInvalid(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir)
	assert.ErrorIs(t, err, core.ErrInvalidManifest)
}

func TestLoadOrNewBootstraps(t *testing.T) {
	dir := t.TempDir()
	m, err := LoadOrNew(dir, 1.5, 0.75)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), m.TotalDocs)
	assert.Equal(t, 1.5, m.K1)
}

func TestNextBaseChunkID(t *testing.T) {
	m := New(1.5, 0.75)
	assert.Equal(t, uint64(0), m.NextBaseChunkID())
	m = m.WithSegment("segment_00000", core.SegmentStats{ChunkCount: 7, TotalLength: 70})
	assert.Equal(t, uint64(7), m.NextBaseChunkID())
}

func TestAcquireReleaseLock(t *testing.T) {
	dir := t.TempDir()

	l, err := AcquireLock(dir)
	require.NoError(t, err)

	_, err = AcquireLock(dir)
	assert.Error(t, err, "a second acquire while held must fail")

	require.NoError(t, l.Release())

	l2, err := AcquireLock(dir)
	require.NoError(t, err)
	require.NoError(t, l2.Release())
}
