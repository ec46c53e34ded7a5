package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemSourceDocuments(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alpha.txt"), []byte("alpha body"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "beta.txt"), []byte("beta body"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.md"), []byte("not a book"), 0644))

	src := FilesystemSource{Dir: dir}
	docs, err := src.Documents()
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "alpha", docs[0].BookID)
	assert.Equal(t, "alpha body", docs[0].Text)
	assert.Equal(t, "beta", docs[1].BookID)
}

func TestFilesystemSourceMissingDir(t *testing.T) {
	src := FilesystemSource{Dir: "/nonexistent/books"}
	_, err := src.Documents()
	assert.Error(t, err)
}

func TestFilesystemSourceEmptyDir(t *testing.T) {
	dir := t.TempDir()
	src := FilesystemSource{Dir: dir}
	docs, err := src.Documents()
	require.NoError(t, err)
	assert.Empty(t, docs)
}
