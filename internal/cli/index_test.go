package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexCommand(t *testing.T) {
	t.Run("has correct usage", func(t *testing.T) {
		assert.Equal(t, "index <books-dir>", indexCmd.Use)
	})

	t.Run("requires exactly one argument", func(t *testing.T) {
		assert.NoError(t, indexCmd.Args(indexCmd, []string{"books"}))
		assert.Error(t, indexCmd.Args(indexCmd, []string{}))
		assert.Error(t, indexCmd.Args(indexCmd, []string{"a", "b"}))
	})

	t.Run("registers expected flags", func(t *testing.T) {
		for _, name := range []string{"index-dir", "chunks-dir", "stopwords", "chunk-size", "chunk-overlap", "batch-size", "workers", "incremental"} {
			assert.NotNil(t, indexCmd.Flags().Lookup(name), "flag %s should be registered", name)
		}
	})
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, 5, orDefault(0, 5))
	assert.Equal(t, 7, orDefault(7, 5))
}

func TestDefaultIndexDir(t *testing.T) {
	dir := defaultIndexDir()
	assert.Equal(t, "index", filepath.Base(dir))
}
