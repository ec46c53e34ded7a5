package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchCommand(t *testing.T) {
	t.Run("has correct usage", func(t *testing.T) {
		assert.Equal(t, "search <query>...", searchCmd.Use)
	})

	t.Run("requires at least one argument", func(t *testing.T) {
		assert.Error(t, searchCmd.Args(searchCmd, []string{}))
		assert.NoError(t, searchCmd.Args(searchCmd, []string{"war"}))
		assert.NoError(t, searchCmd.Args(searchCmd, []string{"war", "and", "peace"}))
	})

	t.Run("registers expected flags", func(t *testing.T) {
		for _, name := range []string{"index-dir", "top-k", "stopwords", "chunks-dir"} {
			assert.NotNil(t, searchCmd.Flags().Lookup(name), "flag %s should be registered", name)
		}
	})

	t.Run("top-k defaults to 10", func(t *testing.T) {
		flag := searchCmd.Flags().Lookup("top-k")
		assert.Equal(t, "10", flag.DefValue)
	})
}
