package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblio/internal/core"
)

func TestDefaultConfigWriter(t *testing.T) {
	t.Run("returns valid TOML", func(t *testing.T) {
		configStr, err := DefaultConfigWriter()
		require.NoError(t, err)
		require.NotEmpty(t, configStr)

		assert.Contains(t, configStr, "version = 1")
		assert.Contains(t, configStr, "[index]")
		assert.Contains(t, configStr, "[ranking]")
		assert.Contains(t, configStr, "[search]")
		assert.Contains(t, configStr, "[logging]")
	})

	t.Run("contains expected default values", func(t *testing.T) {
		configStr, err := DefaultConfigWriter()
		require.NoError(t, err)

		assert.Contains(t, configStr, "chunk_size = 1000")
		assert.Contains(t, configStr, "chunk_overlap = 100")
		assert.Contains(t, configStr, "batch_size = 1000")

		assert.Contains(t, configStr, "k1 = 1.5")
		assert.Contains(t, configStr, "b = 0.75")

		assert.Contains(t, configStr, "default_limit = 20")

		assert.Contains(t, configStr, "level = 'info'")
		assert.Contains(t, configStr, "json = true")
	})
}

func TestDefaultConfig(t *testing.T) {
	t.Run("has correct structure", func(t *testing.T) {
		cfg := DefaultConfig

		assert.Equal(t, uint8(1), cfg.Version)
		assert.NotNil(t, cfg.Index)
		assert.NotNil(t, cfg.Ranking)
		assert.NotNil(t, cfg.Search)
		assert.NotNil(t, cfg.Logging)
	})

	t.Run("has correct index defaults", func(t *testing.T) {
		cfg := DefaultConfig

		assert.Equal(t, 1000, cfg.Index.ChunkSize)
		assert.Equal(t, 100, cfg.Index.ChunkOverlap)
		assert.Equal(t, 1000, cfg.Index.BatchSize)
		assert.Equal(t, 0, cfg.Index.WorkerCount)
		assert.Empty(t, cfg.Index.StopwordsPath)
	})

	t.Run("has correct ranking defaults", func(t *testing.T) {
		cfg := DefaultConfig

		assert.Equal(t, 1.5, cfg.Ranking.K1)
		assert.Equal(t, 0.75, cfg.Ranking.B)
	})

	t.Run("has correct search defaults", func(t *testing.T) {
		cfg := DefaultConfig

		assert.Equal(t, 20, cfg.Search.DefaultLimit)
	})

	t.Run("has correct logging defaults", func(t *testing.T) {
		cfg := DefaultConfig

		assert.Equal(t, "info", cfg.Logging.Level)
		assert.True(t, cfg.Logging.JSON)
	})
}

func TestConfigMarshaling(t *testing.T) {
	t.Run("can marshal and unmarshal config", func(t *testing.T) {
		testConfig := core.Config{
			Version: 1,
			Index: core.IndexConfig{
				ChunkSize:    500,
				ChunkOverlap: 50,
				BatchSize:    200,
				WorkerCount:  4,
			},
			Ranking: core.RankingConfig{K1: 1.2, B: 0.8},
			Search:  core.SearchConfig{DefaultLimit: 10},
			Logging: core.LoggingConfig{Level: "debug", JSON: false},
		}

		configBytes, err := toml.Marshal(testConfig)
		require.NoError(t, err)
		require.NotEmpty(t, configBytes)

		var unmarshaled core.Config
		err = toml.Unmarshal(configBytes, &unmarshaled)
		require.NoError(t, err)

		assert.Equal(t, testConfig, unmarshaled)
	})
}

func TestConfigFileOperations(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.toml")

	t.Run("write and read config file", func(t *testing.T) {
		testConfig := DefaultConfig

		configBytes, err := toml.Marshal(testConfig)
		require.NoError(t, err)

		err = os.WriteFile(configPath, configBytes, 0644)
		require.NoError(t, err)

		readBytes, err := os.ReadFile(configPath)
		require.NoError(t, err)

		var readConfig core.Config
		err = toml.Unmarshal(readBytes, &readConfig)
		require.NoError(t, err)

		assert.Equal(t, testConfig, readConfig)
	})

	t.Run("handle missing config file", func(t *testing.T) {
		_, err := os.ReadFile(filepath.Join(tempDir, "nonexistent.toml"))
		assert.Error(t, err)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("handle empty config file", func(t *testing.T) {
		emptyPath := filepath.Join(tempDir, "empty.toml")
		err := os.WriteFile(emptyPath, []byte(""), 0644)
		require.NoError(t, err)

		var cfg core.Config
		err = toml.Unmarshal([]byte(""), &cfg)
		assert.NoError(t, err)
	})
}
