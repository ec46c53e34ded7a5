package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"biblio/internal/constants"
	"biblio/internal/core"
	"biblio/internal/logger"
	"biblio/internal/utils"
)

// DefaultConfig is the default configuration for biblio.
var DefaultConfig = core.Config{
	Version: 1,
	Index: core.IndexConfig{
		ChunkSize:     constants.DefaultChunkSize,
		ChunkOverlap:  constants.DefaultChunkOverlap,
		BatchSize:     constants.DefaultBatchSize,
		WorkerCount:   0, // 0 means "use runtime.NumCPU()"
		StopwordsPath: "",
	},
	Ranking: core.RankingConfig{
		K1: constants.DefaultK1,
		B:  constants.DefaultB,
	},
	Search: core.SearchConfig{
		DefaultLimit: constants.DefaultSearchLimit,
	},
	Logging: core.LoggingConfig{
		Level: "info",
		JSON:  true,
	},
}

// DefaultConfigWriter returns the default configuration as a TOML string.
func DefaultConfigWriter() (string, error) {
	configBytes, err := toml.Marshal(DefaultConfig)
	if err != nil {
		logger.Errorf("Error marshaling default config to TOML: %+v", err)
		return "", fmt.Errorf("failed to marshal default config: %w", err)
	}

	return string(configBytes), nil
}

// LoadConfig reads the config file at constants.ConfigPath, falling back to
// DefaultConfig when the file does not exist.
func LoadConfig() (*core.Config, error) {
	var cfg core.Config

	configPath, err := utils.ExpandFilePath(constants.ConfigPath)
	if err != nil {
		logger.Errorf("Failed to expand config path: %+v", err)
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	configBytes, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warnf("Config file not found at: %s", configPath)
			logger.Info("Using default configuration")
			configStr, err := DefaultConfigWriter()
			if err != nil {
				logger.Errorf("Failed to write default config: %+v", err)
				return nil, fmt.Errorf("failed to write default config: %w", err)
			}
			configBytes = []byte(configStr)
		} else {
			logger.Errorf("Failed to read config file: %+v", err)
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := toml.Unmarshal(configBytes, &cfg); err != nil {
		logger.Errorf("Error unmarshaling config: %+v", err)
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// ShowCmdExecute implements `biblio config show`: prints the active config.
func ShowCmdExecute(cmd *cobra.Command, args []string) {
	configPath, err := utils.ExpandFilePath(constants.ConfigPath)
	if err != nil {
		logger.Errorf("Failed to expand config path: %+v", err)
		return
	}

	configBytes, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warnf("Config file not found at: %s", configPath)
			logger.Info("Using default configuration")
			configStr, err := DefaultConfigWriter()
			if err != nil {
				logger.Errorf("Failed to write default config: %+v", err)
				return
			}
			configBytes = []byte(configStr)
		} else {
			logger.Errorf("Failed to read config file: %+v", err)
			return
		}
	}

	if err := utils.PrettyPrintConfig(configBytes); err != nil {
		logger.Errorf("Failed to pretty print config: %+v", err)
	}
}
