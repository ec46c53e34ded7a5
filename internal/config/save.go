package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"biblio/internal/constants"
	"biblio/internal/core"
	"biblio/internal/logger"
	"biblio/internal/platform"
	"biblio/internal/utils"
)

// SaveConfig marshals cfg to TOML and writes it to constants.ConfigPath,
// creating the parent directory if necessary.
func SaveConfig(cfg *core.Config) error {
	configPath, err := utils.ExpandFilePath(constants.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to expand config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configBytes, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, configBytes, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// InitCmdExecute implements `biblio init`: writes the default config file
// and creates the data directory, unless both already exist.
func InitCmdExecute(cmd *cobra.Command, args []string) {
	configPath, err := utils.ExpandFilePath(constants.ConfigPath)
	if err != nil {
		logger.Errorf("Failed to expand config path: %+v", err)
		return
	}

	if _, err := os.Stat(configPath); err == nil {
		logger.Warnf("Config already exists at: %s", configPath)
	} else {
		cfg := DefaultConfig
		if err := SaveConfig(&cfg); err != nil {
			logger.Errorf("Failed to write default config: %+v", err)
			return
		}
		logger.Success("Wrote default config to: %s", configPath)
	}

	dataDir := platform.GetDataDir()
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		logger.Errorf("Failed to create data directory: %+v", err)
		return
	}
	logger.Success("Data directory ready at: %s", dataDir)
}
