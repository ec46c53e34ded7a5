//go:build !windows

package platform

import (
	"os"
	"path/filepath"
)

// GetDataDir returns the platform-appropriate data directory for Unix systems
// Uses XDG_DATA_HOME or falls back to ~/.local/share/biblio
func GetDataDir() string {
	// Check XDG_DATA_HOME first
	xdgDataHome := os.Getenv("XDG_DATA_HOME")
	if xdgDataHome != "" {
		return filepath.Join(xdgDataHome, "biblio")
	}

	// Fall back to ~/.local/share/biblio
	home, err := os.UserHomeDir()
	if err != nil {
		return "/tmp/biblio" // Last resort fallback
	}
	return filepath.Join(home, ".local", "share", "biblio")
}

// GetConfigDir returns the platform-appropriate config directory for Unix systems
// Uses XDG_CONFIG_HOME or falls back to ~/.config/biblio
func GetConfigDir() string {
	// Check XDG_CONFIG_HOME first
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "biblio")
	}

	// Fall back to ~/.config/biblio
	home, err := os.UserHomeDir()
	if err != nil {
		return "/tmp/biblio" // Last resort fallback
	}
	return filepath.Join(home, ".config", "biblio")
}

// GetConfigPath returns the full path to the config file for Unix systems
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "biblio.toml")
}
