package cli

import (
	"github.com/spf13/cobra"

	"biblio/internal/config"
)

// ConfigCmd groups configuration subcommands.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration commands",
	Long:  `Configuration commands`,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show configuration values",
	Long:  `Show configuration values`,
	Run:   config.ShowCmdExecute,
}

func init() {
	ConfigCmd.AddCommand(showCmd)
}
