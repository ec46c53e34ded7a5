package cli

import (
	"github.com/spf13/cobra"

	"biblio/internal/indexer"
	"biblio/internal/logger"
)

var cleanIndexDirFlag string

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove orphaned (uncommitted) segment directories",
	Long: `A segment directory without a COMMIT sentinel is the product of a batch
that crashed before finishing. 'biblio index' already does this automatically on
startup; 'biblio clean' lets you trigger the same cleanup without indexing anything.`,
	Example: `  biblio clean`,
	Run:     cleanCmdExecute,
}

func init() {
	cleanCmd.Flags().StringVar(&cleanIndexDirFlag, "index-dir", "", "Index directory (default: the data directory's 'index' subfolder)")
}

func cleanCmdExecute(cmd *cobra.Command, args []string) {
	initialized, err := IsInitialized()
	if err != nil {
		logger.Errorf("Failed to check if initialized: %+v", err)
		return
	}
	if !initialized {
		logger.Error("Biblio is not initialized. Please run 'biblio init' first.")
		return
	}

	indexDir := cleanIndexDirFlag
	if indexDir == "" {
		indexDir = defaultIndexDir()
	}

	if err := indexer.CleanOrphanedSegments(indexDir, logger.Get().Logger); err != nil {
		logger.Errorf("Failed to clean orphaned segments: %+v", err)
		return
	}
	logger.Success("Cleaned orphaned segment directories under %s", indexDir)
}
