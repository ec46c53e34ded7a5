package cli

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"biblio/internal/config"
	"biblio/internal/constants"
	"biblio/internal/logger"
	"biblio/internal/platform"
	"biblio/internal/utils"
	"biblio/internal/version"
)

var (
	verbose bool
	quiet   bool
)

// getLogLevelFromConfig loads the config and returns its logging level.
// Returns empty string (defaults to "info") if the config can't be loaded.
func getLogLevelFromConfig() string {
	cfg, err := config.LoadConfig()
	if err != nil {
		return ""
	}
	return cfg.Logging.Level
}

var rootCmd = &cobra.Command{
	Use:   "biblio",
	Short: "Biblio - a segmented BM25 search engine for book-length text corpora",
	Long:  `Biblio indexes a directory of plain-text books into immutable, memory-mapped segments and ranks search results with BM25.`,

	PreRun: func(cmd *cobra.Command, args []string) {
		logLevel := getLogLevelFromConfig()
		logger.Init(verbose, quiet, false, logLevel)
	},

	Run: func(cmd *cobra.Command, args []string) {
		logger.Header("Welcome to Biblio 📚")
		logger.Print("Use 'biblio --help' to see available commands")
		logger.Blank()

		logger.Debug("Initializing Biblio...")
		logger.Debug("Application ready")
	},
}

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	Long:    `Display the current version of Biblio and its storage engine format.`,
	Run:     versionCmdExecute,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config and create the data directory",
	Long:  `Writes a default config file (unless one already exists) and creates the data directory for this platform.`,
	Run:   config.InitCmdExecute,
}

// Execute runs the root command.
func Execute() error {
	logger.Init(verbose, quiet, false, "")
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Enable quiet mode (only errors)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(ConfigCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(nrtAddCmd)
	rootCmd.AddCommand(nrtSearchCmd)
	rootCmd.AddCommand(nrtFlushCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(benchCmd)
}

// IsInitialized reports whether 'biblio init' has already run: the config
// file and the platform data directory must both exist.
func IsInitialized() (bool, error) {
	configPath, err := utils.ExpandFilePath(constants.ConfigPath)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	dataDir := platform.GetDataDir()
	if _, err := os.Stat(dataDir); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func versionCmdExecute(cmd *cobra.Command, args []string) {
	logger.Header("Biblio Version")
	logger.KeyValue("Version", version.BiblioVersion)
	logger.KeyValue("Storage Engine", version.BiblioStorageEngineVersion)
	logger.KeyValue("Go Version", runtime.Version()[2:])
	logger.KeyValue("Platform", platform.Current())
	logger.Blank()
}
