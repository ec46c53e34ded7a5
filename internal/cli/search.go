package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"biblio/internal/analyzer"
	"biblio/internal/core"
	"biblio/internal/display"
	"biblio/internal/engine"
	"biblio/internal/logger"
)

var (
	searchIndexDirFlag  string
	searchTopKFlag      int
	searchStopwordsFlag string
	searchChunksDirFlag string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search the index",
	Long: `Search the committed, on-disk index and rank results by BM25.

  biblio search shakespeare tragedy
  biblio search "the declaration of independence"`,
	Example: `  biblio search war and peace
  biblio search thermodynamics`,
	Args: cobra.MinimumNArgs(1),
	Run:  searchCmdExecute,
}

func init() {
	searchCmd.Flags().StringVar(&searchIndexDirFlag, "index-dir", "", "Index directory (default: the data directory's 'index' subfolder)")
	searchCmd.Flags().IntVar(&searchTopKFlag, "top-k", 10, "Number of results to return")
	searchCmd.Flags().StringVar(&searchStopwordsFlag, "stopwords", "", "Optional stopwords file, one word per line")
	searchCmd.Flags().StringVar(&searchChunksDirFlag, "chunks-dir", "", "Optional chunks_dir dump to source one-line snippets from")
}

func searchCmdExecute(cmd *cobra.Command, args []string) {
	initialized, err := IsInitialized()
	if err != nil {
		logger.Errorf("Failed to check if initialized: %+v", err)
		return
	}
	if !initialized {
		logger.Error("Biblio is not initialized. Please run 'biblio init' first.")
		return
	}

	queryString := strings.TrimSpace(strings.Join(args, " "))
	if queryString == "" {
		logger.PrintError("Search query cannot be empty. Example: biblio search \"your query\"")
		return
	}

	indexDir := searchIndexDirFlag
	if indexDir == "" {
		indexDir = defaultIndexDir()
	}

	searcher, err := engine.Open(indexDir)
	if err != nil {
		logger.PrintError("No index found at %s. Please run 'biblio index' first.", indexDir)
		return
	}
	defer searcher.Close()

	if searchStopwordsFlag != "" {
		stopwords, err := analyzer.LoadStopwordsFile(searchStopwordsFlag)
		if err != nil {
			logger.Errorf("Failed to load stopwords file: %+v", err)
			return
		}
		searcher.SetStopwords(stopwords)
	}

	var hits []core.Hit
	runErr := display.RunWithProgress("Searching", 0, func(callback func(current, total int, message string)) error {
		var e error
		hits, e = searcher.Search(context.Background(), queryString, searchTopKFlag)
		return e
	})
	if runErr != nil {
		logger.PrintError("Search failed: %v", runErr)
		return
	}

	if searchChunksDirFlag != "" {
		wanted := make([]uint64, len(hits))
		for i, h := range hits {
			wanted[i] = h.ChunkID
		}
		snippets, err := display.LoadSnippets(searchChunksDirFlag, wanted)
		if err != nil {
			logger.Debugf("Failed to load snippets: %v", err)
			display.PrintHits(hits, queryString)
			return
		}
		display.PrintHitsWithSnippets(hits, queryString, snippets)
		return
	}

	display.PrintHits(hits, queryString)
}
