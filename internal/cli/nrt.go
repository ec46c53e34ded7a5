package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"biblio/internal/analyzer"
	"biblio/internal/display"
	"biblio/internal/engine"
	"biblio/internal/logger"
)

var (
	nrtIndexDirFlag  string
	nrtStopwordsFlag string
	nrtBookIDFlag    string
	nrtTextFileFlag  string
	nrtTopKFlag      int
)

var nrtAddCmd = &cobra.Command{
	Use:   "nrt-add <text>",
	Short: "Add a document to the near-real-time index",
	Long: `Append a document to the write-ahead log and make it searchable immediately,
without rewriting any on-disk segment. Pass the text as an argument, or via --text-file.`,
	Args: cobra.MaximumNArgs(1),
	Run:  nrtAddCmdExecute,
}

var nrtSearchCmd = &cobra.Command{
	Use:   "nrt-search <query>...",
	Short: "Search the index, including documents added via nrt-add",
	Args:  cobra.MinimumNArgs(1),
	Run:   nrtSearchCmdExecute,
}

var nrtFlushCmd = &cobra.Command{
	Use:   "nrt-flush",
	Short: "Drop the in-RAM delta index and truncate the write-ahead log",
	Long: `Discards documents added via nrt-add that have not yet been folded into an
on-disk segment. It is the caller's responsibility to re-feed flushed documents
through 'biblio index' if they should be persisted.`,
	Args: cobra.NoArgs,
	Run:  nrtFlushCmdExecute,
}

func init() {
	for _, cmd := range []*cobra.Command{nrtAddCmd, nrtSearchCmd, nrtFlushCmd} {
		cmd.Flags().StringVar(&nrtIndexDirFlag, "index-dir", "", "Index directory (default: the data directory's 'index' subfolder)")
		cmd.Flags().StringVar(&nrtStopwordsFlag, "stopwords", "", "Optional stopwords file, one word per line")
	}
	nrtAddCmd.Flags().StringVar(&nrtBookIDFlag, "book-id", "", "Opaque identifier stored verbatim and surfaced as the hit's book id")
	nrtAddCmd.Flags().StringVar(&nrtTextFileFlag, "text-file", "", "Read the document text from this file instead of the argument")
	nrtSearchCmd.Flags().IntVar(&nrtTopKFlag, "top-k", 10, "Number of results to return")
}

func loadStopwordsOrEmpty(path string) []string {
	if path == "" {
		return nil
	}
	stopwords, err := analyzer.LoadStopwordsFile(path)
	if err != nil {
		logger.Errorf("Failed to load stopwords file: %+v", err)
		return nil
	}
	return stopwords
}

func nrtIndexDir() string {
	if nrtIndexDirFlag == "" {
		return defaultIndexDir()
	}
	return nrtIndexDirFlag
}

func nrtAddCmdExecute(cmd *cobra.Command, args []string) {
	var text string
	switch {
	case nrtTextFileFlag != "":
		data, err := os.ReadFile(nrtTextFileFlag)
		if err != nil {
			logger.Errorf("Failed to read --text-file: %+v", err)
			return
		}
		text = string(data)
	case len(args) == 1:
		text = args[0]
	default:
		logger.PrintError("Provide the document text as an argument or via --text-file")
		return
	}

	idx, err := engine.OpenNrtIndexer(nrtIndexDir(), loadStopwordsOrEmpty(nrtStopwordsFlag))
	if err != nil {
		logger.Errorf("Failed to open NRT indexer: %+v", err)
		return
	}
	defer idx.Close()

	chunkID, err := idx.AddDocument(text, []byte(nrtBookIDFlag))
	if err != nil {
		logger.Errorf("Failed to add document: %+v", err)
		return
	}
	logger.Print("Added document as chunk %d", chunkID)
}

func nrtSearchCmdExecute(cmd *cobra.Command, args []string) {
	queryString := args[0]
	for _, a := range args[1:] {
		queryString += " " + a
	}

	stopwords := loadStopwordsOrEmpty(nrtStopwordsFlag)
	idx, err := engine.OpenNrtIndexer(nrtIndexDir(), stopwords)
	if err != nil {
		logger.Errorf("Failed to open NRT indexer: %+v", err)
		return
	}
	defer idx.Close()

	terms := analyzer.New(stopwords).Analyze(queryString)
	if len(terms) == 0 {
		display.PrintHits(nil, queryString)
		return
	}

	hits, err := idx.Search(context.Background(), terms, nrtTopKFlag)
	if err != nil {
		logger.PrintError("Search failed: %v", err)
		return
	}
	display.PrintHits(hits, queryString)
}

func nrtFlushCmdExecute(cmd *cobra.Command, args []string) {
	idx, err := engine.OpenNrtIndexer(nrtIndexDir(), loadStopwordsOrEmpty(nrtStopwordsFlag))
	if err != nil {
		logger.Errorf("Failed to open NRT indexer: %+v", err)
		return
	}
	defer idx.Close()

	count, err := idx.Flush()
	if err != nil {
		logger.Errorf("Failed to flush NRT index: %+v", err)
		return
	}
	logger.Print("Flushed %d documents from the in-RAM index", count)
}
