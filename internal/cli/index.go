package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"biblio/internal/analyzer"
	"biblio/internal/config"
	"biblio/internal/display"
	"biblio/internal/engine"
	"biblio/internal/indexer"
	"biblio/internal/logger"
	"biblio/internal/platform"
)

var (
	indexDirFlag     string
	chunksDirFlag    string
	stopwordsFlag    string
	chunkSizeFlag    int
	chunkOverlapFlag int
	batchSizeFlag    int
	workersFlag      int
	incrementalFlag  bool
)

var indexCmd = &cobra.Command{
	Use:   "index <books-dir>",
	Short: "Index a directory of plain-text books",
	Long: `Index every *.txt file under books-dir into one or more immutable segments,
published into the index directory's manifest.`,
	Args: cobra.ExactArgs(1),
	Run:  indexCmdExecute,
}

func init() {
	indexCmd.Flags().StringVar(&indexDirFlag, "index-dir", "", "Index directory (default: the data directory's 'index' subfolder)")
	indexCmd.Flags().StringVar(&chunksDirFlag, "chunks-dir", "", "Optional directory to dump chunk text for debugging/snippets")
	indexCmd.Flags().StringVar(&stopwordsFlag, "stopwords", "", "Optional stopwords file, one word per line")
	indexCmd.Flags().IntVar(&chunkSizeFlag, "chunk-size", 0, "Chunk size in characters (default from config)")
	indexCmd.Flags().IntVar(&chunkOverlapFlag, "chunk-overlap", 0, "Chunk overlap in characters (default from config)")
	indexCmd.Flags().IntVar(&batchSizeFlag, "batch-size", 0, "Chunks per segment batch (default from config)")
	indexCmd.Flags().IntVar(&workersFlag, "workers", 0, "Worker pool size (default: number of CPUs)")
	indexCmd.Flags().BoolVar(&incrementalFlag, "incremental", false, "Skip books whose content hash is unchanged since the last run")
}

// defaultIndexDir is the data directory's 'index' subfolder, used when
// --index-dir is not given.
func defaultIndexDir() string {
	return filepath.Join(platform.GetDataDir(), "index")
}

func indexCmdExecute(cmd *cobra.Command, args []string) {
	initialized, err := IsInitialized()
	if err != nil {
		logger.Errorf("Failed to check if initialized: %+v", err)
		return
	}
	if !initialized {
		logger.Error("Biblio is not initialized. Please run 'biblio init' first.")
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Errorf("Failed to load config: %+v", err)
		return
	}

	booksDir := args[0]
	indexDir := indexDirFlag
	if indexDir == "" {
		indexDir = defaultIndexDir()
	}

	stopwords := []string{}
	if stopwordsFlag != "" {
		stopwords, err = analyzer.LoadStopwordsFile(stopwordsFlag)
		if err != nil {
			logger.Errorf("Failed to load stopwords file: %+v", err)
			return
		}
	}

	opts := indexer.Options{
		BooksDir:     booksDir,
		IndexDir:     indexDir,
		ChunksDir:    chunksDirFlag,
		Stopwords:    stopwords,
		ChunkSize:    orDefault(chunkSizeFlag, cfg.Index.ChunkSize),
		ChunkOverlap: orDefault(chunkOverlapFlag, cfg.Index.ChunkOverlap),
		BatchSize:    orDefault(batchSizeFlag, cfg.Index.BatchSize),
		WorkerCount:  orDefault(workersFlag, cfg.Index.WorkerCount),
		K1:           cfg.Ranking.K1,
		B:            cfg.Ranking.B,
		Incremental:  incrementalFlag,
	}

	var result indexer.Result
	runErr := display.RunWithProgress("Indexing", 0, func(callback func(current, total int, message string)) error {
		opts.ProgressCallback = callback
		var e error
		result, e = engine.IndexCorpus(context.Background(), opts)
		return e
	})

	if runErr != nil {
		logger.Errorf("Failed to build index: %+v", runErr)
		return
	}

	logger.Print("Indexing completed: %d documents, %d chunks written", result.DocumentsIndexed, result.ChunksWritten)
}

// orDefault returns v unless it is the zero value, in which case it returns
// def. Used to let a 0-valued CLI flag fall through to the config default.
func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
