package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"biblio/internal/benchmark"
	"biblio/internal/logger"
)

var (
	benchNumBooksFlag     int
	benchWordsPerBookFlag int
	benchIterationsFlag   int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark indexing throughput and query latency",
	Long: `Generates a synthetic corpus under a temporary directory, indexes it, then
runs a fixed set of probe queries repeatedly to report p50/p95/p99 query latency
and queries per second.`,
	Example: `  biblio bench --books 2000`,
	Args:    cobra.NoArgs,
	Run:     benchCmdExecute,
}

func init() {
	benchCmd.Flags().IntVar(&benchNumBooksFlag, "books", 500, "Number of synthetic books to generate")
	benchCmd.Flags().IntVar(&benchWordsPerBookFlag, "words-per-book", 400, "Approximate word count per synthetic book")
	benchCmd.Flags().IntVar(&benchIterationsFlag, "iterations", 3, "How many times to run the probe query set")
}

func benchCmdExecute(cmd *cobra.Command, args []string) {
	dir, err := os.MkdirTemp("", "biblio-bench-*")
	if err != nil {
		logger.Errorf("Failed to create temp directory: %+v", err)
		return
	}
	defer os.RemoveAll(dir)

	cfg := benchmark.Config{
		NumBooks:     benchNumBooksFlag,
		WordsPerBook: benchWordsPerBookFlag,
		Iterations:   benchIterationsFlag,
	}

	logger.Print("Generating and indexing %d synthetic books...", cfg.NumBooks)
	report, err := benchmark.Run(context.Background(), dir, cfg)
	if err != nil {
		logger.Errorf("Benchmark failed: %+v", err)
		return
	}

	benchmark.PrintReport(report)
}
