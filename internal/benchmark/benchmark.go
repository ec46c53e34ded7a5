// Package benchmark synthesizes a corpus of configurable size, indexes it,
// and reports indexing throughput and query latency percentiles. Grounded
// on the original Python implementation's benchmark.py/benchmark_files.py
// scripts, with the result table rendered the way the teacher's
// internal/benchmark package renders a similar corpus-size sweep.
package benchmark

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"biblio/internal/engine"
	"biblio/internal/indexer"
)

// words are drawn on to synthesize book-like text: common English words
// plus the subjects of the probe queries below, so the synthetic corpus
// actually contains hits for them.
var words = []string{
	"the", "of", "and", "a", "to", "in", "is", "was", "for", "with",
	"shakespeare", "war", "love", "peace", "history", "america", "liberty",
	"justice", "declaration", "independence", "revolution", "constitution",
	"thermodynamics", "mesopotamia", "philosophy", "empire", "republic",
	"king", "queen", "soldier", "nation", "freedom", "truth", "nature",
}

// probeQueries mirror the Python benchmark's QUERIES: a mix of common,
// rare, and multi-term lookups run repeatedly to measure latency.
var probeQueries = []string{
	"shakespeare",
	"war",
	"love",
	"declaration of independence",
	"war and peace",
	"history of america",
	"thermodynamics",
	"mesopotamia",
	"the constitution",
	"american revolution",
}

// Config controls one benchmark run.
type Config struct {
	NumBooks     int // number of synthetic documents to generate
	WordsPerBook int // approximate word count per document
	Iterations   int // how many times to run the probe query set
	WorkerCount  int // indexer worker pool size (0 = CPU count)
}

// DefaultConfig returns a small but representative benchmark configuration.
func DefaultConfig() Config {
	return Config{NumBooks: 500, WordsPerBook: 400, Iterations: 3}
}

// Report is the outcome of one Run.
type Report struct {
	NumBooks      int
	TotalBytes    int64
	IndexTime     time.Duration
	ChunksWritten int
	Latencies     []time.Duration
	P50, P95, P99 time.Duration
	Min, Max, Avg time.Duration
	QPS           float64
}

// Run generates a synthetic corpus under a temp directory, indexes it, then
// repeatedly runs probeQueries against the resulting index to measure
// latency. The corpus and index are written under baseDir and left on disk
// for the caller to inspect or clean up.
func Run(ctx context.Context, baseDir string, cfg Config) (*Report, error) {
	corpusDir := filepath.Join(baseDir, "corpus")
	indexDir := filepath.Join(baseDir, "index")

	totalBytes, err := generateCorpus(corpusDir, cfg.NumBooks, cfg.WordsPerBook)
	if err != nil {
		return nil, fmt.Errorf("generate corpus: %w", err)
	}

	start := time.Now()
	result, err := engine.IndexCorpus(ctx, indexer.Options{
		BooksDir:    corpusDir,
		IndexDir:    indexDir,
		WorkerCount: cfg.WorkerCount,
	})
	indexTime := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("index corpus: %w", err)
	}

	searcher, err := engine.Open(indexDir)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	defer searcher.Close()

	iterations := cfg.Iterations
	if iterations <= 0 {
		iterations = 1
	}

	var latencies []time.Duration
	for i := 0; i < iterations; i++ {
		for _, q := range probeQueries {
			qStart := time.Now()
			if _, err := searcher.Search(ctx, q, 10); err != nil {
				return nil, fmt.Errorf("search %q: %w", q, err)
			}
			latencies = append(latencies, time.Since(qStart))
		}
	}

	report := &Report{
		NumBooks:      cfg.NumBooks,
		TotalBytes:    totalBytes,
		IndexTime:     indexTime,
		ChunksWritten: result.ChunksWritten,
		Latencies:     latencies,
	}
	report.summarize()
	return report, nil
}

func (r *Report) summarize() {
	if len(r.Latencies) == 0 {
		return
	}
	sorted := append([]time.Duration(nil), r.Latencies...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	n := len(sorted)
	r.P50 = percentile(sorted, 0.50)
	r.P95 = percentile(sorted, 0.95)
	r.P99 = percentile(sorted, 0.99)
	r.Min = sorted[0]
	r.Max = sorted[n-1]

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	r.Avg = sum / time.Duration(n)
	if r.Avg > 0 {
		r.QPS = float64(time.Second) / float64(r.Avg)
	}
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	idx := int(p * float64(len(sorted)))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// generateCorpus writes numBooks plain-text files of roughly wordsPerBook
// words each under dir, returning the total bytes written.
func generateCorpus(dir string, numBooks, wordsPerBook int) (int64, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}

	var total int64
	for i := 0; i < numBooks; i++ {
		path := filepath.Join(dir, fmt.Sprintf("book_%05d.txt", i))
		text := generateText(wordsPerBook)
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			return 0, err
		}
		total += int64(len(text))
	}
	return total, nil
}

func generateText(numWords int) string {
	buf := make([]byte, 0, numWords*6)
	for i := 0; i < numWords; i++ {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, words[rand.Intn(len(words))]...)
	}
	return string(buf)
}

// PrintReport renders a Report as a small key/value table, the way the
// teacher's printResultsTable renders its corpus-size sweep.
func PrintReport(r *Report) {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("Metric", "Value")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

	tbl.AddRow("Books indexed", r.NumBooks)
	tbl.AddRow("Corpus size", formatBytes(r.TotalBytes))
	tbl.AddRow("Chunks written", r.ChunksWritten)
	tbl.AddRow("Index time", r.IndexTime.Round(time.Millisecond))
	tbl.AddRow("Query p50", r.P50.Round(time.Microsecond))
	tbl.AddRow("Query p95", r.P95.Round(time.Microsecond))
	tbl.AddRow("Query p99", r.P99.Round(time.Microsecond))
	tbl.AddRow("Query min/avg/max", fmt.Sprintf("%s / %s / %s",
		r.Min.Round(time.Microsecond), r.Avg.Round(time.Microsecond), r.Max.Round(time.Microsecond)))
	tbl.AddRow("Queries/sec", fmt.Sprintf("%.0f", r.QPS))

	fmt.Println()
	tbl.Print()
}

func formatBytes(b int64) string {
	const unit = 1000
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "kMGTPE"[exp])
}
