package core

// Config is the on-disk, TOML-encoded engine configuration. Construction
// parameters the spec calls out (k1, b, chunk_size, chunk_overlap,
// batch_size, worker_count, stopwords path) live under [index]/[ranking].
type Config struct {
	Version uint8         `toml:"version"`
	Index   IndexConfig   `toml:"index"`
	Ranking RankingConfig `toml:"ranking"`
	Search  SearchConfig  `toml:"search"`
	Logging LoggingConfig `toml:"logging"`
}

// IndexConfig controls chunking and the batch indexer's worker pool.
type IndexConfig struct {
	ChunkSize     int    `toml:"chunk_size"`
	ChunkOverlap  int    `toml:"chunk_overlap"`
	BatchSize     int    `toml:"batch_size"`
	WorkerCount   int    `toml:"worker_count"`
	StopwordsPath string `toml:"stopwords_path"`
}

// RankingConfig holds the BM25 tunables.
type RankingConfig struct {
	K1 float64 `toml:"k1"`
	B  float64 `toml:"b"`
}

// SearchConfig holds query-side defaults.
type SearchConfig struct {
	DefaultLimit int `toml:"default_limit"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}
