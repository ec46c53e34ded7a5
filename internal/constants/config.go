package constants

const (
	DirPath    = "~/.local/share/biblio"
	ConfigPath = "~/.config/biblio/biblio.toml"
	AppName    = "biblio"
)

// Engine defaults (spec.md §6 "Configuration").
const (
	DefaultK1            = 1.5
	DefaultB             = 0.75
	DefaultChunkSize     = 1000
	DefaultChunkOverlap  = 100
	DefaultBatchSize     = 1000
	DefaultSearchLimit   = 20
	ManifestFileName     = "manifest"
	ManifestTmpPrefix    = "manifest.tmp."
	HashesSidecarName    = "manifest.hashes"
	WalFileName          = "wal"
	CommitSentinelName   = "COMMIT"
	TermsFileName        = "terms"
	PostingsFileName     = "postings"
	ChunksFileName       = "chunks"
	StatsFileName        = "stats"
	SegmentDirPrefix     = "segment_"
	ManifestFormatVersion = uint16(1)
)
