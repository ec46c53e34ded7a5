package constants

const (
	// ScannerInitialBufSize is the initial buffer size for bufio.Scanner (64KB)
	ScannerInitialBufSize = 64 * 1024
	// ScannerMaxBufSize is the maximum buffer size for bufio.Scanner (5MB).
	// Files with lines longer than this (e.g., minified JSON) will still fail.
	ScannerMaxBufSize = 1024 * 1024 * 5

	// TombstoneSizeThreshold is a size in bytes (100MB). No command reads it;
	// biblio keeps no tombstones, and 'biblio clean' only removes orphaned
	// segment directories.
	TombstoneSizeThreshold = 100 * 1024 * 1024
)
