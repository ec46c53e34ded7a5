package core

import "errors"

// Error kinds surfaced to callers. Each is a distinct sentinel so callers
// can branch with errors.Is; wrapped occurrences retain the sentinel.
var (
	// ErrIO wraps any filesystem failure during open/read/write/rename.
	ErrIO = errors.New("biblio: io error")

	// ErrInvalidPostings means a segment's postings bytes do not decode.
	// The segment is treated as corrupt: skipped for queries, logged.
	ErrInvalidPostings = errors.New("biblio: invalid postings")

	// ErrInvalidManifest means the manifest is missing, truncated, or an
	// incompatible version. Open fails outright; no partial engine.
	ErrInvalidManifest = errors.New("biblio: invalid manifest")

	// ErrBadInput marks a caller error distinct from an empty result:
	// e.g. a non-positive top_k.
	ErrBadInput = errors.New("biblio: bad input")

	// ErrWalCorrupt means an internally-malformed (non-trailing) WAL
	// record was found during replay. The engine refuses to open.
	ErrWalCorrupt = errors.New("biblio: wal corrupt")
)
