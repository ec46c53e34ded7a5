// Package version holds the engine and CLI version strings.
package version

const (
	// BiblioVersion is the CLI/module release version.
	BiblioVersion = "0.1.0"

	// BiblioStorageEngineVersion is the on-disk segment/manifest format
	// version. Bump it whenever the binary layout in internal/segment or
	// internal/manifest changes in an incompatible way.
	BiblioStorageEngineVersion = "1.0.0"
)
