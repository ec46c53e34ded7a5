package indexer

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"biblio/internal/constants"
	"biblio/internal/core"
)

// contentHash returns the hex sha256 of text, used for the incremental
// duplicate-suppression sidecar.
func contentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// loadHashes reads the book_id → content hash sidecar that lives alongside
// the manifest. A missing sidecar is not an error — it means no documents
// have been indexed incrementally yet.
func loadHashes(indexDir string) (map[string]string, error) {
	path := filepath.Join(indexDir, constants.HashesSidecarName)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("%w: open hashes sidecar: %v", core.ErrIO, err)
	}
	defer f.Close()

	hashes := map[string]string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		bookID, hash, found := strings.Cut(line, "\t")
		if !found {
			continue
		}
		hashes[bookID] = hash
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: scan hashes sidecar: %v", core.ErrIO, err)
	}
	return hashes, nil
}

// saveHashes overwrites the sidecar with the given book_id → hash map.
func saveHashes(indexDir string, hashes map[string]string) error {
	path := filepath.Join(indexDir, constants.HashesSidecarName)
	var sb strings.Builder
	for bookID, hash := range hashes {
		fmt.Fprintf(&sb, "%s\t%s\n", bookID, hash)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("%w: write hashes sidecar: %v", core.ErrIO, err)
	}
	return nil
}
