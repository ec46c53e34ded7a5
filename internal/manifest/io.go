package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid"

	"biblio/internal/constants"
	"biblio/internal/core"
)

// Path returns the path of the published manifest file under indexDir.
func Path(indexDir string) string {
	return filepath.Join(indexDir, constants.ManifestFileName)
}

// Load reads and parses the published manifest. A missing manifest is
// core.ErrInvalidManifest — engine Open must not return a partial engine.
func Load(indexDir string) (*Manifest, error) {
	data, err := os.ReadFile(Path(indexDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no manifest at %s", core.ErrInvalidManifest, indexDir)
		}
		return nil, fmt.Errorf("%w: read manifest: %v", core.ErrIO, err)
	}
	return Unmarshal(data)
}

// LoadOrNew reads the manifest if present, or returns a fresh empty one —
// used by the batch indexer to bootstrap a brand-new index directory.
func LoadOrNew(indexDir string, k1, b float64) (*Manifest, error) {
	m, err := Load(indexDir)
	if err == nil {
		return m, nil
	}
	if _, statErr := os.Stat(Path(indexDir)); os.IsNotExist(statErr) {
		return New(k1, b), nil
	}
	return nil, err
}

// SaveAtomic durably publishes m: write to a unique manifest.tmp.<uuid>
// staging file, fsync it, then atomically rename it over the published
// manifest. Two writers racing past the directory lock (or a lock
// recovered from a crashed holder) can't clobber each other's staging
// write because each gets its own uuid suffix.
func SaveAtomic(indexDir string, m *Manifest) error {
	id, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("%w: generate staging suffix: %v", core.ErrIO, err)
	}
	tmpPath := filepath.Join(indexDir, constants.ManifestTmpPrefix+id.String())
	finalPath := Path(indexDir)

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w: create staging manifest: %v", core.ErrIO, err)
	}
	if _, err := f.Write(m.Marshal()); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: write staging manifest: %v", core.ErrIO, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: sync staging manifest: %v", core.ErrIO, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: close staging manifest: %v", core.ErrIO, err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: rename manifest into place: %v", core.ErrIO, err)
	}

	dirFh, err := os.Open(indexDir)
	if err != nil {
		return fmt.Errorf("%w: reopen index dir for sync: %v", core.ErrIO, err)
	}
	defer dirFh.Close()
	if err := dirFh.Sync(); err != nil {
		return fmt.Errorf("%w: sync index dir: %v", core.ErrIO, err)
	}
	return nil
}
