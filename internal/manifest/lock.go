package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"biblio/internal/core"
)

const lockFileName = "biblio.lock"

// LockMetadata is the content of the manifest lock file: enough to detect
// a stale lock left behind by a crashed indexer.
type LockMetadata struct {
	ProcessID  int       `json:"process_id"`
	Hostname   string    `json:"hostname"`
	AcquiredAt time.Time `json:"acquired_at"`
}

// Lock represents a held manifest lock; Release must be called exactly
// once to give it up.
type Lock struct {
	path string
}

func lockPath(indexDir string) string {
	return filepath.Join(indexDir, lockFileName)
}

// AcquireLock takes the manifest lock for indexDir, guarding the brief
// window where a batch indexer reads the manifest, appends a segment, and
// writes it back (spec.md §4.6: "only one writer holds the manifest lock
// at a time"). A stale lock — whose owning process no longer exists — is
// recovered automatically.
func AcquireLock(indexDir string) (*Lock, error) {
	path := lockPath(indexDir)

	meta := LockMetadata{
		ProcessID:  os.Getpid(),
		Hostname:   hostnameOrUnknown(),
		AcquiredAt: time.Now(),
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal lock metadata: %v", core.ErrIO, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if !os.IsExist(err) {
			return nil, fmt.Errorf("%w: create lock file: %v", core.ErrIO, err)
		}
		if staleErr := recoverIfStale(path); staleErr != nil {
			return nil, staleErr
		}
		f, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err != nil {
			return nil, fmt.Errorf("%w: index is locked by another writer", core.ErrIO)
		}
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("%w: write lock metadata: %v", core.ErrIO, err)
	}
	return &Lock{path: path}, nil
}

// Release gives up the lock. Safe to call on a lock whose file has already
// been removed (e.g. by a concurrent stale-lock recovery).
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: release lock: %v", core.ErrIO, err)
	}
	return nil
}

// recoverIfStale removes the lock file at path if the process that
// created it is no longer alive. Returns an error if the lock is held by a
// live process, or if the existing lock file can't be read.
func recoverIfStale(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // lock released between our EXCL attempt and now
		}
		return fmt.Errorf("%w: read existing lock: %v", core.ErrIO, err)
	}

	var meta LockMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		// Unreadable lock metadata: treat conservatively as held.
		return fmt.Errorf("%w: index is locked (unreadable lock metadata)", core.ErrIO)
	}

	if meta.Hostname != hostnameOrUnknown() || isProcessAlive(meta.ProcessID) {
		return fmt.Errorf("%w: index is locked by pid %d on %s", core.ErrIO, meta.ProcessID, meta.Hostname)
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: remove stale lock: %v", core.ErrIO, err)
	}
	return nil
}

func hostnameOrUnknown() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
