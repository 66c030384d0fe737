// Package blobstore provides a file-backed implementation of domain.BlobStore.
// Each key maps to one JSON file under the data directory. Writes go
// through a temp file plus rename so readers never observe a torn blob,
// and an flock sidecar keeps concurrent CLI invocations from interleaving.
package blobstore

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/mhnuk2007/todoAppTutorial/internal/domain"
)

// Store implements domain.BlobStore using files in a single directory.
type Store struct {
	dir      string
	lockPath string
}

// New creates a Store rooted at dir. The directory does not need to
// exist; it is created on first write.
func New(dir string) *Store {
	return &Store{
		dir:      dir,
		lockPath: filepath.Join(dir, ".lock"),
	}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load returns the blob stored under key. A missing file means nothing
// has been stored yet and is not an error.
func (s *Store) Load(key string) ([]byte, bool, error) {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return nil, false, err
	}
	defer s.releaseLock(lock)

	content, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read blob %q: %w", key, err)
	}
	return content, true, nil
}

// Save writes the blob under key atomically.
func (s *Store) Save(key string, blob []byte) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	path := s.path(key)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, blob, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// Ensure Store implements BlobStore.
var _ domain.BlobStore = (*Store)(nil)
