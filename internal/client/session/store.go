package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Keys under which the session halves are persisted. They are separate on
// purpose: both must be present for a restored session to count.
const (
	KeyUser  = "user"
	KeyToken = "token"
)

// Store is the durable client-side storage for session state. Get returns
// nil for a missing key; values are opaque bytes.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Clear() error
}

// FileStore keeps each key as a file inside a state directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating state dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key)
}

func (s *FileStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	return data, nil
}

func (s *FileStore) Set(key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	for _, key := range []string{KeyUser, KeyToken} {
		if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("removing %s: %w", key, err)
		}
	}
	return nil
}
