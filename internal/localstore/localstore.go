package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store is the storefront's local persistent storage: a directory holding
// one JSON document per fixed key (cartItems, bookLikes, themeMode). It
// stands in for the browser origin storage the web client used, so there
// is no versioning or migration scheme.
type Store struct {
	dir string
}

// Open creates the backing directory if needed and returns a store.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	return &Store{dir: dir}, nil
}

// DefaultDir is the per-user store location.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "bookstore"), nil
}

// Get reads the document under key into v. It reports false with no error
// when the key has never been written.
func (s *Store) Get(key string, v any) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Set overwrites the document under key with the JSON encoding of v.
func (s *Store) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return os.WriteFile(s.path(key), data, 0o644)
}

// Has reports whether key has ever been written.
func (s *Store) Has(key string) bool {
	_, err := os.Stat(s.path(key))
	return err == nil
}

// Delete removes the document under key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
