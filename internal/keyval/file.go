package keyval

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/campusevents/internal/common"
)

// FileStore keeps the slots in a single JSON file on disk, standing in for
// browser local storage. Every Set/Delete writes the file through; a missing
// file reads as an empty store.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("reading storage file: %w", err)
	}

	m := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing storage file: %w", err)
	}
	return m, nil
}

func (s *FileStore) save(m map[string]json.RawMessage) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing storage file: %w", err)
	}
	return nil
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	m, err := s.load()
	if err != nil {
		return nil, err
	}
	v, ok := m[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return v, nil
}

// Set stores the value under key. A corrupted storage file is discarded and
// replaced rather than blocking the write.
func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	m, err := s.load()
	if err != nil {
		m = map[string]json.RawMessage{}
	}
	m[key] = json.RawMessage(value)
	return s.save(m)
}

// Delete removes key from the file. A corrupted storage file is reset to an
// empty store, which also satisfies the caller's intent of dropping the slot.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	m, err := s.load()
	if err != nil {
		m = map[string]json.RawMessage{}
	}
	delete(m, key)
	return s.save(m)
}
