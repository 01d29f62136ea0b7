package filekv

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/renato0307/billclock/internal/domain"
	"github.com/renato0307/billclock/internal/ports"
)

// FileName is the JSON file created under BILLCLOCK_HOME
const FileName = "snapshots.json"

// document is the on-disk layout of the store
type document struct {
	Entries   map[string]string `json:"entries"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Store keeps snapshots in a single JSON file guarded by an advisory lock
type Store struct {
	mu   sync.Mutex
	path string
}

var _ ports.SnapshotStore = (*Store)(nil)

// New creates a store backed by path. The file is created on first write.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Store{path: path}, nil
}

// Get implements ports.SnapshotStore
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	var found bool
	err := s.withFile(false, func(doc *document) bool {
		value, found = doc.Entries[key]
		return false
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrSnapshotNotFound
	}
	return []byte(value), nil
}

// Set implements ports.SnapshotStore
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.withFile(true, func(doc *document) bool {
		doc.Entries[key] = string(value)
		return true
	})
}

// Delete implements ports.SnapshotStore
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.withFile(true, func(doc *document) bool {
		if _, ok := doc.Entries[key]; !ok {
			return false
		}
		delete(doc.Entries, key)
		return true
	})
}

// Close implements ports.SnapshotStore
func (s *Store) Close() error {
	return nil
}

// withFile locks the file, loads it and hands the document to fn. The
// document is written back when fn reports a change.
func (s *Store) withFile(write bool, fn func(doc *document) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flags := os.O_RDONLY
	if write {
		flags = os.O_RDWR | os.O_CREATE
	}
	file, err := os.OpenFile(s.path, flags, 0644)
	if err != nil {
		if !write && os.IsNotExist(err) {
			fn(&document{Entries: map[string]string{}})
			return nil
		}
		return fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer file.Close()

	if err := lockFile(file, write); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	doc, err := readDocument(file)
	if err != nil {
		return err
	}
	if !fn(doc) || !write {
		return nil
	}

	doc.UpdatedAt = time.Now().UTC()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshots: %w", err)
	}

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek to beginning: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write snapshots: %w", err)
	}
	return nil
}

// readDocument parses the file. An empty or corrupt file reads as empty so
// a damaged store never blocks new sessions.
func readDocument(file *os.File) (*document, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	doc := &document{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, doc); err != nil {
			doc = &document{}
		}
	}
	if doc.Entries == nil {
		doc.Entries = map[string]string{}
	}
	return doc, nil
}
