package boltkv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/renato0307/billclock/internal/domain"
	"github.com/renato0307/billclock/internal/ports"
)

// FileName is the bolt database created under BILLCLOCK_HOME
const FileName = "snapshots.bolt"

var snapshotsBucket = []byte("snapshots")

// Store is a bbolt-backed snapshot store. bbolt holds an exclusive file
// lock while open, so the file is opened for each operation and several
// processes can take turns on it.
type Store struct {
	mu      sync.Mutex
	path    string
	timeout time.Duration
}

var _ ports.SnapshotStore = (*Store)(nil)

// New creates the store file and its bucket
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	s := &Store{path: dbPath, timeout: time.Second}
	err := s.update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(snapshotsBucket)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshots bucket: %w", err)
	}
	return s, nil
}

func (s *Store) open(readOnly bool) (*bolt.DB, error) {
	db, err := bolt.Open(s.path, 0600, &bolt.Options{Timeout: s.timeout, ReadOnly: readOnly})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}
	return db, nil
}

func (s *Store) update(fn func(tx *bolt.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.open(false)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.Update(fn)
}

func (s *Store) view(fn func(tx *bolt.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.open(true)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.View(fn)
}

// Get implements ports.SnapshotStore
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.view(func(tx *bolt.Tx) error {
		b := tx.Bucket(snapshotsBucket)
		if b == nil {
			return domain.ErrSnapshotNotFound
		}
		data := b.Get([]byte(key))
		if data == nil {
			return domain.ErrSnapshotNotFound
		}
		// data is only valid inside the transaction
		value = append([]byte(nil), data...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set implements ports.SnapshotStore
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(snapshotsBucket)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), value)
	})
}

// Delete implements ports.SnapshotStore
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.update(func(tx *bolt.Tx) error {
		b := tx.Bucket(snapshotsBucket)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}

// Close is a no-op; the file is only open during operations
func (s *Store) Close() error {
	return nil
}
