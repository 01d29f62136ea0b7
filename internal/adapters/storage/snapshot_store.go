package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/billclock/internal/domain"
	"github.com/renato0307/billclock/internal/ports"
)

// SnapshotStore keeps timer snapshots in the kv_entries table
type SnapshotStore struct {
	db     *gorm.DB
	closer bool
}

var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// NewSnapshotStore wraps an open database. Close leaves the database open.
func NewSnapshotStore(db *gorm.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// OpenSnapshotStore opens its own database at dbPath. Close closes it.
func OpenSnapshotStore(dbPath string) (*SnapshotStore, error) {
	db, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	return &SnapshotStore{db: db, closer: true}, nil
}

// Get returns the value stored under key
func (s *SnapshotStore) Get(ctx context.Context, key string) ([]byte, error) {
	var m KVEntryModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Where("name = ?", key).First(&m).Error
	}, 3)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %q: %w", key, err)
	}
	return m.Value, nil
}

// Set upserts the value under key
func (s *SnapshotStore) Set(ctx context.Context, key string, value []byte) error {
	m := KVEntryModel{Name: key, Value: value}
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&m).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to write snapshot %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Missing keys are ignored.
func (s *SnapshotStore) Delete(ctx context.Context, key string) error {
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Where("name = ?", key).Delete(&KVEntryModel{}).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot %q: %w", key, err)
	}
	return nil
}

// Close closes the database when the store opened it
func (s *SnapshotStore) Close() error {
	if !s.closer {
		return nil
	}
	return Close(s.db)
}
