package bus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/renato0307/billclock/internal/adapters/storage"
	"github.com/renato0307/billclock/internal/domain"
	"github.com/renato0307/billclock/internal/logging"
	"github.com/renato0307/billclock/internal/ports"
)

// Defaults for the sqlite bus
const (
	DefaultPollInterval = 250 * time.Millisecond
	DefaultRetention    = time.Minute
	pollBatchSize       = 100
	pruneEveryPolls     = 40
)

// SQLiteBus carries messages between processes sharing one database.
// Each endpoint polls the bus_messages table for rows newer than the last
// one it saw; rows that existed before the endpoint was created are never
// delivered.
type SQLiteBus struct {
	channel   string
	db        *gorm.DB
	interval  time.Duration
	origin    string
	retention time.Duration

	mu       sync.Mutex
	closed   bool
	handlers map[uint64]ports.MessageHandler
	lastID   uint
	nextID   uint64
	polls    int
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

var _ ports.MessageBus = (*SQLiteBus)(nil)

// NewSQLiteBus creates an endpoint on channel. pollInterval <= 0 uses the default.
func NewSQLiteBus(db *gorm.DB, channel string, pollInterval time.Duration) (*SQLiteBus, error) {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	b := &SQLiteBus{
		channel:   channel,
		db:        db,
		handlers:  make(map[uint64]ports.MessageHandler),
		interval:  pollInterval,
		origin:    uuid.New().String(),
		retention: DefaultRetention,
	}

	var maxID int64
	err := storage.WithRetry(func() error {
		return db.Model(&storage.BusMessageModel{}).Select("COALESCE(MAX(id), 0)").Row().Scan(&maxID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read bus position: %w", err)
	}
	b.lastID = uint(maxID)

	return b, nil
}

// Origin returns the identifier of this endpoint
func (b *SQLiteBus) Origin() string {
	return b.origin
}

// Publish implements ports.MessageBus
func (b *SQLiteBus) Publish(ctx context.Context, msg domain.Message) error {
	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		return ErrBusClosed
	}

	data, err := EncodeEnvelope(domain.Envelope{
		Channel: b.channel,
		Message: msg,
		Origin:  b.origin,
		SentAt:  time.Now(),
	})
	if err != nil {
		return err
	}

	row := storage.BusMessageModel{
		Channel:  b.channel,
		Envelope: data,
		Origin:   b.origin,
	}
	err = storage.WithRetry(func() error {
		return b.db.WithContext(ctx).Create(&row).Error
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", msg.Type, err)
	}

	logging.Logger.Debug("Published message", "type", msg.Type, "id", row.ID)
	return nil
}

// Subscribe implements ports.MessageBus. The poll loop starts with the
// first subscription.
func (b *SQLiteBus) Subscribe(handler ports.MessageHandler) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrBusClosed
	}

	b.nextID++
	id := b.nextID
	b.handlers[id] = handler

	if b.stopCh == nil {
		b.stopCh = make(chan struct{})
		b.wg.Add(1)
		go b.loop(b.stopCh)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.handlers, id)
			b.mu.Unlock()
		})
	}, nil
}

// Close stops the poll loop. The database stays open.
func (b *SQLiteBus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	stopCh := b.stopCh
	b.handlers = make(map[uint64]ports.MessageHandler)
	b.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
	}
	b.wg.Wait()
	return nil
}

func (b *SQLiteBus) loop(stopCh chan struct{}) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if err := b.poll(context.Background()); err != nil {
				logging.Logger.Warn("Bus poll failed", "channel", b.channel, "error", err)
			}
		}
	}
}

// poll delivers every new row on the channel and occasionally prunes old rows
func (b *SQLiteBus) poll(ctx context.Context) error {
	b.mu.Lock()
	lastID := b.lastID
	b.mu.Unlock()

	var rows []storage.BusMessageModel
	err := storage.WithRetry(func() error {
		return b.db.WithContext(ctx).
			Where("channel = ? AND id > ?", b.channel, lastID).
			Order("id ASC").
			Limit(pollBatchSize).
			Find(&rows).Error
	})
	if err != nil {
		return err
	}

	for _, row := range rows {
		b.mu.Lock()
		if row.ID > b.lastID {
			b.lastID = row.ID
		}
		b.mu.Unlock()

		if row.Origin == b.origin {
			continue
		}
		env, err := DecodeEnvelope(row.Envelope)
		if err != nil {
			logging.Logger.Debug("Dropping malformed message", "id", row.ID, "error", err)
			continue
		}
		if env.Origin == b.origin || env.Channel != b.channel {
			continue
		}
		b.dispatch(env.Message)
	}

	b.mu.Lock()
	b.polls++
	prune := b.polls%pruneEveryPolls == 0
	b.mu.Unlock()
	if prune {
		if _, err := b.prune(ctx, time.Now().Add(-b.retention)); err != nil {
			logging.Logger.Debug("Bus prune failed", "error", err)
		}
	}
	return nil
}

func (b *SQLiteBus) dispatch(msg domain.Message) {
	b.mu.Lock()
	handlers := make([]ports.MessageHandler, 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(msg)
	}
}

// prune deletes rows created before cutoff on every channel
func (b *SQLiteBus) prune(ctx context.Context, cutoff time.Time) (int64, error) {
	var affected int64
	err := storage.WithRetry(func() error {
		res := b.db.WithContext(ctx).Where("created_at < ?", cutoff.UTC()).Delete(&storage.BusMessageModel{})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	return affected, nil
}
