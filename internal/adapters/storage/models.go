package storage

import "time"

// KVEntryModel is the GORM model for the key-value snapshot table
type KVEntryModel struct {
	Name      string `gorm:"primaryKey"`
	UpdatedAt time.Time
	Value     []byte `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KVEntryModel) TableName() string { return "kv_entries" }

// TimeEntryModel is the GORM model for billable time entries
type TimeEntryModel struct {
	BillableMinutes int `gorm:"not null;default:0"`
	CreatedAt       time.Time
	FinishedAt      *time.Time `gorm:"default:null;index:idx_time_entries_finished_at"`
	ID              string     `gorm:"primaryKey"`
	MatterID        string     `gorm:"not null;index:idx_time_entries_matter_id"`
	Minutes         int        `gorm:"not null;default:0"`
	Notes           string     `gorm:"not null;default:''"`
	StartedAt       time.Time  `gorm:"not null;index:idx_time_entries_started_at"`
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (TimeEntryModel) TableName() string { return "time_entries" }

// AnalyticsEventModel is the GORM model for analytics events
type AnalyticsEventModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	Name       string    `gorm:"not null;index:idx_analytics_name"`
	OccurredAt time.Time `gorm:"not null;index:idx_analytics_occurred_at"`
	Properties string    `gorm:"not null;default:'{}'"`
	Route      string    `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (AnalyticsEventModel) TableName() string { return "analytics_events" }

// MatterActivityModel is the GORM model for matter activity
type MatterActivityModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	MatterID   string    `gorm:"not null;index:idx_activity_matter_id"`
	OccurredAt time.Time `gorm:"not null;index:idx_activity_occurred_at"`
	Route      string    `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (MatterActivityModel) TableName() string { return "matter_activity" }

// BusMessageModel is one envelope on the cross-process message bus
type BusMessageModel struct {
	Channel   string    `gorm:"not null;index:idx_bus_channel"`
	CreatedAt time.Time `gorm:"index:idx_bus_created_at"`
	Envelope  []byte    `gorm:"not null"`
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Origin    string    `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (BusMessageModel) TableName() string { return "bus_messages" }
