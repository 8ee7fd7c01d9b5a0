package schema

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ibet-fin/ibet-indexer/internal/domain"
)

// NotificationArgs holds the event-specific payload of a notification as a
// JSONB column
type NotificationArgs map[string]interface{}

// Value implements the driver.Valuer interface for NotificationArgs
func (a NotificationArgs) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal(NotificationArgs{})
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface for NotificationArgs
func (a *NotificationArgs) Scan(value interface{}) error {
	if value == nil {
		*a = NotificationArgs{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan NotificationArgs: %v", value)
	}
	return json.Unmarshal(bytes, a)
}

// Notification represents the notification table - per-address event feed
// entries produced by the event bridge
type Notification struct {
	// NotificationID is 26 hex chars prefixed with 0x, ordered by
	// (block number, tx index, log index, option)
	NotificationID string `gorm:"column:notification_id;primaryKey;type:varchar(28)"`
	// NotificationType names the on-chain event that produced the entry
	NotificationType string `gorm:"column:notification_type;index"`
	// Priority orders entries of equal recency in the feed
	Priority domain.NotificationPriority `gorm:"column:priority;index"`
	// Address is the account the notification is addressed to
	Address   string `gorm:"column:address;index;type:varchar(42)"`
	IsRead    bool   `gorm:"column:is_read;not null;default:false"`
	IsFlagged bool   `gorm:"column:is_flagged;not null;default:false"`
	IsDeleted bool   `gorm:"column:is_deleted;not null;default:false"`
	// DeletedAt is set when IsDeleted transitions to true
	DeletedAt *time.Time `gorm:"column:deleted_at"`
	// Args carries the decoded event arguments
	Args NotificationArgs `gorm:"column:args;type:jsonb"`
	// Metainfo carries token metadata resolved at notification time
	Metainfo NotificationArgs `gorm:"column:metainfo;type:jsonb"`
	// BlockTimestamp is the timestamp of the block containing the event
	BlockTimestamp time.Time `gorm:"column:block_timestamp;index"`
	Created        time.Time `gorm:"column:created;not null;default:now()"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notification"
}
