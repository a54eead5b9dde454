package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit log actions.
const (
	ActionMerchantFeesUpdated        = "MERCHANT_FEES_UPDATED"
	ActionMerchantFeesResetToDefault = "MERCHANT_FEES_RESET_TO_DEFAULTS"
	ActionPlatformFeeDefaultsUpdated = "PLATFORM_FEE_DEFAULTS_UPDATED"
)

// ChangedBy identifies the actor behind a mutation, stored as jsonb so the
// audit row survives actor deletion.
type ChangedBy struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Value implements the driver.Valuer interface
func (c ChangedBy) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements the sql.Scanner interface
func (c *ChangedBy) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("changed_by column is not a byte slice")
	}
	return json.Unmarshal(bytes, c)
}

// FeeChangeSet records the full before/after fee shapes of one mutation.
// Full snapshots, not field diffs: history is reconstructed by scanning
// backward through audit rows.
type FeeChangeSet struct {
	Reason string       `json:"reason,omitempty"`
	Tier   MerchantTier `json:"tier,omitempty"`
	Before FeeShape     `json:"before"`
	After  FeeShape     `json:"after"`
}

// Value implements the driver.Valuer interface
func (c FeeChangeSet) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements the sql.Scanner interface
func (c *FeeChangeSet) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("changes column is not a byte slice")
	}
	return json.Unmarshal(bytes, c)
}

// MerchantAuditLog is an append-only record of one merchant-scoped fee
// mutation. Rows are never updated or deleted, and merchant_id carries no
// foreign key so the trail survives merchant deletion.
type MerchantAuditLog struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	MerchantID string `gorm:"type:uuid;index;not null"`
	Action     string `gorm:"not null"`
	ChangedBy  ChangedBy    `gorm:"type:jsonb"`
	Changes    FeeChangeSet `gorm:"type:jsonb"`
	CreatedAt  time.Time
}

func (l *MerchantAuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// PlatformFeeAuditLog is the append-only trail for platform-default mutations.
type PlatformFeeAuditLog struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Action    string `gorm:"not null"`
	ChangedBy ChangedBy    `gorm:"type:jsonb"`
	Changes   FeeChangeSet `gorm:"type:jsonb"`
	Reason    *string      `gorm:"type:text"`
	CreatedAt time.Time
}

func (l *PlatformFeeAuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
