package model

import "time"

// AuditEntry is one row of the persistent audit trail.
type AuditEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RequestID string    `gorm:"not null" json:"request_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Action    string    `gorm:"not null" json:"action"`
	Entity    string    `gorm:"not null" json:"entity"`
	EntityID  uint      `gorm:"not null" json:"entity_id"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

func (AuditEntry) TableName() string {
	return "audit_log"
}
