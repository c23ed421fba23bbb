package model

import "time"

// APIKey is an admin-managed credential for an external service.
// KeyValue always holds ciphertext; plaintext exists only in request and
// response payloads.
type APIKey struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Service   string    `gorm:"not null" json:"service"`
	KeyValue  string    `gorm:"not null" json:"key_value"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (APIKey) TableName() string {
	return "api_keys"
}
