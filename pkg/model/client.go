package model

import "time"

// Client is a sales prospect owned by exactly one manager.
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `gorm:"not null" json:"phone"`
	Email     string    `gorm:"not null" json:"email"`
	ManagerID uint      `gorm:"not null;index" json:"manager_id"`
	Status    string    `gorm:"not null;default:new" json:"status"`
	Priority  string    `gorm:"not null;default:medium" json:"priority"`
	TotalSum  float64   `gorm:"not null;default:0" json:"total_sum"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Client) TableName() string {
	return "clients"
}

// Interaction records one touchpoint with a client.
type Interaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClientID  uint      `gorm:"not null;index" json:"client_id"`
	Type      string    `gorm:"not null" json:"type"`
	Result    string    `gorm:"not null" json:"result"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Client *Client `gorm:"foreignKey:ClientID" json:"-"`
}

func (Interaction) TableName() string {
	return "interactions"
}

// Reminder schedules a follow-up with a client.
type Reminder struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ClientID      uint      `gorm:"not null;index" json:"client_id"`
	RemindAt      time.Time `gorm:"not null" json:"remind_at"`
	Reason        string    `gorm:"not null" json:"reason"`
	Status        string    `gorm:"not null;default:pending" json:"status"`
	AutoGenerated bool      `gorm:"default:false" json:"auto_generated"`

	Client *Client `gorm:"foreignKey:ClientID" json:"-"`
}

func (Reminder) TableName() string {
	return "reminders"
}

// Invoice is a billing document attached to a client.
type Invoice struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	ClientID   uint    `gorm:"not null;index" json:"client_id"`
	FilePath   string  `gorm:"not null" json:"file_path"`
	TotalSum   float64 `gorm:"not null;default:0" json:"total_sum"`
	ParsedData []byte  `gorm:"type:jsonb" json:"parsed_data,omitempty"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// Funnel is a named sequence of sales stages.
type Funnel struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"not null" json:"name"`
	Stages string `gorm:"not null" json:"stages"` // comma-separated stage names
}

func (Funnel) TableName() string {
	return "funnels"
}

// SalesScript is a reusable conversation template for a funnel stage.
type SalesScript struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Stage      string  `gorm:"not null" json:"stage"`
	ScriptText string  `gorm:"not null" json:"script_text"`
	Efficiency float64 `gorm:"not null;default:0" json:"efficiency"`
	UsageCount int     `gorm:"not null;default:0" json:"usage_count"`
}

func (SalesScript) TableName() string {
	return "sales_scripts"
}

// ClientProgress tracks where a client sits within a funnel.
type ClientProgress struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClientID  uint      `gorm:"not null;index" json:"client_id"`
	FunnelID  uint      `gorm:"not null" json:"funnel_id"`
	Stage     string    `gorm:"not null" json:"stage"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ClientProgress) TableName() string {
	return "client_progress"
}
