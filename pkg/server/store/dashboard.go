package store

import (
	"time"

	"github.com/salesupport/salesupport/pkg/model"
)

// DashboardStats aggregates a manager's book of business.
type DashboardStats struct {
	TotalClients         int64
	TotalInteractions    int64
	PendingReminders     int64
	Revenue              float64
	InteractionsLastWeek int64
	UpcomingReminders    []model.Reminder
	RecentInteractions   []model.Interaction
}

// DashboardStore aggregates per-manager statistics.
type DashboardStore interface {
	// Stats computes the dashboard numbers for a manager as of now.
	Stats(managerID uint, now time.Time) (*DashboardStats, error)
}

// HealthStore reports storage liveness.
type HealthStore interface {
	Ping() error
}
