package gorm

import (
	"time"

	"gorm.io/gorm"

	"github.com/salesupport/salesupport/pkg/model"
	"github.com/salesupport/salesupport/pkg/server/store"
)

// Ensure the stores implement their interfaces
var _ store.DashboardStore = (*DashboardStore)(nil)
var _ store.HealthStore = (*HealthStore)(nil)

// DashboardStore implements store.DashboardStore using GORM
type DashboardStore struct {
	db *gorm.DB
}

// NewDashboardStore creates a new DashboardStore
func NewDashboardStore(db *gorm.DB) *DashboardStore {
	return &DashboardStore{db: db}
}

func (s *DashboardStore) Stats(managerID uint, now time.Time) (*store.DashboardStats, error) {
	stats := &store.DashboardStats{}

	err := s.db.Model(&model.Client{}).
		Where("manager_id = ?", managerID).
		Count(&stats.TotalClients).Error
	if err != nil {
		return nil, err
	}

	interactions := s.db.Model(&model.Interaction{}).
		Joins("JOIN clients ON clients.id = interactions.client_id").
		Where("clients.manager_id = ?", managerID)
	if err := interactions.Count(&stats.TotalInteractions).Error; err != nil {
		return nil, err
	}

	lastWeek := now.AddDate(0, 0, -7)
	err = s.db.Model(&model.Interaction{}).
		Joins("JOIN clients ON clients.id = interactions.client_id").
		Where("clients.manager_id = ? AND interactions.created_at >= ?", managerID, lastWeek).
		Count(&stats.InteractionsLastWeek).Error
	if err != nil {
		return nil, err
	}

	pending := s.db.Model(&model.Reminder{}).
		Joins("JOIN clients ON clients.id = reminders.client_id").
		Where("clients.manager_id = ? AND reminders.status = ?", managerID, "pending")
	if err := pending.Count(&stats.PendingReminders).Error; err != nil {
		return nil, err
	}

	err = s.db.Model(&model.Invoice{}).
		Joins("JOIN clients ON clients.id = invoices.client_id").
		Where("clients.manager_id = ?", managerID).
		Select("COALESCE(SUM(invoices.total_sum), 0)").
		Scan(&stats.Revenue).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Preload("Client").
		Joins("JOIN clients ON clients.id = reminders.client_id").
		Where("clients.manager_id = ? AND reminders.status = ?", managerID, "pending").
		Order("reminders.remind_at asc").
		Limit(5).
		Find(&stats.UpcomingReminders).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Preload("Client").
		Joins("JOIN clients ON clients.id = interactions.client_id").
		Where("clients.manager_id = ?", managerID).
		Order("interactions.created_at desc").
		Limit(5).
		Find(&stats.RecentInteractions).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// HealthStore implements store.HealthStore using GORM
type HealthStore struct {
	db *gorm.DB
}

// NewHealthStore creates a new HealthStore
func NewHealthStore(db *gorm.DB) *HealthStore {
	return &HealthStore{db: db}
}

func (s *HealthStore) Ping() error {
	return s.db.Exec("SELECT 1").Error
}
