package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/salesupport/salesupport/pkg/model"
	"github.com/salesupport/salesupport/pkg/server/store"
)

// Ensure the stores implement their interfaces
var _ store.InteractionsStore = (*InteractionsStore)(nil)
var _ store.RemindersStore = (*RemindersStore)(nil)

// InteractionsStore implements store.InteractionsStore using GORM
type InteractionsStore struct {
	db *gorm.DB
}

// NewInteractionsStore creates a new InteractionsStore
func NewInteractionsStore(db *gorm.DB) *InteractionsStore {
	return &InteractionsStore{db: db}
}

func (s *InteractionsStore) CreateInteraction(interaction *model.Interaction, managerID uint) error {
	if err := s.ownsClient(interaction.ClientID, managerID); err != nil {
		return err
	}
	return s.db.Create(interaction).Error
}

func (s *InteractionsStore) ListInteractions(clientID, managerID uint) ([]model.Interaction, error) {
	if err := s.ownsClient(clientID, managerID); err != nil {
		return nil, err
	}

	var interactions []model.Interaction
	err := s.db.Where("client_id = ?", clientID).Order("created_at desc").Find(&interactions).Error
	return interactions, err
}

func (s *InteractionsStore) ownsClient(clientID, managerID uint) error {
	return ownsClient(s.db, clientID, managerID)
}

// RemindersStore implements store.RemindersStore using GORM
type RemindersStore struct {
	db *gorm.DB
}

// NewRemindersStore creates a new RemindersStore
func NewRemindersStore(db *gorm.DB) *RemindersStore {
	return &RemindersStore{db: db}
}

func (s *RemindersStore) CreateReminder(reminder *model.Reminder, managerID uint) error {
	if err := ownsClient(s.db, reminder.ClientID, managerID); err != nil {
		return err
	}
	return s.db.Create(reminder).Error
}

func (s *RemindersStore) ListReminders(managerID uint) ([]model.Reminder, error) {
	var reminders []model.Reminder
	err := s.db.
		Joins("JOIN clients ON clients.id = reminders.client_id").
		Where("clients.manager_id = ?", managerID).
		Find(&reminders).Error
	return reminders, err
}

// ownsClient verifies the client exists and belongs to the manager. A
// missing client and a foreign one both come back as ErrNotFound.
func ownsClient(db *gorm.DB, clientID, managerID uint) error {
	var client model.Client
	err := db.Select("id").First(&client, "id = ? AND manager_id = ?", clientID, managerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return err
}
