package store

import "github.com/salesupport/salesupport/pkg/model"

// InteractionsStore abstracts interaction persistence. Ownership is
// checked through the parent client's manager.
type InteractionsStore interface {
	// CreateInteraction inserts an interaction after verifying the client
	// belongs to managerID. Returns ErrNotFound otherwise.
	CreateInteraction(interaction *model.Interaction, managerID uint) error

	// ListInteractions returns the interactions of one of the manager's
	// clients. Returns ErrNotFound when the client is missing or not owned.
	ListInteractions(clientID, managerID uint) ([]model.Interaction, error)
}

// RemindersStore abstracts reminder persistence.
type RemindersStore interface {
	// CreateReminder inserts a reminder after verifying the client belongs
	// to managerID. Returns ErrNotFound otherwise.
	CreateReminder(reminder *model.Reminder, managerID uint) error

	// ListReminders returns every reminder attached to the manager's clients.
	ListReminders(managerID uint) ([]model.Reminder, error)
}
