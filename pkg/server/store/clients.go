package store

import "github.com/salesupport/salesupport/pkg/model"

// ClientUpdate carries the optional fields of a client PATCH.
type ClientUpdate struct {
	Status   *string
	Priority *string
	TotalSum *float64
}

// ClientsStore abstracts client persistence. Every operation is scoped to
// a manager id; a client owned by someone else behaves exactly like a
// missing one.
type ClientsStore interface {
	CreateClient(client *model.Client) error

	// GetClient fetches a client owned by managerID. Returns ErrNotFound
	// when missing or owned by another manager.
	GetClient(id, managerID uint) (*model.Client, error)

	// ListClients returns the manager's clients, newest first. A non-empty
	// phoneSuffix filters to clients whose phone ends with those digits.
	ListClients(managerID uint, phoneSuffix string) ([]model.Client, error)

	// UpdateClient applies the non-nil fields of upd to a client owned by
	// managerID. Returns ErrNotFound when missing or not owned.
	UpdateClient(id, managerID uint, upd ClientUpdate) (*model.Client, error)
}
