package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/salesupport/salesupport/pkg/model"
	"github.com/salesupport/salesupport/pkg/server/store"
)

// Ensure ClientsStore implements store.ClientsStore
var _ store.ClientsStore = (*ClientsStore)(nil)

// ClientsStore implements store.ClientsStore using GORM
type ClientsStore struct {
	db *gorm.DB
}

// NewClientsStore creates a new ClientsStore
func NewClientsStore(db *gorm.DB) *ClientsStore {
	return &ClientsStore{db: db}
}

func (s *ClientsStore) CreateClient(client *model.Client) error {
	return s.db.Create(client).Error
}

func (s *ClientsStore) GetClient(id, managerID uint) (*model.Client, error) {
	var client model.Client
	err := s.db.First(&client, "id = ? AND manager_id = ?", id, managerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientsStore) ListClients(managerID uint, phoneSuffix string) ([]model.Client, error) {
	query := s.db.Where("manager_id = ?", managerID)

	suffix := digitsOnly(phoneSuffix)
	if suffix != "" {
		query = query.Where("phone LIKE ?", "%"+suffix)
	}

	var clients []model.Client
	err := query.Order("created_at desc").Find(&clients).Error
	return clients, err
}

func (s *ClientsStore) UpdateClient(id, managerID uint, upd store.ClientUpdate) (*model.Client, error) {
	client, err := s.GetClient(id, managerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if upd.Status != nil {
		updates["status"] = *upd.Status
	}
	if upd.Priority != nil {
		updates["priority"] = *upd.Priority
	}
	if upd.TotalSum != nil {
		updates["total_sum"] = *upd.TotalSum
	}
	if len(updates) == 0 {
		return client, nil
	}

	if err := s.db.Model(client).Updates(updates).Error; err != nil {
		return nil, err
	}
	return client, nil
}

func digitsOnly(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, r)
		}
	}
	return string(out)
}
