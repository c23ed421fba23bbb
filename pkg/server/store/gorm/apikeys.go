package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/salesupport/salesupport/pkg/model"
	"github.com/salesupport/salesupport/pkg/server/store"
)

// Ensure APIKeysStore implements store.APIKeysStore
var _ store.APIKeysStore = (*APIKeysStore)(nil)

// APIKeysStore implements store.APIKeysStore using GORM
type APIKeysStore struct {
	db *gorm.DB
}

// NewAPIKeysStore creates a new APIKeysStore
func NewAPIKeysStore(db *gorm.DB) *APIKeysStore {
	return &APIKeysStore{db: db}
}

func (s *APIKeysStore) CreateAPIKey(key *model.APIKey) error {
	return s.db.Create(key).Error
}

func (s *APIKeysStore) ListAPIKeys() ([]model.APIKey, error) {
	var keys []model.APIKey
	err := s.db.Order("id").Find(&keys).Error
	return keys, err
}

func (s *APIKeysStore) UpdateAPIKey(id uint, upd store.APIKeyUpdate) (*model.APIKey, error) {
	var key model.APIKey
	err := s.db.First(&key, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if upd.Name != nil {
		updates["name"] = *upd.Name
	}
	if upd.Service != nil {
		updates["service"] = *upd.Service
	}
	if upd.KeyValue != nil {
		updates["key_value"] = *upd.KeyValue
	}
	if len(updates) == 0 {
		return &key, nil
	}

	if err := s.db.Model(&key).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &key, nil
}

func (s *APIKeysStore) DeleteAPIKey(id uint) error {
	tx := s.db.Delete(&model.APIKey{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
