package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/salesupport/salesupport/pkg/model"
	"github.com/salesupport/salesupport/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

func (s *UsersStore) CreateUser(user *model.User) error {
	err := s.db.Create(user).Error
	if isDuplicate(err) {
		return store.ErrDuplicate
	}
	return err
}

func (s *UsersStore) GetUser(id uint) (*model.User, error) {
	var user model.User
	err := s.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UsersStore) FindByName(name string) (*model.User, error) {
	var user model.User
	err := s.db.First(&user, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UsersStore) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := s.db.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UsersStore) ListUsers() ([]model.User, error) {
	var users []model.User
	err := s.db.Order("id").Find(&users).Error
	return users, err
}

func (s *UsersStore) UpdateUser(id uint, upd store.UserUpdate) (*model.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if upd.Name != nil {
		updates["name"] = *upd.Name
	}
	if upd.Email != nil {
		updates["email"] = *upd.Email
	}
	if upd.Role != nil {
		updates["role"] = *upd.Role
	}
	if upd.PasswordHash != nil {
		updates["password_hash"] = *upd.PasswordHash
	}
	if len(updates) == 0 {
		return user, nil
	}

	err = s.db.Model(user).Updates(updates).Error
	if isDuplicate(err) {
		return nil, store.ErrDuplicate
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UsersStore) DeleteUser(id uint) error {
	tx := s.db.Delete(&model.User{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
