package store

import "github.com/salesupport/salesupport/pkg/model"

// UserUpdate carries the optional fields of a user PATCH. Nil means
// "leave unchanged".
type UserUpdate struct {
	Name         *string
	Email        *string
	Role         *model.Role
	PasswordHash *string
}

// UsersStore abstracts user persistence.
type UsersStore interface {
	// CreateUser inserts a user. Returns ErrDuplicate when name or email
	// is already taken.
	CreateUser(user *model.User) error

	// GetUser fetches a user by id. Returns ErrNotFound when missing.
	GetUser(id uint) (*model.User, error)

	// FindByName fetches a user by exact name. Returns ErrNotFound when missing.
	FindByName(name string) (*model.User, error)

	// FindByEmail fetches a user by exact email. Returns ErrNotFound when missing.
	FindByEmail(email string) (*model.User, error)

	// ListUsers returns all users ordered by id.
	ListUsers() ([]model.User, error)

	// UpdateUser applies the non-nil fields of upd. Returns ErrNotFound
	// when the user is missing, ErrDuplicate on an email collision.
	UpdateUser(id uint, upd UserUpdate) (*model.User, error)

	// DeleteUser removes a user. Returns ErrNotFound when missing.
	DeleteUser(id uint) error
}
