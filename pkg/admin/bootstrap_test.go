package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesupport/salesupport/pkg/auth"
	"github.com/salesupport/salesupport/pkg/config"
	"github.com/salesupport/salesupport/pkg/model"
	"github.com/salesupport/salesupport/pkg/server/store"
)

// memUsersStore is a minimal in-memory UsersStore for bootstrap tests.
type memUsersStore struct {
	nextID  uint
	users   map[uint]*model.User
	updates int
}

func newMemUsersStore() *memUsersStore {
	return &memUsersStore{nextID: 1, users: make(map[uint]*model.User)}
}

func (s *memUsersStore) CreateUser(user *model.User) error {
	for _, u := range s.users {
		if u.Name == user.Name || u.Email == user.Email {
			return store.ErrDuplicate
		}
	}
	user.ID = s.nextID
	s.nextID++
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *memUsersStore) GetUser(id uint) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *memUsersStore) FindByName(name string) (*model.User, error) {
	for _, u := range s.users {
		if u.Name == name {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memUsersStore) FindByEmail(email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memUsersStore) ListUsers() ([]model.User, error) {
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (s *memUsersStore) UpdateUser(id uint, upd store.UserUpdate) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	if upd.PasswordHash != nil {
		u.PasswordHash = *upd.PasswordHash
	}
	s.updates++
	copied := *u
	return &copied, nil
}

func (s *memUsersStore) DeleteUser(id uint) error {
	if _, ok := s.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

var _ store.UsersStore = (*memUsersStore)(nil)

func TestEnsureDefaultAdminCreatesAccount(t *testing.T) {
	users := newMemUsersStore()
	creds := config.AdminCredentials{Username: "admin", Password: "secret"}

	require.NoError(t, EnsureDefaultAdmin(users, creds))

	u, err := users.FindByName("admin")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, u.Role)
	assert.Equal(t, "admin@admin.local", u.Email)
	assert.True(t, auth.VerifyPassword("secret", u.PasswordHash))
}

func TestEnsureDefaultAdminIsIdempotent(t *testing.T) {
	users := newMemUsersStore()
	creds := config.AdminCredentials{Username: "admin", Password: "secret"}

	for i := 0; i < 3; i++ {
		require.NoError(t, EnsureDefaultAdmin(users, creds))
	}

	all, err := users.ListUsers()
	require.NoError(t, err)
	assert.Len(t, all, 1)
	// Runs after the first should find nothing to change.
	assert.Zero(t, users.updates)
}

func TestEnsureDefaultAdminRestoresRole(t *testing.T) {
	users := newMemUsersStore()
	creds := config.AdminCredentials{Username: "admin", Password: "secret"}
	require.NoError(t, EnsureDefaultAdmin(users, creds))

	u, err := users.FindByName("admin")
	require.NoError(t, err)
	role := model.RoleManager
	_, err = users.UpdateUser(u.ID, store.UserUpdate{Role: &role})
	require.NoError(t, err)

	require.NoError(t, EnsureDefaultAdmin(users, creds))

	u, err = users.FindByName("admin")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, u.Role)
}

func TestEnsureDefaultAdminRehashesChangedPassword(t *testing.T) {
	users := newMemUsersStore()
	require.NoError(t, EnsureDefaultAdmin(users, config.AdminCredentials{Username: "admin", Password: "old"}))

	require.NoError(t, EnsureDefaultAdmin(users, config.AdminCredentials{Username: "admin", Password: "new"}))

	u, err := users.FindByName("admin")
	require.NoError(t, err)
	assert.True(t, auth.VerifyPassword("new", u.PasswordHash))
	assert.False(t, auth.VerifyPassword("old", u.PasswordHash))
}

func TestEnsureDefaultAdminKeepsExistingPasswordHash(t *testing.T) {
	users := newMemUsersStore()
	creds := config.AdminCredentials{Username: "admin", Password: "secret"}
	require.NoError(t, EnsureDefaultAdmin(users, creds))

	u, err := users.FindByName("admin")
	require.NoError(t, err)
	before := u.PasswordHash

	require.NoError(t, EnsureDefaultAdmin(users, creds))

	u, err = users.FindByName("admin")
	require.NoError(t, err)
	assert.Equal(t, before, u.PasswordHash)
}
