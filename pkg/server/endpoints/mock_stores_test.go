package endpoints

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/salesupport/salesupport/pkg/model"
	"github.com/salesupport/salesupport/pkg/server/store"
)

// MockUsersStore implements store.UsersStore using testify/mock.
type MockUsersStore struct {
	mock.Mock
}

func (m *MockUsersStore) CreateUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUsersStore) GetUser(id uint) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) FindByName(name string) (*model.User, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) ListUsers() ([]model.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUsersStore) UpdateUser(id uint, upd store.UserUpdate) (*model.User, error) {
	args := m.Called(id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) DeleteUser(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockClientsStore implements store.ClientsStore using testify/mock.
type MockClientsStore struct {
	mock.Mock
}

func (m *MockClientsStore) CreateClient(client *model.Client) error {
	args := m.Called(client)
	return args.Error(0)
}

func (m *MockClientsStore) GetClient(id, managerID uint) (*model.Client, error) {
	args := m.Called(id, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientsStore) ListClients(managerID uint, phoneSuffix string) ([]model.Client, error) {
	args := m.Called(managerID, phoneSuffix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Client), args.Error(1)
}

func (m *MockClientsStore) UpdateClient(id, managerID uint, upd store.ClientUpdate) (*model.Client, error) {
	args := m.Called(id, managerID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

// MockInteractionsStore implements store.InteractionsStore using testify/mock.
type MockInteractionsStore struct {
	mock.Mock
}

func (m *MockInteractionsStore) CreateInteraction(interaction *model.Interaction, managerID uint) error {
	args := m.Called(interaction, managerID)
	return args.Error(0)
}

func (m *MockInteractionsStore) ListInteractions(clientID, managerID uint) ([]model.Interaction, error) {
	args := m.Called(clientID, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Interaction), args.Error(1)
}

// MockRemindersStore implements store.RemindersStore using testify/mock.
type MockRemindersStore struct {
	mock.Mock
}

func (m *MockRemindersStore) CreateReminder(reminder *model.Reminder, managerID uint) error {
	args := m.Called(reminder, managerID)
	return args.Error(0)
}

func (m *MockRemindersStore) ListReminders(managerID uint) ([]model.Reminder, error) {
	args := m.Called(managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reminder), args.Error(1)
}

// MockAPIKeysStore implements store.APIKeysStore using testify/mock.
type MockAPIKeysStore struct {
	mock.Mock
}

func (m *MockAPIKeysStore) CreateAPIKey(key *model.APIKey) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockAPIKeysStore) ListAPIKeys() ([]model.APIKey, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.APIKey), args.Error(1)
}

func (m *MockAPIKeysStore) UpdateAPIKey(id uint, upd store.APIKeyUpdate) (*model.APIKey, error) {
	args := m.Called(id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.APIKey), args.Error(1)
}

func (m *MockAPIKeysStore) DeleteAPIKey(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockDashboardStore implements store.DashboardStore using testify/mock.
type MockDashboardStore struct {
	mock.Mock
}

func (m *MockDashboardStore) Stats(managerID uint, now time.Time) (*store.DashboardStats, error) {
	args := m.Called(managerID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.DashboardStats), args.Error(1)
}

// MockHealthStore implements store.HealthStore using testify/mock.
type MockHealthStore struct {
	mock.Mock
}

func (m *MockHealthStore) Ping() error {
	args := m.Called()
	return args.Error(0)
}
