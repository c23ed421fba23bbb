package endpoints

import (
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/salesupport/salesupport/pkg/ai"
	"github.com/salesupport/salesupport/pkg/audit"
	"github.com/salesupport/salesupport/pkg/auth"
	"github.com/salesupport/salesupport/pkg/config"
	"github.com/salesupport/salesupport/pkg/i18n"
	"github.com/salesupport/salesupport/pkg/identity"
	"github.com/salesupport/salesupport/pkg/model"
	"github.com/salesupport/salesupport/pkg/push"
	"github.com/salesupport/salesupport/pkg/secrets"
	"github.com/salesupport/salesupport/pkg/server"
)

// stubAuthn injects a fixed identity, bypassing token verification so
// handler behavior can be tested in isolation.
type stubAuthn struct {
	user *model.User
}

func (a *stubAuthn) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.user != nil {
			ctx := identity.Set(r.Context(), &identity.Identity{User: a.user, RequestID: "test"})
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

func (a *stubAuthn) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok || !id.IsAdmin() {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type testStores struct {
	users        *MockUsersStore
	clients      *MockClientsStore
	interactions *MockInteractionsStore
	reminders    *MockRemindersStore
	apiKeys      *MockAPIKeysStore
	dashboard    *MockDashboardStore
	health       *MockHealthStore
}

func newTestServer(t *testing.T, user *model.User) (*server.Server, *testStores, *push.MemoryQueue) {
	t.Helper()

	catalog, err := i18n.Load(t.TempDir(), "en")
	require.NoError(t, err)

	cipher, err := secrets.NewCipher("test-passphrase")
	require.NoError(t, err)

	stores := &testStores{
		users:        &MockUsersStore{},
		clients:      &MockClientsStore{},
		interactions: &MockInteractionsStore{},
		reminders:    &MockRemindersStore{},
		apiKeys:      &MockAPIKeysStore{},
		dashboard:    &MockDashboardStore{},
		health:       &MockHealthStore{},
	}

	queue := push.NewMemoryQueue()
	s := &server.Server{
		Router:            mux.NewRouter(),
		UsersStore:        stores.users,
		ClientsStore:      stores.clients,
		InteractionsStore: stores.interactions,
		RemindersStore:    stores.reminders,
		APIKeysStore:      stores.apiKeys,
		DashboardStore:    stores.dashboard,
		HealthStore:       stores.health,
		Tokens:            auth.NewTokenIssuer("test-secret", time.Hour),
		Cipher:            cipher,
		Catalog:           catalog,
		Engine:            ai.NewEngine("gpt-4o", 0.3),
		Registry:          push.NewRegistry(),
		Queue:             queue,
		Auditor:           audit.Nop{},
		Settings:          &config.Settings{AppName: "salesupport"},
	}

	RegisterAll(s, &stubAuthn{user: user})
	return s, stores, queue
}

func managerUser() *model.User {
	return &model.User{ID: 7, Name: "alice", Email: "alice@example.com", Role: model.RoleManager}
}

func adminUser() *model.User {
	return &model.User{ID: 1, Name: "admin", Email: "admin@admin.local", Role: model.RoleAdmin}
}
