package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesupport/salesupport/pkg/auth"
	"github.com/salesupport/salesupport/pkg/identity"
	"github.com/salesupport/salesupport/pkg/model"
	"github.com/salesupport/salesupport/pkg/server/store"
)

type stubUsers struct {
	users map[uint]*model.User
}

func (s *stubUsers) CreateUser(*model.User) error { return nil }
func (s *stubUsers) GetUser(id uint) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}
func (s *stubUsers) FindByName(string) (*model.User, error)  { return nil, store.ErrNotFound }
func (s *stubUsers) FindByEmail(string) (*model.User, error) { return nil, store.ErrNotFound }
func (s *stubUsers) ListUsers() ([]model.User, error)        { return nil, nil }
func (s *stubUsers) UpdateUser(uint, store.UserUpdate) (*model.User, error) {
	return nil, store.ErrNotFound
}
func (s *stubUsers) DeleteUser(uint) error { return nil }

func newTestAuthenticator(users *stubUsers) (*Authenticator, *auth.TokenIssuer) {
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	return NewAuthenticator(tokens, users, nil), tokens
}

func okHandler(sawIdentity *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if ok && id.User != nil {
			*sawIdentity = true
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	users := &stubUsers{users: map[uint]*model.User{
		7: {ID: 7, Name: "alice", Role: model.RoleManager},
	}}
	mw, tokens := newTestAuthenticator(users)

	token, err := tokens.Issue("7")
	require.NoError(t, err)

	var sawIdentity bool
	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	mw.Middleware(okHandler(&sawIdentity)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, sawIdentity)
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	mw, _ := newTestAuthenticator(&stubUsers{})

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	rr := httptest.NewRecorder()
	mw.Middleware(http.NotFoundHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "not_authenticated")
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	mw, _ := newTestAuthenticator(&stubUsers{})

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rr := httptest.NewRecorder()
	mw.Middleware(http.NotFoundHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid_token")
}

func TestAuthMiddlewareRejectsDeletedUser(t *testing.T) {
	mw, tokens := newTestAuthenticator(&stubUsers{users: map[uint]*model.User{}})

	token, err := tokens.Issue("42")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	mw.Middleware(http.NotFoundHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireAdmin(t *testing.T) {
	mw, _ := newTestAuthenticator(&stubUsers{})

	handler := mw.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	adminReq := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	adminReq = adminReq.WithContext(identity.Set(adminReq.Context(), &identity.Identity{
		User: &model.User{Role: model.RoleAdmin},
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, adminReq)
	assert.Equal(t, http.StatusOK, rr.Code)

	managerReq := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	managerReq = managerReq.WithContext(identity.Set(managerReq.Context(), &identity.Identity{
		User: &model.User{Role: model.RoleManager},
	}))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, managerReq)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}
