// Package middleware holds the HTTP middleware shared by the route
// layer: bearer token authentication and Prometheus instrumentation.
package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/salesupport/salesupport/pkg/auth"
	"github.com/salesupport/salesupport/pkg/i18n"
	"github.com/salesupport/salesupport/pkg/identity"
	"github.com/salesupport/salesupport/pkg/server/store"
)

// Authenticator validates bearer tokens and resolves them to users.
type Authenticator struct {
	Tokens  *auth.TokenIssuer
	Users   store.UsersStore
	Catalog *i18n.Catalog
}

// NewAuthenticator creates the authentication middleware.
func NewAuthenticator(tokens *auth.TokenIssuer, users store.UsersStore, catalog *i18n.Catalog) *Authenticator {
	return &Authenticator{Tokens: tokens, Users: users, Catalog: catalog}
}

// Middleware rejects requests without a valid bearer token for an
// existing user. A token whose user has since been deleted is as
// unauthorized as no token at all.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			a.unauthorized(w, r, "not_authenticated")
			return
		}

		subject, err := a.Tokens.Verify(token)
		if err != nil {
			a.unauthorized(w, r, "invalid_token")
			return
		}

		userID, err := strconv.ParseUint(subject, 10, 64)
		if err != nil {
			a.unauthorized(w, r, "invalid_token")
			return
		}

		user, err := a.Users.GetUser(uint(userID))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				a.unauthorized(w, r, "invalid_token")
				return
			}
			a.fail(w, r, http.StatusInternalServerError, "internal_error")
			return
		}

		ctx := identity.Set(r.Context(), &identity.Identity{
			User:      user,
			RequestID: uuid.NewString(),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates a subtree to admin users. It assumes Middleware
// already ran.
func (a *Authenticator) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			a.unauthorized(w, r, "not_authenticated")
			return
		}
		if !id.IsAdmin() {
			a.fail(w, r, http.StatusForbidden, "forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *Authenticator) unauthorized(w http.ResponseWriter, r *http.Request, code string) {
	a.fail(w, r, http.StatusUnauthorized, code)
}

func (a *Authenticator) fail(w http.ResponseWriter, r *http.Request, status int, code string) {
	message := code
	if a.Catalog != nil {
		message = a.Catalog.Translate(code, r.Header.Get("Accept-Language"))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{"code": code, "message": message},
	})
}
