// Package identity carries the authenticated user through a request's
// context.
package identity

import (
	"context"

	"github.com/salesupport/salesupport/pkg/model"
)

type contextKey string

// Key is the context key under which the request identity is stored.
const Key contextKey = "identity"

// Identity is the resolved caller of a request.
type Identity struct {
	User      *model.User
	RequestID string
}

// IsAdmin reports whether the caller holds the admin role.
func (i *Identity) IsAdmin() bool {
	return i.User != nil && i.User.Role == model.RoleAdmin
}

// UserID returns the caller's user id, or zero when unauthenticated.
func (i *Identity) UserID() uint {
	if i.User == nil {
		return 0
	}
	return i.User.ID
}

// Get retrieves the Identity from a context.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(Key).(*Identity)
	return id, ok
}

// Set stores an Identity in a context.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, Key, id)
}
