package endpoints

import (
	"net/http"

	"github.com/salesupport/salesupport/pkg/server"
)

// AuthMiddleware is what the route layer needs from the authentication
// middleware.
type AuthMiddleware interface {
	Middleware(http.Handler) http.Handler
	RequireAdmin(http.Handler) http.Handler
}

// RegisterAll attaches every endpoint to the server's router.
func RegisterAll(s *server.Server, authn AuthMiddleware) {
	RegisterAuthEndpoints(s, authn)
	RegisterAdminUsersEndpoints(s, authn)
	RegisterAdminAPIKeysEndpoints(s, authn)
	RegisterClientsEndpoints(s, authn)
	RegisterInteractionsEndpoints(s, authn)
	RegisterRemindersEndpoints(s, authn)
	RegisterDashboardEndpoints(s, authn)
	RegisterAIEndpoints(s, authn)
	RegisterPushEndpoints(s, authn)
	RegisterStatusEndpoints(s)
}
