package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/salesupport/salesupport/pkg/ai"
	"github.com/salesupport/salesupport/pkg/audit"
	"github.com/salesupport/salesupport/pkg/auth"
	"github.com/salesupport/salesupport/pkg/config"
	"github.com/salesupport/salesupport/pkg/i18n"
	"github.com/salesupport/salesupport/pkg/push"
	"github.com/salesupport/salesupport/pkg/secrets"
	"github.com/salesupport/salesupport/pkg/server/store"
)

// Server bundles the router, the stores, and the shared services the
// endpoint packages need. Endpoints are attached by the endpoints
// package via RegisterAll.
type Server struct {
	Router *mux.Router
	DB     *gorm.DB

	UsersStore        store.UsersStore
	ClientsStore      store.ClientsStore
	InteractionsStore store.InteractionsStore
	RemindersStore    store.RemindersStore
	APIKeysStore      store.APIKeysStore
	DashboardStore    store.DashboardStore
	HealthStore       store.HealthStore

	Tokens   *auth.TokenIssuer
	Cipher   secrets.Cipher
	Catalog  *i18n.Catalog
	Engine   *ai.Engine
	Registry *push.Registry
	Queue    push.Queue
	Auditor  audit.Recorder
	Settings *config.Settings

	srv *http.Server
}

// NewServer builds the HTTP server around a fresh router. Stores and
// services are assigned by the caller before RegisterAll.
func NewServer(settings *config.Settings, db *gorm.DB) *Server {
	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler:      handlers.CORS(corsOptions(settings)...)(handlers.LoggingHandler(os.Stdout, router)),
		Addr:         settings.Addr(),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:   router,
		DB:       db,
		Settings: settings,
		srv:      srv,
	}
}

func corsOptions(settings *config.Settings) []handlers.CORSOption {
	origins := settings.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return []handlers.CORSOption{
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type", "Accept-Language"}),
	}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}
