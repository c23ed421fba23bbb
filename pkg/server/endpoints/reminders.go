package endpoints

import (
	"errors"
	"net/http"
	"time"

	"github.com/salesupport/salesupport/pkg/identity"
	"github.com/salesupport/salesupport/pkg/model"
	"github.com/salesupport/salesupport/pkg/server"
	"github.com/salesupport/salesupport/pkg/server/store"
)

type reminderRequest struct {
	ClientID      uint      `json:"client_id"`
	RemindAt      time.Time `json:"remind_at"`
	Reason        string    `json:"reason"`
	AutoGenerated bool      `json:"auto_generated,omitempty"`
}

// RegisterRemindersEndpoints attaches the reminder routes.
func RegisterRemindersEndpoints(s *server.Server, authn AuthMiddleware) {
	router := s.Router.PathPrefix("/reminders").Subrouter()
	router.Use(authn.Middleware)

	router.HandleFunc("", handleListReminders(s)).Methods("GET")
	router.HandleFunc("", handleCreateReminder(s)).Methods("POST")
}

func handleCreateReminder(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		var req reminderRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_request")
			return
		}
		if req.ClientID == 0 || req.RemindAt.IsZero() {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "missing_fields")
			return
		}

		reminder := &model.Reminder{
			ClientID:      req.ClientID,
			RemindAt:      req.RemindAt,
			Reason:        req.Reason,
			Status:        "pending",
			AutoGenerated: req.AutoGenerated,
		}
		if err := s.RemindersStore.CreateReminder(reminder, id.UserID()); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, r, s.Catalog, http.StatusNotFound, "client_not_found")
				return
			}
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			return
		}

		respondWithJSON(w, http.StatusCreated, reminder)
	}
}

func handleListReminders(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		reminders, err := s.RemindersStore.ListReminders(id.UserID())
		if err != nil {
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			return
		}
		respondWithJSON(w, http.StatusOK, reminders)
	}
}
