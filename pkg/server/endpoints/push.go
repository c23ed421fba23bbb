package endpoints

import (
	"net/http"

	"github.com/salesupport/salesupport/pkg/identity"
	"github.com/salesupport/salesupport/pkg/push"
	"github.com/salesupport/salesupport/pkg/server"
)

type pushSendRequest struct {
	Message string `json:"message"`
}

// RegisterPushEndpoints attaches subscription registration and send.
// Send is fire-and-forget: it answers 202 once every task is queued, and
// delivery failures stay on the worker's side.
func RegisterPushEndpoints(s *server.Server, authn AuthMiddleware) {
	router := s.Router.PathPrefix("/push").Subrouter()
	router.Use(authn.Middleware)

	router.HandleFunc("/register", handlePushRegister(s)).Methods("POST")
	router.HandleFunc("/send", handlePushSend(s)).Methods("POST")
}

func handlePushRegister(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		var sub push.Subscription
		if err := decodeJSON(r, &sub); err != nil {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_request")
			return
		}
		if sub.Endpoint == "" {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "missing_fields")
			return
		}

		s.Registry.Register(id.UserID(), sub)
		w.WriteHeader(http.StatusNoContent)
	}
}

func handlePushSend(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		var req pushSendRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_request")
			return
		}
		if req.Message == "" {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "missing_fields")
			return
		}

		subs := s.Registry.Get(id.UserID())
		if len(subs) == 0 {
			respondWithError(w, r, s.Catalog, http.StatusNotFound, "no_subscriptions")
			return
		}

		scheduled := 0
		for _, sub := range subs {
			task := push.Task{
				UserID:       id.UserID(),
				Subscription: sub,
				Message:      req.Message,
			}
			if err := s.Queue.Enqueue(r.Context(), task); err != nil {
				respondWithError(w, r, s.Catalog, http.StatusBadGateway, "queue_unavailable")
				return
			}
			scheduled++
		}

		respondWithJSON(w, http.StatusAccepted, map[string]int{"scheduled": scheduled})
	}
}
