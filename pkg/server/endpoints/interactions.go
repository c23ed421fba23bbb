package endpoints

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/salesupport/salesupport/pkg/identity"
	"github.com/salesupport/salesupport/pkg/model"
	"github.com/salesupport/salesupport/pkg/server"
	"github.com/salesupport/salesupport/pkg/server/store"
)

type interactionRequest struct {
	ClientID uint   `json:"client_id"`
	Type     string `json:"type"`
	Result   string `json:"result"`
}

// RegisterInteractionsEndpoints attaches the interaction routes.
// Ownership runs through the parent client: touching another manager's
// client looks identical to touching a client that does not exist.
func RegisterInteractionsEndpoints(s *server.Server, authn AuthMiddleware) {
	router := s.Router.PathPrefix("/interactions").Subrouter()
	router.Use(authn.Middleware)

	router.HandleFunc("", handleListInteractions(s)).Methods("GET")
	router.HandleFunc("", handleCreateInteraction(s)).Methods("POST")
}

func handleCreateInteraction(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		var req interactionRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_request")
			return
		}
		if req.ClientID == 0 || req.Type == "" {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "missing_fields")
			return
		}

		interaction := &model.Interaction{
			ClientID: req.ClientID,
			Type:     req.Type,
			Result:   req.Result,
		}
		if err := s.InteractionsStore.CreateInteraction(interaction, id.UserID()); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, r, s.Catalog, http.StatusNotFound, "client_not_found")
				return
			}
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			return
		}

		respondWithJSON(w, http.StatusCreated, interaction)
	}
}

func handleListInteractions(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		raw := r.URL.Query().Get("client_id")
		clientID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || clientID == 0 {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "missing_client_id")
			return
		}

		interactions, err := s.InteractionsStore.ListInteractions(uint(clientID), id.UserID())
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, r, s.Catalog, http.StatusNotFound, "client_not_found")
				return
			}
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			return
		}
		respondWithJSON(w, http.StatusOK, interactions)
	}
}
