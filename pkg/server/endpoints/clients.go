package endpoints

import (
	"errors"
	"net/http"

	"github.com/salesupport/salesupport/pkg/audit"
	"github.com/salesupport/salesupport/pkg/identity"
	"github.com/salesupport/salesupport/pkg/model"
	"github.com/salesupport/salesupport/pkg/server"
	"github.com/salesupport/salesupport/pkg/server/store"
)

type clientRequest struct {
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email"`
	Status   string  `json:"status,omitempty"`
	Priority string  `json:"priority,omitempty"`
	TotalSum float64 `json:"total_sum,omitempty"`
}

type clientPatchRequest struct {
	Status   *string  `json:"status,omitempty"`
	Priority *string  `json:"priority,omitempty"`
	TotalSum *float64 `json:"total_sum,omitempty"`
}

// RegisterClientsEndpoints attaches the manager-scoped client routes.
func RegisterClientsEndpoints(s *server.Server, authn AuthMiddleware) {
	router := s.Router.PathPrefix("/clients").Subrouter()
	router.Use(authn.Middleware)

	router.HandleFunc("", handleListClients(s)).Methods("GET")
	router.HandleFunc("", handleCreateClient(s)).Methods("POST")
	router.HandleFunc("/{id:[0-9]+}", handleGetClient(s)).Methods("GET")
	router.HandleFunc("/{id:[0-9]+}", handlePatchClient(s)).Methods("PATCH")
}

func handleListClients(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		clients, err := s.ClientsStore.ListClients(id.UserID(), r.URL.Query().Get("phone_ends"))
		if err != nil {
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			return
		}
		respondWithJSON(w, http.StatusOK, clients)
	}
}

func handleCreateClient(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		var req clientRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_request")
			return
		}
		if req.Name == "" || req.Phone == "" {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "missing_fields")
			return
		}

		client := &model.Client{
			Name:      req.Name,
			Phone:     req.Phone,
			Email:     req.Email,
			ManagerID: id.UserID(),
			Status:    req.Status,
			Priority:  req.Priority,
			TotalSum:  req.TotalSum,
		}
		if client.Status == "" {
			client.Status = "new"
		}
		if client.Priority == "" {
			client.Priority = "medium"
		}

		if err := s.ClientsStore.CreateClient(client); err != nil {
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			return
		}

		s.Auditor.Record(audit.ClientEvent{ManagerID: id.UserID(), ClientID: client.ID, Verb: "create"})

		respondWithJSON(w, http.StatusCreated, client)
	}
}

func handleGetClient(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		clientID, ok := pathID(r)
		if !ok {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_request")
			return
		}

		client, err := s.ClientsStore.GetClient(clientID, id.UserID())
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, r, s.Catalog, http.StatusNotFound, "client_not_found")
				return
			}
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			return
		}
		respondWithJSON(w, http.StatusOK, client)
	}
}

func handlePatchClient(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		clientID, ok := pathID(r)
		if !ok {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_request")
			return
		}

		var req clientPatchRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_request")
			return
		}

		client, err := s.ClientsStore.UpdateClient(clientID, id.UserID(), store.ClientUpdate{
			Status:   req.Status,
			Priority: req.Priority,
			TotalSum: req.TotalSum,
		})
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, r, s.Catalog, http.StatusNotFound, "client_not_found")
				return
			}
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			return
		}

		s.Auditor.Record(audit.ClientEvent{ManagerID: id.UserID(), ClientID: clientID, Verb: "update"})

		respondWithJSON(w, http.StatusOK, client)
	}
}
