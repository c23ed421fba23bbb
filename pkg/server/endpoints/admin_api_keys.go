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

type apiKeyRequest struct {
	Name     string `json:"name"`
	Service  string `json:"service"`
	KeyValue string `json:"key_value"`
}

type apiKeyPatchRequest struct {
	Name     *string `json:"name,omitempty"`
	Service  *string `json:"service,omitempty"`
	KeyValue *string `json:"key_value,omitempty"`
}

// apiKeyView is the response shape: the stored ciphertext swapped for
// plaintext.
type apiKeyView struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Service  string `json:"service"`
	KeyValue string `json:"key_value"`
}

// RegisterAdminAPIKeysEndpoints attaches the admin-only api-key vault
// routes. Key values are encrypted before they reach the store and
// decrypted on the way out.
func RegisterAdminAPIKeysEndpoints(s *server.Server, authn AuthMiddleware) {
	router := s.Router.PathPrefix("/admin/api-keys").Subrouter()
	router.Use(authn.Middleware, authn.RequireAdmin)

	router.HandleFunc("", handleListAPIKeys(s)).Methods("GET")
	router.HandleFunc("", handleCreateAPIKey(s)).Methods("POST")
	router.HandleFunc("/{id:[0-9]+}", handlePatchAPIKey(s)).Methods("PATCH")
	router.HandleFunc("/{id:[0-9]+}", handleDeleteAPIKey(s)).Methods("DELETE")
}

func handleListAPIKeys(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keys, err := s.APIKeysStore.ListAPIKeys()
		if err != nil {
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			return
		}

		views := make([]apiKeyView, 0, len(keys))
		for _, key := range keys {
			plaintext, err := s.Cipher.Decrypt(key.KeyValue)
			if err != nil {
				respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "decryption_error")
				return
			}
			views = append(views, apiKeyView{ID: key.ID, Name: key.Name, Service: key.Service, KeyValue: plaintext})
		}

		respondWithJSON(w, http.StatusOK, views)
	}
}

func handleCreateAPIKey(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req apiKeyRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_request")
			return
		}
		if req.Name == "" || req.Service == "" || req.KeyValue == "" {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "missing_fields")
			return
		}

		ciphertext, err := s.Cipher.Encrypt(req.KeyValue)
		if err != nil {
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			return
		}

		key := &model.APIKey{Name: req.Name, Service: req.Service, KeyValue: ciphertext}
		if err := s.APIKeysStore.CreateAPIKey(key); err != nil {
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			return
		}

		id, _ := identity.Get(r.Context())
		s.Auditor.Record(audit.APIKeyEvent{AdminID: id.UserID(), KeyID: key.ID, Verb: "create"})

		respondWithJSON(w, http.StatusCreated, map[string]interface{}{
			"message": s.Catalog.Translate("api_key_added", r.Header.Get("Accept-Language")),
			"api_key": apiKeyView{ID: key.ID, Name: key.Name, Service: key.Service, KeyValue: req.KeyValue},
		})
	}
}

func handlePatchAPIKey(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keyID, ok := pathID(r)
		if !ok {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_request")
			return
		}

		var req apiKeyPatchRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_request")
			return
		}

		upd := store.APIKeyUpdate{Name: req.Name, Service: req.Service}
		if req.KeyValue != nil {
			ciphertext, err := s.Cipher.Encrypt(*req.KeyValue)
			if err != nil {
				respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
				return
			}
			upd.KeyValue = &ciphertext
		}

		key, err := s.APIKeysStore.UpdateAPIKey(keyID, upd)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, r, s.Catalog, http.StatusNotFound, "api_key_not_found")
				return
			}
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			return
		}

		plaintext, err := s.Cipher.Decrypt(key.KeyValue)
		if err != nil {
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "decryption_error")
			return
		}

		id, _ := identity.Get(r.Context())
		s.Auditor.Record(audit.APIKeyEvent{AdminID: id.UserID(), KeyID: keyID, Verb: "update"})

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"message": s.Catalog.Translate("api_key_updated", r.Header.Get("Accept-Language")),
			"api_key": apiKeyView{ID: key.ID, Name: key.Name, Service: key.Service, KeyValue: plaintext},
		})
	}
}

func handleDeleteAPIKey(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keyID, ok := pathID(r)
		if !ok {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_request")
			return
		}

		if err := s.APIKeysStore.DeleteAPIKey(keyID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, r, s.Catalog, http.StatusNotFound, "api_key_not_found")
				return
			}
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			return
		}

		id, _ := identity.Get(r.Context())
		s.Auditor.Record(audit.APIKeyEvent{AdminID: id.UserID(), KeyID: keyID, Verb: "delete"})

		respondWithJSON(w, http.StatusOK, map[string]string{
			"message": s.Catalog.Translate("api_key_deleted", r.Header.Get("Accept-Language")),
		})
	}
}
