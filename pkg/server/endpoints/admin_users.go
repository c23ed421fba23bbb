package endpoints

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salesupport/salesupport/pkg/audit"
	"github.com/salesupport/salesupport/pkg/auth"
	"github.com/salesupport/salesupport/pkg/identity"
	"github.com/salesupport/salesupport/pkg/model"
	"github.com/salesupport/salesupport/pkg/server"
	"github.com/salesupport/salesupport/pkg/server/store"
)

type userPatchRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty"`
	Password *string `json:"password,omitempty"`
}

// RegisterAdminUsersEndpoints attaches the admin-only user management
// routes.
func RegisterAdminUsersEndpoints(s *server.Server, authn AuthMiddleware) {
	router := s.Router.PathPrefix("/admin/users").Subrouter()
	router.Use(authn.Middleware, authn.RequireAdmin)

	router.HandleFunc("", handleListUsers(s)).Methods("GET")
	router.HandleFunc("", handleCreateUser(s)).Methods("POST")
	router.HandleFunc("/{id:[0-9]+}", handlePatchUser(s)).Methods("PATCH")
	router.HandleFunc("/{id:[0-9]+}", handleDeleteUser(s)).Methods("DELETE")
}

func pathID(r *http.Request) (uint, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func handleListUsers(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := s.UsersStore.ListUsers()
		if err != nil {
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			return
		}
		respondWithJSON(w, http.StatusOK, users)
	}
}

func handleCreateUser(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_request")
			return
		}
		if req.Name == "" || req.Email == "" || req.Password == "" {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "missing_fields")
			return
		}

		role := model.Role(req.Role)
		if req.Role == "" {
			role = model.RoleManager
		}
		if !role.Valid() {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_role")
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			return
		}

		user := &model.User{Name: req.Name, Email: req.Email, Role: role, PasswordHash: hash}
		if err := s.UsersStore.CreateUser(user); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				respondWithError(w, r, s.Catalog, http.StatusBadRequest, "username_already_registered")
				return
			}
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			return
		}

		id, _ := identity.Get(r.Context())
		s.Auditor.Record(audit.UserEvent{AdminID: id.UserID(), TargetID: user.ID, Verb: "create"})

		respondWithJSON(w, http.StatusCreated, user)
	}
}

func handlePatchUser(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetID, ok := pathID(r)
		if !ok {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_request")
			return
		}

		var req userPatchRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_request")
			return
		}

		upd := store.UserUpdate{Name: req.Name, Email: req.Email}
		if req.Role != nil {
			role := model.Role(*req.Role)
			if !role.Valid() {
				respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_role")
				return
			}
			upd.Role = &role
		}
		if req.Password != nil {
			hash, err := auth.HashPassword(*req.Password)
			if err != nil {
				respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
				return
			}
			upd.PasswordHash = &hash
		}

		user, err := s.UsersStore.UpdateUser(targetID, upd)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				respondWithError(w, r, s.Catalog, http.StatusNotFound, "user_not_found")
			case errors.Is(err, store.ErrDuplicate):
				respondWithError(w, r, s.Catalog, http.StatusBadRequest, "email_already_registered")
			default:
				respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			}
			return
		}

		id, _ := identity.Get(r.Context())
		s.Auditor.Record(audit.UserEvent{AdminID: id.UserID(), TargetID: targetID, Verb: "update"})

		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"message": s.Catalog.Translate("user_updated", r.Header.Get("Accept-Language")),
			"user":    user,
		})
	}
}

func handleDeleteUser(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetID, ok := pathID(r)
		if !ok {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_request")
			return
		}

		if err := s.UsersStore.DeleteUser(targetID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, r, s.Catalog, http.StatusNotFound, "user_not_found")
				return
			}
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			return
		}

		id, _ := identity.Get(r.Context())
		s.Auditor.Record(audit.UserEvent{AdminID: id.UserID(), TargetID: targetID, Verb: "delete"})

		respondWithJSON(w, http.StatusOK, map[string]string{
			"message": s.Catalog.Translate("user_deleted", r.Header.Get("Accept-Language")),
		})
	}
}
