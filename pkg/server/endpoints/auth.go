package endpoints

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/salesupport/salesupport/pkg/audit"
	"github.com/salesupport/salesupport/pkg/auth"
	"github.com/salesupport/salesupport/pkg/identity"
	"github.com/salesupport/salesupport/pkg/model"
	"github.com/salesupport/salesupport/pkg/server"
	"github.com/salesupport/salesupport/pkg/server/store"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterAuthEndpoints attaches /auth/register, /auth/login and
// /auth/me.
func RegisterAuthEndpoints(s *server.Server, authn AuthMiddleware) {
	router := s.Router.PathPrefix("/auth").Subrouter()

	router.HandleFunc("/register", handleRegister(s)).Methods("POST")
	router.HandleFunc("/login", handleLogin(s)).Methods("POST")
	router.Handle("/me", authn.Middleware(http.HandlerFunc(handleMe(s)))).Methods("GET")
}

func handleRegister(s *server.Server) http.HandlerFunc {
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

		if _, err := s.UsersStore.FindByName(req.Name); err == nil {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "username_already_registered")
			return
		}
		if _, err := s.UsersStore.FindByEmail(req.Email); err == nil {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "email_already_registered")
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			return
		}

		user := &model.User{
			Name:         req.Name,
			Email:        req.Email,
			Role:         role,
			PasswordHash: hash,
		}
		if err := s.UsersStore.CreateUser(user); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				respondWithError(w, r, s.Catalog, http.StatusBadRequest, "username_already_registered")
				return
			}
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			return
		}

		s.Auditor.Record(audit.UserEvent{AdminID: user.ID, TargetID: user.ID, Verb: "create"})

		respondWithJSON(w, http.StatusCreated, map[string]interface{}{
			"message": s.Catalog.Translate("user_created", r.Header.Get("Accept-Language")),
			"user":    user,
		})
	}
}

// handleLogin authenticates a form-encoded username and password. The
// username matches an account name first, then an email, mirroring how
// the frontend lets people log in with either.
func handleLogin(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "invalid_request")
			return
		}

		username := r.PostFormValue("username")
		password := r.PostFormValue("password")
		if username == "" || password == "" {
			respondWithError(w, r, s.Catalog, http.StatusBadRequest, "missing_fields")
			return
		}

		user, err := s.UsersStore.FindByName(username)
		if errors.Is(err, store.ErrNotFound) {
			user, err = s.UsersStore.FindByEmail(username)
		}
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, r, s.Catalog, http.StatusNotFound, "user_not_found")
				return
			}
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			return
		}

		if !auth.VerifyPassword(password, user.PasswordHash) {
			respondWithError(w, r, s.Catalog, http.StatusUnauthorized, "incorrect_password")
			return
		}

		token, err := s.Tokens.Issue(strconv.FormatUint(uint64(user.ID), 10))
		if err != nil {
			respondWithError(w, r, s.Catalog, http.StatusInternalServerError, "internal_error")
			return
		}

		s.Auditor.Record(audit.LoginEvent{UserID: user.ID})

		respondWithJSON(w, http.StatusOK, tokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}

func handleMe(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, r, s.Catalog, http.StatusUnauthorized, "not_authenticated")
			return
		}
		respondWithJSON(w, http.StatusOK, id.User)
	}
}
