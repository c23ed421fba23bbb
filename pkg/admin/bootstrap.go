// Package admin seeds and reconciles the built-in administrator account.
package admin

import (
	"errors"
	"log"

	"github.com/salesupport/salesupport/pkg/auth"
	"github.com/salesupport/salesupport/pkg/config"
	"github.com/salesupport/salesupport/pkg/model"
	"github.com/salesupport/salesupport/pkg/server/store"
)

// EnsureDefaultAdmin makes sure an account matching the configured
// credentials exists with the admin role. Missing accounts are created;
// existing ones are reconciled field by field, so a demoted role, a
// changed password, or a drifted email each gets corrected
// independently. Running it any number of times converges on the same
// account.
func EnsureDefaultAdmin(users store.UsersStore, creds config.AdminCredentials) error {
	user, err := users.FindByName(creds.Username)
	if errors.Is(err, store.ErrNotFound) {
		return createAdmin(users, creds)
	}
	if err != nil {
		return err
	}
	return reconcileAdmin(users, user, creds)
}

func createAdmin(users store.UsersStore, creds config.AdminCredentials) error {
	hash, err := auth.HashPassword(creds.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Name:         creds.Username,
		Email:        creds.Email(),
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	if err := users.CreateUser(user); err != nil {
		// A concurrent bootstrap may have won the insert race. The
		// unique constraint makes the outcome a single account either
		// way, so pick up reconciliation instead of failing.
		if errors.Is(err, store.ErrDuplicate) {
			existing, ferr := users.FindByName(creds.Username)
			if ferr != nil {
				return ferr
			}
			return reconcileAdmin(users, existing, creds)
		}
		return err
	}

	log.Printf("bootstrap: created default admin %q (id=%d)", user.Name, user.ID)
	return nil
}

func reconcileAdmin(users store.UsersStore, user *model.User, creds config.AdminCredentials) error {
	upd := store.UserUpdate{}
	changed := false

	if user.Role != model.RoleAdmin {
		role := model.RoleAdmin
		upd.Role = &role
		changed = true
	}

	if !auth.VerifyPassword(creds.Password, user.PasswordHash) {
		hash, err := auth.HashPassword(creds.Password)
		if err != nil {
			return err
		}
		upd.PasswordHash = &hash
		changed = true
	}

	if want := creds.Email(); user.Email != want {
		upd.Email = &want
		changed = true
	}

	if !changed {
		return nil
	}

	if _, err := users.UpdateUser(user.ID, upd); err != nil {
		return err
	}
	log.Printf("bootstrap: reconciled default admin %q (id=%d)", user.Name, user.ID)
	return nil
}
