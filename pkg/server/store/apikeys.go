package store

import "github.com/salesupport/salesupport/pkg/model"

// APIKeyUpdate carries the optional fields of an api-key PATCH. KeyValue,
// when set, must already be ciphertext.
type APIKeyUpdate struct {
	Name     *string
	Service  *string
	KeyValue *string
}

// APIKeysStore abstracts api-key persistence. Values pass through this
// interface as ciphertext only; encryption and decryption happen in the
// handler layer.
type APIKeysStore interface {
	CreateAPIKey(key *model.APIKey) error
	ListAPIKeys() ([]model.APIKey, error)

	// UpdateAPIKey applies the non-nil fields of upd. Returns ErrNotFound
	// when the key is missing.
	UpdateAPIKey(id uint, upd APIKeyUpdate) (*model.APIKey, error)

	// DeleteAPIKey removes a key. Returns ErrNotFound when missing.
	DeleteAPIKey(id uint) error
}
