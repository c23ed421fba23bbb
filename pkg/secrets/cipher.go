// Package secrets encrypts the API-key values the admin panel manages.
// The symmetric key is derived deterministically from a configured
// passphrase, so two servers sharing the passphrase can decrypt each
// other's ciphertexts. Rotating the passphrase invalidates everything
// encrypted under the old one; there is no key versioning.
package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"
)

const nonceSize = 12
const versionMagic = byte('S')

// ErrDecryption indicates malformed ciphertext or ciphertext produced
// under a different passphrase.
var ErrDecryption = errors.New("decryption failed")

// Cipher encrypts and decrypts stored secret values.
type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

type symmetric struct {
	aesgcm cipher.AEAD
}

// NewCipher derives a 256-bit AES-GCM key from the passphrase.
func NewCipher(passphrase string) (Cipher, error) {
	key := sha256.Sum256([]byte(passphrase))

	c, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}

	aesgcm, err := cipher.NewGCM(c)
	if err != nil {
		return nil, err
	}

	return &symmetric{aesgcm: aesgcm}, nil
}

// Encrypt seals the plaintext under a fresh random nonce and returns the
// packed "magic|nonce|ciphertext" blob, base64-encoded for storage in a
// text column.
func (s *symmetric) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := s.aesgcm.Seal(nil, nonce, []byte(plaintext), nil)

	packed := make([]byte, 0, 1+nonceSize+len(sealed))
	packed = append(packed, versionMagic)
	packed = append(packed, nonce...)
	packed = append(packed, sealed...)

	return base64.URLEncoding.EncodeToString(packed), nil
}

// Decrypt unpacks and opens a blob produced by Encrypt. Any failure along
// the way surfaces as ErrDecryption.
func (s *symmetric) Decrypt(ciphertext string) (string, error) {
	packed, err := base64.URLEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", ErrDecryption
	}

	if len(packed) < 1+nonceSize || packed[0] != versionMagic {
		return "", ErrDecryption
	}

	nonce := packed[1 : 1+nonceSize]
	sealed := packed[1+nonceSize:]

	plaintext, err := s.aesgcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrDecryption
	}

	return string(plaintext), nil
}
