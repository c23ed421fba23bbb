package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAdminCredentials(t *testing.T) {
	creds, err := ParseAdminCredentials("admin@example.com:StrongPass123")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", creds.Username)
	assert.Equal(t, "StrongPass123", creds.Password)
}

func TestParseAdminCredentialsMissingSeparator(t *testing.T) {
	_, err := ParseAdminCredentials("adminonly")
	assert.Error(t, err)

	_, err = ParseAdminCredentials(":password")
	assert.Error(t, err)

	_, err = ParseAdminCredentials("admin:")
	assert.Error(t, err)
}

func TestAdminCredentialsEmail(t *testing.T) {
	creds := AdminCredentials{Username: "admin@example.com"}
	assert.Equal(t, "admin@example.com", creds.Email())

	creds = AdminCredentials{Username: "root"}
	assert.Equal(t, "root@root.local", creds.Email())
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("DEFAULT_ADMIN_CREDENTIALS", "admin@example.com:StrongPass123")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/test", s.DatabaseURL)
	assert.Equal(t, "HS256", s.JWTAlgorithm)
	assert.Equal(t, 60*time.Minute, s.JWTAccessTTL)
	assert.Equal(t, 90, s.RetentionDays)
	assert.Equal(t, []string{"*"}, s.CORSOrigins)
	assert.Equal(t, "admin@example.com", s.DefaultAdmin.Username)
}

func TestLoadMalformedAdminCredentialsFailsFast(t *testing.T) {
	t.Setenv("DEFAULT_ADMIN_CREDENTIALS", "no-separator")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidTTL(t *testing.T) {
	t.Setenv("DEFAULT_ADMIN_CREDENTIALS", "admin:admin")
	t.Setenv("JWT_ACCESS_EXPIRE", "sixty")

	_, err := Load()
	assert.Error(t, err)
}
