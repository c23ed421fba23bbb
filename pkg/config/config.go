package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AdminCredentials is the parsed DEFAULT_ADMIN_CREDENTIALS pair.
type AdminCredentials struct {
	Username string
	Password string
}

// Email derives the admin email address from the configured username.
// A username that already looks like an email is used as-is.
func (c AdminCredentials) Email() string {
	if strings.Contains(c.Username, "@") {
		return c.Username
	}
	return c.Username + "@" + c.Username + ".local"
}

// Settings holds all environment-sourced configuration for the CRM server.
// It is constructed once at startup and passed explicitly to the components
// that need it.
type Settings struct {
	AppName string

	DatabaseURL string
	RedisURL    string

	JWTSecretKey string
	JWTAlgorithm string
	JWTAccessTTL time.Duration

	CORSOrigins []string

	AIProviderKey string
	AIModel       string
	AITemperature float64

	VAPIDPublicKey  string
	VAPIDPrivateKey string
	VAPIDEmail      string

	RetentionDays int

	DefaultLocale   string
	LocaleDirectory string

	APIKeyEncryptionSecret string

	DefaultAdmin AdminCredentials

	BindAddress string
	Port        string
}

// Load reads settings from the environment, with optional .env file support.
// It fails fast on malformed values; in particular a DEFAULT_ADMIN_CREDENTIALS
// value without the "username:password" separator is a load error.
func Load() (*Settings, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	s := &Settings{
		AppName:                "AI-driven Web CRM Platform",
		DatabaseURL:            getEnv("DATABASE_URL", "postgres://postgres:postgres@db:5432/salesupport?sslmode=disable"),
		RedisURL:               getEnv("REDIS_URL", "redis://redis:6379/0"),
		JWTSecretKey:           getEnv("JWT_SECRET_KEY", "super-secret"),
		JWTAlgorithm:           getEnv("JWT_ALGORITHM", "HS256"),
		AIProviderKey:          os.Getenv("OPENAI_API_KEY"),
		AIModel:                getEnv("OPENAI_MODEL", "gpt-4o"),
		VAPIDPublicKey:         os.Getenv("VAPID_PUBLIC_KEY"),
		VAPIDPrivateKey:        os.Getenv("VAPID_PRIVATE_KEY"),
		VAPIDEmail:             getEnv("VAPID_EMAIL", "mailto:admin@example.com"),
		DefaultLocale:          getEnv("DEFAULT_LOCALE", "en"),
		LocaleDirectory:        getEnv("LOCALE_DIR", "locales"),
		APIKeyEncryptionSecret: getEnv("API_KEY_ENCRYPTION_SECRET", "change-me"),
		BindAddress:            getEnv("BIND_ADDRESS", "0.0.0.0"),
		Port:                   getEnv("PORT", "8000"),
	}

	if s.JWTAlgorithm != "HS256" {
		return nil, fmt.Errorf("unsupported JWT_ALGORITHM %q", s.JWTAlgorithm)
	}

	expireMinutes, err := getEnvInt("JWT_ACCESS_EXPIRE", 60)
	if err != nil {
		return nil, err
	}
	s.JWTAccessTTL = time.Duration(expireMinutes) * time.Minute

	s.RetentionDays, err = getEnvInt("RETENTION_DAYS", 90)
	if err != nil {
		return nil, err
	}

	s.AITemperature, err = getEnvFloat("OPENAI_TEMPERATURE", 0.3)
	if err != nil {
		return nil, err
	}

	s.CORSOrigins = splitAndTrim(getEnv("CORS_ORIGINS", "*"))

	s.DefaultAdmin, err = ParseAdminCredentials(getEnv("DEFAULT_ADMIN_CREDENTIALS", "admin:admin"))
	if err != nil {
		return nil, err
	}

	return s, nil
}

// ParseAdminCredentials splits a "username:password" pair.
func ParseAdminCredentials(raw string) (AdminCredentials, error) {
	username, password, found := strings.Cut(raw, ":")
	if !found || username == "" || password == "" {
		return AdminCredentials{}, fmt.Errorf("DEFAULT_ADMIN_CREDENTIALS must be in username:password format")
	}
	return AdminCredentials{Username: username, Password: password}, nil
}

// Addr returns the host:port the server binds to.
func (s *Settings) Addr() string {
	return s.BindAddress + ":" + s.Port
}

func getEnv(name, fallback string) string {
	if val := os.Getenv(name); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(name string, fallback int) (int, error) {
	val := os.Getenv(name)
	if val == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, val, err)
	}
	return i, nil
}

func getEnvFloat(name string, fallback float64) (float64, error) {
	val := os.Getenv(name)
	if val == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, val, err)
	}
	return f, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
