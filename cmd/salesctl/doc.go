// Package main implements salesctl, the CLI for the salesupport CRM
// backend.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: persistence interfaces and GORM implementations
//   - pkg/auth: password hashing and bearer tokens
//   - pkg/secrets: api-key encryption at rest
//   - pkg/ai: deterministic assistant engine
//   - pkg/push: push subscriptions, task queue, and delivery worker
//   - pkg/i18n: localized response catalogs
//   - pkg/audit: audit logging
//   - pkg/config: configuration management
//
// # Quick Start
//
//	# Run database migrations
//	salesctl db migrate
//
//	# Start the API server (runs migrations and seeds the admin account)
//	salesctl server
//
//	# Start the push delivery worker
//	salesctl worker
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - REDIS_URL: Redis broker for push delivery tasks
//   - JWT_SECRET_KEY: token signing secret
//   - API_KEY_ENCRYPTION_SECRET: passphrase for api-key encryption
//   - DEFAULT_ADMIN_CREDENTIALS: "username:password" seeded on startup
//   - VAPID_PUBLIC_KEY / VAPID_PRIVATE_KEY: web push credentials
//   - LOCALE_DIR / DEFAULT_LOCALE: response localization
//   - PORT / BIND_ADDRESS: server listen address
package main
