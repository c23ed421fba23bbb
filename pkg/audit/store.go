package audit

import (
	"database/sql"
	"log"
	"time"

	"github.com/google/uuid"
)

// Recorder accepts audit events. The zero-value Nop recorder discards them.
type Recorder interface {
	Record(event Event)
}

// Store persists audit events to the audit_log table.
type Store struct {
	db *sql.DB
}

// NewStore creates a store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Record inserts the event. Failures are logged and swallowed; auditing
// never breaks the request path.
func (s *Store) Record(event Event) {
	if s == nil || s.db == nil {
		return
	}

	_, err := s.db.Exec(`
		INSERT INTO audit_log (request_id, user_id, action, entity, entity_id, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		uuid.NewString(),
		event.ActorID(),
		event.Action(),
		event.Entity(),
		event.EntityID(),
		time.Now().UTC(),
	)
	if err != nil {
		log.Printf("audit: failed to record %s: %v", event.Message(), err)
	}
}

// Purge deletes audit entries older than the cutoff and reports how many
// rows were removed.
func (s *Store) Purge(olderThan time.Time) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM audit_log WHERE timestamp < $1`, olderThan.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Nop is a Recorder that discards every event. Used in tests and in
// commands that have no audit trail.
type Nop struct{}

func (Nop) Record(Event) {}
