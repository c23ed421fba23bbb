// Package audit writes the persistent audit trail of privileged and
// mutating actions. Recording is fire-and-forget: a failed insert is
// logged and never fails the request that triggered it.
package audit

import "fmt"

// Event is one auditable action.
type Event interface {
	// Action is the verb, e.g. "create", "update", "delete", "login".
	Action() string
	// Entity names the record kind acted on.
	Entity() string
	// EntityID identifies the record acted on (0 when inapplicable).
	EntityID() uint
	// ActorID is the user who performed the action.
	ActorID() uint
	// Message renders a human-readable summary.
	Message() string
}

// UserEvent covers admin actions on user accounts.
type UserEvent struct {
	AdminID  uint
	TargetID uint
	Verb     string
}

func (e UserEvent) Action() string { return e.Verb }
func (e UserEvent) Entity() string { return "user" }
func (e UserEvent) EntityID() uint { return e.TargetID }
func (e UserEvent) ActorID() uint  { return e.AdminID }
func (e UserEvent) Message() string {
	return fmt.Sprintf("user %d %sd user %d", e.AdminID, e.Verb, e.TargetID)
}

// APIKeyEvent covers admin actions on stored api keys.
type APIKeyEvent struct {
	AdminID uint
	KeyID   uint
	Verb    string
}

func (e APIKeyEvent) Action() string { return e.Verb }
func (e APIKeyEvent) Entity() string { return "api_key" }
func (e APIKeyEvent) EntityID() uint { return e.KeyID }
func (e APIKeyEvent) ActorID() uint  { return e.AdminID }
func (e APIKeyEvent) Message() string {
	return fmt.Sprintf("user %d %sd api key %d", e.AdminID, e.Verb, e.KeyID)
}

// ClientEvent covers manager actions on clients.
type ClientEvent struct {
	ManagerID uint
	ClientID  uint
	Verb      string
}

func (e ClientEvent) Action() string { return e.Verb }
func (e ClientEvent) Entity() string { return "client" }
func (e ClientEvent) EntityID() uint { return e.ClientID }
func (e ClientEvent) ActorID() uint  { return e.ManagerID }
func (e ClientEvent) Message() string {
	return fmt.Sprintf("user %d %sd client %d", e.ManagerID, e.Verb, e.ClientID)
}

// LoginEvent records a successful authentication.
type LoginEvent struct {
	UserID uint
}

func (e LoginEvent) Action() string  { return "login" }
func (e LoginEvent) Entity() string  { return "user" }
func (e LoginEvent) EntityID() uint  { return e.UserID }
func (e LoginEvent) ActorID() uint   { return e.UserID }
func (e LoginEvent) Message() string { return fmt.Sprintf("user %d logged in", e.UserID) }
