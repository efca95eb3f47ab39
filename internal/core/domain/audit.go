package domain

import "time"

// AuthAction classifies an entry in the authentication audit trail.
type AuthAction string

const (
	ActionLoginSucceeded AuthAction = "login_succeeded"
	ActionLoginFailed    AuthAction = "login_failed"
	ActionUserRegistered AuthAction = "user_registered"
	ActionTokenRejected  AuthAction = "token_rejected"
)

// AuthEvent is an append-only audit record of an authentication decision.
// Events for the same email are processed in order (the dispatcher shards by
// email), so the trail for one account is always chronologically consistent.
type AuthEvent struct {
	ID        string     `json:"id"`
	Action    AuthAction `json:"action"`
	Email     string     `json:"email"`
	SubjectID string     `json:"subject_id,omitempty"`
	Role      Role       `json:"role,omitempty"`
	RemoteIP  string     `json:"remote_ip,omitempty"`
	At        time.Time  `json:"at"`
}
