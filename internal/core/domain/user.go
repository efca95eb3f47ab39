package domain

import (
	"errors"
	"time"
)

// Role is the closed set of roles a user can hold. There is no default role;
// every user record carries exactly one of these values.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleNurse      Role = "nurse"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleNurse:
		return true
	}
	return false
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailExists = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrUnauthenticated = errors.New("authentication required")
var ErrForbidden = errors.New("insufficient role")

// User models an account in the roster system. PasswordHash is the bcrypt
// digest of the plaintext password and must never be serialized outward.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the verified claim set extracted from a session token. It is
// threaded through the request context as a first-class value so downstream
// code never re-parses the token.
type Identity struct {
	SubjectID string
	Role      Role
}

// ValidationError carries field-level detail for malformed input. Input is
// rejected at the boundary before any repository access happens.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "input validation error"
	}
	return "input validation error: " + e.Fields[0]
}

// NewValidationError builds a ValidationError from one message per failing field.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
