package models

// User represents an account record in the users table.
// It progresses through the authentication lifecycle: created at
// registration, given a SessionID on login, optionally given a ResetToken
// while a password reset is outstanding.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user, assigned by the
	// store on creation. It is not exposed via JSON.
	ID int64 `json:"-"`

	// Email is the unique address the user registered with.
	// Used as the lookup key during login and password reset.
	Email string `json:"email"`

	// HashedPassword is the salted one-way hash of the user's password.
	// This value MUST be a hasher output, never plaintext, and is never
	// serialized.
	HashedPassword []byte `json:"-"`

	// SessionID is the opaque session token currently bound to the user.
	// Empty when the user has no active session. Never serialized; the
	// token travels only through the session cookie.
	SessionID string `json:"-"`

	// ResetToken is the opaque single-use password-reset capability.
	// Empty when no reset request is outstanding.
	ResetToken string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
