package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/Dzrekey001/user-auth-service/models"
)

// AuthService drives the whole account lifecycle: registration, credential
// checks, session management and password reset.
//
// Methods fall into two groups. Registration and password-reset operations
// return errors because the caller must distinguish failure modes. The
// session operations (ValidLogin, CreateSession, GetUserFromSessionID,
// DestroySession) are total: they never return an error and report failure
// through their boolean result or, for DestroySession, not at all.
type AuthService interface {
	// RegisterUser creates an account for email with the hashed password.
	// Returns ErrUserAlreadyExists when the email is taken and
	// ErrInvalidDataProvided when email or password is empty.
	RegisterUser(ctx context.Context, email string, password string) (models.User, error)

	// ValidLogin reports whether email and password name a valid account.
	// Unknown email, wrong password and storage failures all read as false.
	ValidLogin(ctx context.Context, email string, password string) bool

	// CreateSession starts a session for the user with the given email and
	// returns the opaque session token. ok is false when no session could
	// be created for any reason.
	CreateSession(ctx context.Context, email string) (sessionID string, ok bool)

	// GetUserFromSessionID resolves a session token back to its user.
	// ok is false for an empty, unknown or ambiguous token.
	GetUserFromSessionID(ctx context.Context, sessionID string) (models.User, bool)

	// DestroySession ends any session of the user with the given id.
	// It is a no-op for an invalid id and swallows storage failures.
	DestroySession(ctx context.Context, userID int64)

	// GetResetPasswordToken issues a single-use password-reset token for
	// the account with the given email. Returns ErrResetRequestFailed when
	// the email is unknown.
	GetResetPasswordToken(ctx context.Context, email string) (string, error)

	// UpdatePassword sets a new password for the account holding resetToken
	// and invalidates the token. Returns ErrInvalidResetToken when the token
	// does not identify an account.
	UpdatePassword(ctx context.Context, resetToken string, newPassword string) error
}

// PasswordHasher abstracts the one-way credential hash so the service can be
// tested without paying the bcrypt cost.
type PasswordHasher interface {
	Hash(password string) ([]byte, error)
	Verify(hashedPassword []byte, password string) bool
}

// TokenGenerator produces the opaque session and reset tokens.
type TokenGenerator interface {
	Generate() string
}
