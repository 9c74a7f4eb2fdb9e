// Package adapter provides the client-side transport abstraction for talking
// to the user-auth-service HTTP API.
//
// The primary abstraction is [ServerAdapter], which decouples client code
// from the wire protocol. The package ships an HTTP implementation
// ([NewHTTPServerAdapter]) built on resty that manages the session cookie
// across calls.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/Dzrekey001/user-auth-service/models"
)

// ServerAdapter defines transport-agnostic communication with the
// user-auth-service server. Implementations are responsible for form
// encoding, session-cookie management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetSessionID stores the session token that will be attached as the
	// session cookie to subsequent session-bound requests. It is normally
	// called by Login itself.
	SetSessionID(sessionID string)

	// SessionID returns the session token currently stored in the adapter,
	// or an empty string if no login has happened yet.
	SessionID() string

	// Welcome fetches the root greeting payload.
	Welcome(ctx context.Context) (models.WelcomeResponse, error)

	// Register creates an account for email. Returns ErrBadRequest (wrapped)
	// when the email is already registered.
	Register(ctx context.Context, email string, password string) (models.UserResponse, error)

	// Login opens a session for the credentials and stores the returned
	// session cookie via SetSessionID. Returns ErrUnauthorized (wrapped) on
	// bad credentials.
	Login(ctx context.Context, email string, password string) (models.UserResponse, error)

	// Profile fetches the profile of the currently logged-in user. Returns
	// ErrForbidden (wrapped) when the stored session is missing or stale.
	Profile(ctx context.Context) (models.ProfileResponse, error)

	// Logout destroys the current session. The server redirects to the root
	// route; the greeting payload of that final response is returned. The
	// stored session id is cleared.
	Logout(ctx context.Context) (models.WelcomeResponse, error)

	// RequestResetToken asks for a password-reset token for email. Returns
	// ErrForbidden (wrapped) for an unknown email.
	RequestResetToken(ctx context.Context, email string) (models.ResetTokenResponse, error)

	// UpdatePassword redeems resetToken to set newPassword. Returns
	// ErrForbidden (wrapped) for an invalid token.
	UpdatePassword(ctx context.Context, email string, resetToken string, newPassword string) (models.UserResponse, error)
}
