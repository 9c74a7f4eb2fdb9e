package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dzrekey001/user-auth-service/internal/logger"
	"github.com/Dzrekey001/user-auth-service/internal/store"
	"github.com/Dzrekey001/user-auth-service/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and session and
// reset-token lifecycle using a UserRepository for persistence, bcrypt for
// password hashing and UUIDs for the opaque tokens.
//
// The email existence check and the subsequent write are separate repository
// calls; two concurrent registrations of the same email can both pass the
// check. The schema carries no unique constraint, so the race produces
// duplicate rows rather than an error, and later lookups on that email
// report ambiguity.
type authService struct {
	// userRepository is the data-access layer used to create, look up and
	// update users.
	userRepository store.UserRepository

	// hasher produces and verifies the salted password digests.
	hasher PasswordHasher

	// tokens produces the opaque session and reset tokens.
	tokens TokenGenerator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository, password hasher and token generator.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher PasswordHasher, tokens TokenGenerator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both email and password are non-empty, rejects an email
// that already has an account, hashes the password and delegates persistence
// to the UserRepository. Uniqueness lives here, not in the schema: the
// pre-insert lookup is the only guard against duplicate emails.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrUserAlreadyExists if an account with this email exists.
//   - A wrapped storage error if a repository call fails.
func (a *authService) RegisterUser(ctx context.Context, email string, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	_, err := a.userRepository.FindUserBy(ctx, store.ByEmail(email))
	switch {
	case err == nil, errors.Is(err, store.ErrAmbiguousCriteria):
		log.Warn().Str("email", email).Msg("registration rejected: email already registered")
		return models.User{}, fmt.Errorf("user %s: %w", email, ErrUserAlreadyExists)
	case errors.Is(err, store.ErrUserNotFound):
		// email is free, proceed
	default:
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hashedPassword, err := a.hasher.Hash(password)
	if err != nil {
		log.Err(err).Str("email", email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, email, hashedPassword)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// ValidLogin reports whether the email and password identify an account.
//
// Every failure mode (empty input, unknown email, ambiguous email, storage
// error, wrong password) reads as false; callers get a yes/no answer and
// nothing that would distinguish a wrong password from an unknown account.
func (a *authService) ValidLogin(ctx context.Context, email string, password string) bool {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return false
	}

	foundUser, err := a.userRepository.FindUserBy(ctx, store.ByEmail(email))
	if err != nil {
		log.Debug().Err(err).Str("email", email).Msg("login rejected: user lookup failed")
		return false
	}

	return a.hasher.Verify(foundUser.HashedPassword, password)
}

// CreateSession starts a new session for the user with the given email and
// returns the opaque session token.
//
// A fresh token replaces whatever session the user had; at most one session
// per user is live. The caller is expected to have already validated the
// credentials; this method checks only that the account exists.
//
// ok is false when the account is missing or the session could not be stored.
func (a *authService) CreateSession(ctx context.Context, email string) (string, bool) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserBy(ctx, store.ByEmail(email))
	if err != nil {
		log.Debug().Err(err).Str("email", email).Msg("session not created: user lookup failed")
		return "", false
	}

	sessionID := a.tokens.Generate()
	if err := a.userRepository.UpdateUser(ctx, foundUser.ID, store.UserUpdate{SessionID: store.SetTo(sessionID)}); err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("session not created: session write failed")
		return "", false
	}

	return sessionID, true
}

// GetUserFromSessionID resolves a session token back to the user holding it.
//
// ok is false for an empty token, an unknown token, a token held by more
// than one row, or a storage failure.
func (a *authService) GetUserFromSessionID(ctx context.Context, sessionID string) (models.User, bool) {
	log := logger.FromContext(ctx)

	if sessionID == "" {
		return models.User{}, false
	}

	foundUser, err := a.userRepository.FindUserBy(ctx, store.BySessionID(sessionID))
	if err != nil {
		log.Debug().Err(err).Msg("session lookup failed")
		return models.User{}, false
	}

	return foundUser, true
}

// DestroySession ends any session of the user with the given id by clearing
// the stored session token.
//
// Invalid ids and storage failures are swallowed: logout never fails from
// the caller's point of view.
func (a *authService) DestroySession(ctx context.Context, userID int64) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return
	}

	if err := a.userRepository.UpdateUser(ctx, userID, store.UserUpdate{SessionID: store.Clear()}); err != nil {
		log.Err(err).Int64("id", userID).Msg("session destruction failed")
	}
}

// GetResetPasswordToken issues a single-use password-reset token for the
// account with the given email and stores it on the user record. A new
// request overwrites any earlier outstanding token.
//
// Returns the token or:
//   - ErrResetRequestFailed if no account holds this email.
//   - A wrapped storage error if the token could not be stored.
func (a *authService) GetResetPasswordToken(ctx context.Context, email string) (string, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserBy(ctx, store.ByEmail(email))
	if err != nil {
		log.Warn().Err(err).Str("email", email).Msg("reset token refused: user lookup failed")
		return "", fmt.Errorf("user %s: %w", email, ErrResetRequestFailed)
	}

	resetToken := a.tokens.Generate()
	if err := a.userRepository.UpdateUser(ctx, foundUser.ID, store.UserUpdate{ResetToken: store.SetTo(resetToken)}); err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("reset token write failed")
		return "", fmt.Errorf("reset token write failed: %w", err)
	}

	return resetToken, nil
}

// UpdatePassword sets a new password for the account holding resetToken.
// The new password is hashed and stored, and the reset token is cleared in
// the same update, so a token authorizes exactly one password change.
//
// Returns nil on success or:
//   - ErrInvalidResetToken if the token is empty or identifies no account.
//   - ErrInvalidDataProvided if the new password is empty.
//   - A wrapped error if hashing or the storage write fails.
func (a *authService) UpdatePassword(ctx context.Context, resetToken string, newPassword string) error {
	log := logger.FromContext(ctx)

	if newPassword == "" {
		return ErrInvalidDataProvided
	}
	if resetToken == "" {
		return ErrInvalidResetToken
	}

	foundUser, err := a.userRepository.FindUserBy(ctx, store.ByResetToken(resetToken))
	if err != nil {
		log.Warn().Err(err).Msg("password update refused: reset token lookup failed")
		return ErrInvalidResetToken
	}

	hashedPassword, err := a.hasher.Hash(newPassword)
	if err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	update := store.UserUpdate{
		HashedPassword: hashedPassword,
		ResetToken:     store.Clear(),
	}
	if err := a.userRepository.UpdateUser(ctx, foundUser.ID, update); err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}
