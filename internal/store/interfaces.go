package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/Dzrekey001/user-auth-service/models"
)

// UserRepository is the persistence contract for user records.
//
// Implementations do not enforce email uniqueness at the schema level;
// [ErrEmailAlreadyExists] is still returned when the backing schema happens
// to carry a unique constraint, but callers must not rely on it and the
// service layer performs its own existence check before inserting.
type UserRepository interface {
	// CreateUser inserts a new user with the given email and password hash
	// and returns the stored record with its assigned id.
	CreateUser(ctx context.Context, email string, hashedPassword []byte) (models.User, error)

	// FindUserBy returns the single user matching all set fields of criteria.
	// It returns ErrInvalidCriteria when no field is set, ErrUserNotFound
	// when nothing matches and ErrAmbiguousCriteria when more than one row
	// matches.
	FindUserBy(ctx context.Context, criteria UserCriteria) (models.User, error)

	// UpdateUser applies the set fields of update to the user with the given
	// id. It returns ErrInvalidUserID for a non-positive id,
	// ErrNoFieldsToUpdate when update names no fields and ErrUserNotFound
	// when no row has that id.
	UpdateUser(ctx context.Context, userID int64, update UserUpdate) error
}
