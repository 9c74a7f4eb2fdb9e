package store

import "errors"

// Sentinel errors returned by [UserRepository] implementations. The service
// layer matches on them with errors.Is to decide, per operation, whether a
// failure is swallowed or surfaced.
var (
	// ErrUserNotFound indicates that a lookup matched no record, or that an
	// update targeted a nonexistent user id.
	ErrUserNotFound = errors.New("no user was found")

	// ErrEmailAlreadyExists indicates that an insert collided with an
	// existing record on the email column.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrAmbiguousCriteria indicates that a lookup matched more than one
	// record. Searches are expected to identify a single user.
	ErrAmbiguousCriteria = errors.New("criteria match more than one user")

	// ErrInvalidCriteria indicates a malformed search request, such as an
	// empty criteria set.
	ErrInvalidCriteria = errors.New("invalid search criteria")

	// ErrInvalidUserID indicates an update addressed with a non-positive
	// user id.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrNoFieldsToUpdate indicates an update request that names no fields.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
