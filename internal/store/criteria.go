package store

import "database/sql"

// UserCriteria is an exact-match filter over the searchable user fields.
// A nil field does not participate in the match; all set fields must match
// the same row.
type UserCriteria struct {
	ID         *int64
	Email      *string
	SessionID  *string
	ResetToken *string
}

// ByID matches a user by primary key.
func ByID(id int64) UserCriteria {
	return UserCriteria{ID: &id}
}

// ByEmail matches a user by email.
func ByEmail(email string) UserCriteria {
	return UserCriteria{Email: &email}
}

// BySessionID matches a user by session id.
func BySessionID(sessionID string) UserCriteria {
	return UserCriteria{SessionID: &sessionID}
}

// ByResetToken matches a user by password-reset token.
func ByResetToken(resetToken string) UserCriteria {
	return UserCriteria{ResetToken: &resetToken}
}

func (c UserCriteria) empty() bool {
	return c.ID == nil && c.Email == nil && c.SessionID == nil && c.ResetToken == nil
}

// UserUpdate enumerates the mutable user fields. A nil field is left
// untouched. SessionID and ResetToken distinguish "set to a value"
// (Valid == true) from "set to NULL" (Valid == false), which is how
// sessions and reset tokens are invalidated.
type UserUpdate struct {
	HashedPassword []byte
	SessionID      *sql.NullString
	ResetToken     *sql.NullString
}

// SetTo wraps s as an update value that assigns the column to s.
func SetTo(s string) *sql.NullString {
	return &sql.NullString{String: s, Valid: true}
}

// Clear returns an update value that assigns the column to NULL.
func Clear() *sql.NullString {
	return &sql.NullString{}
}

func (u UserUpdate) empty() bool {
	return u.HashedPassword == nil && u.SessionID == nil && u.ResetToken == nil
}
