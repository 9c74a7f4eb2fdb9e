package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/Dzrekey001/user-auth-service/models"
)

var userColumns = []string{"id", "email", "hashed_password", "session_id", "reset_token"}

// insertUserQuery builds the INSERT for a new user. A RETURNING clause yields
// the full row so the caller receives the server-assigned id. Both supported
// backends understand RETURNING.
func (db *DB) insertUserQuery(email string, hashedPassword []byte) sq.InsertBuilder {
	return db.builder.
		Insert(models.User{}.TableName()).
		Columns("email", "hashed_password").
		Values(email, hashedPassword).
		Suffix("RETURNING id, email, hashed_password, session_id, reset_token")
}

// selectUserQuery builds the SELECT for the given criteria. The query is
// capped at two rows: one row is the expected outcome, a second row is enough
// to prove the criteria ambiguous.
func (db *DB) selectUserQuery(criteria UserCriteria) (sq.SelectBuilder, error) {
	if criteria.empty() {
		return sq.SelectBuilder{}, ErrInvalidCriteria
	}

	where := sq.Eq{}
	if criteria.ID != nil {
		where["id"] = *criteria.ID
	}
	if criteria.Email != nil {
		where["email"] = *criteria.Email
	}
	if criteria.SessionID != nil {
		where["session_id"] = *criteria.SessionID
	}
	if criteria.ResetToken != nil {
		where["reset_token"] = *criteria.ResetToken
	}

	return db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(2), nil
}

// updateUserQuery builds the UPDATE for the set fields of update.
func (db *DB) updateUserQuery(userID int64, update UserUpdate) (sq.UpdateBuilder, error) {
	if userID <= 0 {
		return sq.UpdateBuilder{}, ErrInvalidUserID
	}
	if update.empty() {
		return sq.UpdateBuilder{}, ErrNoFieldsToUpdate
	}

	query := db.builder.Update(models.User{}.TableName())
	if update.HashedPassword != nil {
		query = query.Set("hashed_password", update.HashedPassword)
	}
	if update.SessionID != nil {
		query = query.Set("session_id", *update.SessionID)
	}
	if update.ResetToken != nil {
		query = query.Set("reset_token", *update.ResetToken)
	}

	return query.Where(sq.Eq{"id": userID}), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one users row. The session_id and reset_token columns are
// nullable; NULL becomes the empty string on the model.
func scanUser(row rowScanner) (models.User, error) {
	var (
		user       models.User
		sessionID  sql.NullString
		resetToken sql.NullString
	)

	if err := row.Scan(&user.ID, &user.Email, &user.HashedPassword, &sessionID, &resetToken); err != nil {
		return models.User{}, err
	}

	user.SessionID = sessionID.String
	user.ResetToken = resetToken.String

	return user, nil
}
