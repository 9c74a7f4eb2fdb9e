package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/Dzrekey001/user-auth-service/internal/logger"
	"github.com/Dzrekey001/user-auth-service/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation, criteria lookup, and field updates
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with its server-assigned ID.
//
// Email uniqueness is NOT guaranteed here: the schema carries no unique
// constraint on email, and the existence check belongs to the caller. When
// the backend does report a unique violation the error still maps to
// [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, email string, hashedPassword []byte) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.insertUserQuery(email, hashedPassword).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building query")
		return models.User{}, fmt.Errorf("error building sql query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, r.unexpected(err)
		}
	}

	// scan saved user from db
	user, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}

// FindUserBy retrieves the single user record matching all set fields of
// criteria.
//
// The lookup is capped at two rows: a second match is reported as
// [ErrAmbiguousCriteria] rather than silently returning an arbitrary row.
func (r *userRepository) FindUserBy(ctx context.Context, criteria UserCriteria) (models.User, error) {
	log := logger.FromContext(ctx)

	queryBuilder, err := r.db.selectUserQuery(criteria)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserBy").Msg("error: invalid criteria")
		return models.User{}, err
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserBy").Msg("error: building query")
		return models.User{}, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserBy").Msg("error: executing query")
		return models.User{}, r.unexpected(err)
	}
	defer rows.Close()

	var (
		found models.User
		count int
	)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.FindUserBy").Msg("error: scanning error")
			return models.User{}, err
		}

		found = user
		count++
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserBy").Msg("error: iterating rows")
		return models.User{}, r.unexpected(err)
	}

	switch count {
	case 0:
		return models.User{}, ErrUserNotFound
	case 1:
		return found, nil
	default:
		log.Warn().Str("func", "*userRepository.FindUserBy").Msg("criteria matched more than one user")
		return models.User{}, ErrAmbiguousCriteria
	}
}

// UpdateUser applies the set fields of update to the user with the given id.
// Updating a nonexistent user yields [ErrUserNotFound] (zero rows affected).
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, update UserUpdate) error {
	log := logger.FromContext(ctx)

	queryBuilder, err := r.db.updateUserQuery(userID, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: invalid update request")
		return err
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: building query")
		return fmt.Errorf("error building sql query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: executing statement")
		return r.unexpected(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: reading affected rows")
		return r.unexpected(err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// unexpected wraps a driver-level error, annotating retryable failures so
// operators can tell transient connection losses from real faults.
func (r *userRepository) unexpected(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}

	if r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("retryable DB error: %w", err)
	}

	return fmt.Errorf("unexpected DB error: %w", err)
}
