package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"

	"github.com/ndanilkin/go-vault-server/internal/logger"
	"github.com/ndanilkin/go-vault-server/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, mutation and deletion against the
// "users" table.
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

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned timestamps.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.querier(ctx).QueryRowContext(ctx, createUser,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Salt, user.PasswordIterations,
		user.PasswordHint, user.EncryptedKey, user.PrivateKey, user.PublicKey,
		user.Kdf.Type, user.Kdf.Iterations, user.Kdf.Memory, user.Kdf.Parallelism,
		user.SecurityStamp, user.VerifiedAt)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByID retrieves an account by its UUID. Returns [ErrNoUserWasFound]
// when no row matches.
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, findUserByID, id)
}

// FindUserByEmail retrieves an account by its (lowercased) email address.
// Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, findUserByEmail, strings.ToLower(email))
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.querier(ctx).QueryRowContext(ctx, query, arg)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error scanning user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// SaveUser overwrites every mutable column of the account row. The caller
// holds the canonical in-memory state; updated_at is refreshed server-side.
func (r *userRepository) SaveUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	res, err := r.db.querier(ctx).ExecContext(ctx, saveUser,
		user.ID, user.Email, user.Name, user.EmailNew, user.EmailNewToken, user.PasswordHash,
		user.Salt, user.PasswordIterations, user.PasswordHint, user.EncryptedKey, user.PrivateKey,
		user.PublicKey, user.Kdf.Type, user.Kdf.Iterations, user.Kdf.Memory, user.Kdf.Parallelism,
		user.SecurityStamp, joinKinds(user.StaleTokenKinds), user.APIKey,
		user.VerifiedAt, user.LastVerifyingAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SaveUser").Msg("error saving user")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return requireRowAffected(res)
}

// DeleteUser removes the account row; owned entities go with it via the
// schema's ON DELETE CASCADE.
func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.querier(ctx).ExecContext(ctx, deleteUser, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return requireRowAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var kinds string

	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.EmailNew, &user.EmailNewToken,
		&user.PasswordHash, &user.Salt, &user.PasswordIterations, &user.PasswordHint,
		&user.EncryptedKey, &user.PrivateKey, &user.PublicKey, &user.Kdf.Type,
		&user.Kdf.Iterations, &user.Kdf.Memory, &user.Kdf.Parallelism, &user.SecurityStamp,
		&kinds, &user.APIKey, &user.VerifiedAt, &user.LastVerifyingAt,
		&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return models.User{}, err
	}

	user.StaleTokenKinds = splitKinds(kinds)
	return user, nil
}

func joinKinds(kinds []string) string {
	return strings.Join(kinds, ",")
}

func splitKinds(kinds string) []string {
	if kinds == "" {
		return nil
	}
	return strings.Split(kinds, ",")
}

func requireRowAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
