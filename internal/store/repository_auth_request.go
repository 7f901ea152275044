package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/ndanilkin/go-vault-server/internal/logger"
	"github.com/ndanilkin/go-vault-server/models"
)

// authRequestRepository is the PostgreSQL-backed implementation of
// [AuthRequestRepository].
type authRequestRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuthRequestRepository constructs an [AuthRequestRepository] backed by
// the provided database connection and logger.
func NewAuthRequestRepository(db *DB, logger *logger.Logger) AuthRequestRepository {
	logger.Debug().Msg("creating auth request repository")
	return &authRequestRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAuthRequest persists a new pending request and returns the stored row.
func (r *authRequestRepository) CreateAuthRequest(ctx context.Context, request models.AuthRequest) (models.AuthRequest, error) {
	log := logger.FromContext(ctx)

	row := r.db.querier(ctx).QueryRowContext(ctx, createAuthRequest,
		request.ID, request.UserID, request.RequestDeviceID, request.RequestDeviceType,
		request.RequestIP, request.AccessCode, request.PublicKey)

	created, err := scanAuthRequest(row)
	if err != nil {
		log.Err(err).Str("func", "*authRequestRepository.CreateAuthRequest").Msg("error creating auth request")
		return models.AuthRequest{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindAuthRequestByID retrieves one request regardless of owner. Used by the
// anonymous poll-by-code path, which authenticates with the access code
// instead of a session.
func (r *authRequestRepository) FindAuthRequestByID(ctx context.Context, id string) (models.AuthRequest, error) {
	return r.findOne(ctx, findAuthRequestByID, id)
}

// FindAuthRequestByIDAndUser retrieves one request owned by userID.
// Returns [ErrNotFound] when the id does not match or belongs to another
// user; the two cases are indistinguishable.
func (r *authRequestRepository) FindAuthRequestByIDAndUser(ctx context.Context, id, userID string) (models.AuthRequest, error) {
	return r.findOne(ctx, findAuthRequestByIDAndUser, id, userID)
}

func (r *authRequestRepository) findOne(ctx context.Context, query string, args ...any) (models.AuthRequest, error) {
	log := logger.FromContext(ctx)

	row := r.db.querier(ctx).QueryRowContext(ctx, query, args...)

	request, err := scanAuthRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AuthRequest{}, ErrNotFound
		}
		log.Err(err).Str("func", "*authRequestRepository.findOne").Msg("error scanning auth request")
		return models.AuthRequest{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return request, nil
}

// FindAuthRequestsByUser lists all requests of a user ordered by creation
// time, pending and approved alike; callers filter.
func (r *authRequestRepository) FindAuthRequestsByUser(ctx context.Context, userID string) ([]models.AuthRequest, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.querier(ctx).QueryContext(ctx, findAuthRequestsByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*authRequestRepository.FindAuthRequestsByUser").Msg("error querying auth requests")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var requests []models.AuthRequest
	for rows.Next() {
		request, err := scanAuthRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		requests = append(requests, request)
	}

	return requests, rows.Err()
}

// SaveAuthRequest writes the response fields of an existing request.
// Creation-time fields are immutable and not part of the UPDATE.
func (r *authRequestRepository) SaveAuthRequest(ctx context.Context, request models.AuthRequest) error {
	log := logger.FromContext(ctx)

	res, err := r.db.querier(ctx).ExecContext(ctx, saveAuthRequest,
		request.ID, request.Approved, request.EncKey, request.MasterPasswordHash,
		nullableString(request.ResponseDeviceID), request.ResponseDate)
	if err != nil {
		log.Err(err).Str("func", "*authRequestRepository.SaveAuthRequest").Msg("error saving auth request")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return requireRowAffected(res)
}

// DeleteAuthRequest removes a request row. Deleting an already-deleted row
// is a no-op, which keeps the purge sweep race-free against denials.
func (r *authRequestRepository) DeleteAuthRequest(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.querier(ctx).ExecContext(ctx, deleteAuthRequest, id); err != nil {
		log.Err(err).Str("func", "*authRequestRepository.DeleteAuthRequest").Msg("error deleting auth request")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteExpiredAuthRequests removes every request still pending whose
// creation time is before cutoff, returning the number of rows removed.
// A request resolved concurrently no longer matches the predicate.
func (r *authRequestRepository) DeleteExpiredAuthRequests(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("auth_requests").
		Where(sq.Eq{"approved": nil}).
		Where(sq.Lt{"created_at": cutoff}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building purge query: %w", err)
	}

	res, err := r.db.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*authRequestRepository.DeleteExpiredAuthRequests").Msg("error purging auth requests")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	purged, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return purged, nil
}

func scanAuthRequest(row rowScanner) (models.AuthRequest, error) {
	var request models.AuthRequest
	var responseDeviceID sql.NullString

	err := row.Scan(&request.ID, &request.UserID, &request.RequestDeviceID,
		&request.RequestDeviceType, &request.RequestIP, &request.AccessCode,
		&request.PublicKey, &request.Approved, &request.EncKey,
		&request.MasterPasswordHash, &responseDeviceID, &request.ResponseDate,
		&request.CreatedAt)
	if err != nil {
		return models.AuthRequest{}, err
	}

	request.ResponseDeviceID = responseDeviceID.String
	return request, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
