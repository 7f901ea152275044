package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ndanilkin/go-vault-server/internal/logger"
	"github.com/ndanilkin/go-vault-server/models"
)

// orgRepository is the PostgreSQL-backed implementation of [OrgRepository].
type orgRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOrgRepository constructs an [OrgRepository] backed by the provided
// database connection and logger.
func NewOrgRepository(db *DB, logger *logger.Logger) OrgRepository {
	logger.Debug().Msg("creating org repository")
	return &orgRepository{
		db:     db,
		logger: logger,
	}
}

// FindEmergencyAccessByGrantor lists every grant the user has issued,
// accepted or not.
func (r *orgRepository) FindEmergencyAccessByGrantor(ctx context.Context, grantorID string) ([]models.EmergencyAccess, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.querier(ctx).QueryContext(ctx, findEmergencyAccessByGrantor, grantorID)
	if err != nil {
		log.Err(err).Str("func", "*orgRepository.FindEmergencyAccessByGrantor").Msg("error querying grants")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var grants []models.EmergencyAccess
	for rows.Next() {
		var grant models.EmergencyAccess
		var granteeID sql.NullString
		if err := rows.Scan(&grant.ID, &grant.GrantorID, &granteeID, &grant.GranteeEmail,
			&grant.KeyEncrypted, &grant.Status, &grant.CreatedAt, &grant.UpdatedAt); err != nil {
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		grant.GranteeID = granteeID.String
		grants = append(grants, grant)
	}

	return grants, rows.Err()
}

// SaveEmergencyAccessKey rewrites the wrapped key of a grant. Returns
// [ErrNotFound] when the grant does not exist or has a different grantor.
func (r *orgRepository) SaveEmergencyAccessKey(ctx context.Context, grant models.EmergencyAccess) error {
	log := logger.FromContext(ctx)

	res, err := r.db.querier(ctx).ExecContext(ctx, saveEmergencyAccessKey,
		grant.ID, grant.GrantorID, grant.KeyEncrypted)
	if err != nil {
		log.Err(err).Str("func", "*orgRepository.SaveEmergencyAccessKey").Msg("error saving grant key")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return requireRowAffected(res)
}

// FindMembershipsByUser lists the user's organization memberships.
func (r *orgRepository) FindMembershipsByUser(ctx context.Context, userID string) ([]models.Membership, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.querier(ctx).QueryContext(ctx, findMembershipsByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*orgRepository.FindMembershipsByUser").Msg("error querying memberships")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var memberships []models.Membership
	for rows.Next() {
		var membership models.Membership
		if err := rows.Scan(&membership.ID, &membership.UserID, &membership.OrganizationID,
			&membership.ResetPasswordKey, &membership.Status, &membership.CreatedAt); err != nil {
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		memberships = append(memberships, membership)
	}

	return memberships, rows.Err()
}

// SaveMembershipResetKey rewrites the reset-password key of the membership
// identified by (organization, user).
func (r *orgRepository) SaveMembershipResetKey(ctx context.Context, membership models.Membership) error {
	log := logger.FromContext(ctx)

	res, err := r.db.querier(ctx).ExecContext(ctx, saveMembershipResetKey,
		membership.OrganizationID, membership.UserID, membership.ResetPasswordKey)
	if err != nil {
		log.Err(err).Str("func", "*orgRepository.SaveMembershipResetKey").Msg("error saving reset key")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return requireRowAffected(res)
}

// IsPolicyEnabledForMember answers the single policy question the account
// core asks: is the given policy kind enabled for this membership.
func (r *orgRepository) IsPolicyEnabledForMember(ctx context.Context, membershipID string, policy models.OrgPolicyType) (bool, error) {
	log := logger.FromContext(ctx)

	var enabled bool
	row := r.db.querier(ctx).QueryRowContext(ctx, isPolicyEnabledForMember, membershipID, policy)
	if err := row.Scan(&enabled); err != nil {
		log.Err(err).Str("func", "*orgRepository.IsPolicyEnabledForMember").Msg("error querying policy")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return enabled, nil
}
