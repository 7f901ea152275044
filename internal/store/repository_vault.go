package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ndanilkin/go-vault-server/internal/logger"
	"github.com/ndanilkin/go-vault-server/models"
)

// vaultRepository is the PostgreSQL-backed implementation of
// [VaultRepository]. It serves the key rotation coordinator, so its write
// surface is deliberately narrow: only ciphertext columns are mutable here.
type vaultRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVaultRepository constructs a [VaultRepository] backed by the provided
// database connection and logger.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		db:     db,
		logger: logger,
	}
}

// FindCiphersOwnedByUser lists the user's personally owned vault items.
// Organization-owned items are excluded; they rotate with the organization
// key, not the user key.
func (r *vaultRepository) FindCiphersOwnedByUser(ctx context.Context, userID string) ([]models.Cipher, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.querier(ctx).QueryContext(ctx, findCiphersOwnedByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.FindCiphersOwnedByUser").Msg("error querying ciphers")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var ciphers []models.Cipher
	for rows.Next() {
		var cipher models.Cipher
		var orgID sql.NullString
		if err := rows.Scan(&cipher.ID, &cipher.UserID, &orgID, &cipher.Type, &cipher.Data,
			&cipher.CreatedAt, &cipher.UpdatedAt); err != nil {
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		cipher.OrganizationID = orgID.String
		ciphers = append(ciphers, cipher)
	}

	return ciphers, rows.Err()
}

// FindFoldersByUser lists the user's folders.
func (r *vaultRepository) FindFoldersByUser(ctx context.Context, userID string) ([]models.Folder, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.querier(ctx).QueryContext(ctx, findFoldersByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.FindFoldersByUser").Msg("error querying folders")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var folders []models.Folder
	for rows.Next() {
		var folder models.Folder
		if err := rows.Scan(&folder.ID, &folder.UserID, &folder.Name,
			&folder.CreatedAt, &folder.UpdatedAt); err != nil {
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		folders = append(folders, folder)
	}

	return folders, rows.Err()
}

// FindSendsByUser lists the user's sends.
func (r *vaultRepository) FindSendsByUser(ctx context.Context, userID string) ([]models.Send, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.querier(ctx).QueryContext(ctx, findSendsByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.FindSendsByUser").Msg("error querying sends")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var sends []models.Send
	for rows.Next() {
		var send models.Send
		if err := rows.Scan(&send.ID, &send.UserID, &send.Data, &send.Akey,
			&send.CreatedAt, &send.ExpiresAt, &send.DeletionAt); err != nil {
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		sends = append(sends, send)
	}

	return sends, rows.Err()
}

// SaveCipherData rewrites the ciphertext of an owned item. Returns
// [ErrNotFound] when the item does not exist or is owned by another user.
func (r *vaultRepository) SaveCipherData(ctx context.Context, cipher models.Cipher) error {
	return r.save(ctx, saveCipherData, cipher.ID, cipher.UserID, cipher.Data)
}

// SaveFolderName rewrites the encrypted folder name.
func (r *vaultRepository) SaveFolderName(ctx context.Context, folder models.Folder) error {
	return r.save(ctx, saveFolderName, folder.ID, folder.UserID, folder.Name)
}

// SaveSendData rewrites the send payload and its wrapped key.
func (r *vaultRepository) SaveSendData(ctx context.Context, send models.Send) error {
	return r.save(ctx, saveSendData, send.ID, send.UserID, send.Data, send.Akey)
}

func (r *vaultRepository) save(ctx context.Context, query string, args ...any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.save").Msg("error saving vault entity")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return requireRowAffected(res)
}
