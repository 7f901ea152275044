package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ndanilkin/go-vault-server/internal/logger"
	"github.com/ndanilkin/go-vault-server/internal/store"
	"github.com/ndanilkin/go-vault-server/models"
)

// Entity family names used in rotation errors, so a client knows exactly
// which set its payload left incomplete.
const (
	familyCiphers         = "ciphers"
	familyFolders         = "folders"
	familyEmergencyAccess = "emergency access grants"
	familyResetPasswords  = "reset password keys"
	familySends           = "sends"
)

// rotationStaleTokenKinds are the capability-token kinds whose cached
// authorization must be rejected after a rotation: they gate endpoints that
// hand out key material tied to the old user key.
var rotationStaleTokenKinds = []string{
	models.TokenKindRotateKeys,
	models.TokenKindPublicKeys,
	models.TokenKindContacts,
}

// rotationService validates and applies full-account key rotations. The
// client re-encrypts everything locally and submits the complete new
// ciphertext set; this service checks consistency and writes — it never
// decrypts anything.
type rotationService struct {
	userRepository  store.UserRepository
	vaultRepository store.VaultRepository
	orgRepository   store.OrgRepository

	mutator PasswordMutator
	tx      TxRunner

	notifier Notifier

	logger *logger.Logger
}

// NewRotationService constructs a RotationService. mutator performs the
// final user write; tx wraps the apply phase in a single transaction.
func NewRotationService(userRepository store.UserRepository, vaultRepository store.VaultRepository,
	orgRepository store.OrgRepository, mutator PasswordMutator, tx TxRunner,
	notifier Notifier, logger *logger.Logger) RotationService {
	return &rotationService{
		userRepository:  userRepository,
		vaultRepository: vaultRepository,
		orgRepository:   orgRepository,
		mutator:         mutator,
		tx:              tx,
		notifier:        notifier,
		logger:          logger,
	}
}

// RotateAccountKeys checks the payload against the account's current state
// and, if every check passes, applies it in one transaction.
//
// Preconditions, all verified before any write:
//  1. The old master password hash matches the stored verifier.
//  2. The declared KDF parameters and email equal the stored ones exactly;
//     rotation must not smuggle a policy or address change.
//  3. The declared public key equals the stored one; the keypair is
//     immutable across rotation, only the private-key ciphertext changes.
//  4. For each entity family, the payload covers every stored item. An
//     omitted item would become permanently undecryptable under the new
//     user key, so any gap rejects the whole payload.
//
// Payload cipher entries owned by an organization are skipped: those rotate
// with the organization key, not the user key. Folder entries with a null id
// are skipped as well; some clients are known to send one.
//
// The completeness check reads a snapshot; an entity created concurrently by
// another session can be missed. That residual race is accepted — rotation
// does not serialize against the rest of the account's write traffic.
func (r *rotationService) RotateAccountKeys(ctx context.Context, userID, deviceID string, payload models.RotationPayload) error {
	log := logger.FromContext(ctx)

	user, err := r.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user lookup failed: %w", err)
	}

	if !r.mutator.VerifyPassword(user, payload.OldMasterPasswordHash) {
		log.Warn().Str("user", user.ID).Msg("rotation with wrong master password")
		return ErrAuthenticationFailed
	}

	unlock := payload.Unlock.MasterPassword
	if !unlock.Kdf.Equal(user.Kdf) {
		return fmt.Errorf("%w: KDF parameters cannot be changed during key rotation", ErrInvalidDataProvided)
	}
	if strings.ToLower(unlock.Email) != user.Email {
		return fmt.Errorf("%w: email cannot be changed during key rotation", ErrInvalidDataProvided)
	}
	if payload.Keys.PublicKey != user.PublicKey {
		return fmt.Errorf("%w: public key cannot be changed during key rotation", ErrInvalidDataProvided)
	}
	if unlock.NewMasterPasswordHash == "" || unlock.NewEncryptedKey == "" {
		return fmt.Errorf("%w: new master password hash and key are required", ErrInvalidDataProvided)
	}

	state, err := r.loadOwnedState(ctx, user.ID)
	if err != nil {
		return err
	}
	if err := r.checkCompleteness(payload, state); err != nil {
		return err
	}

	err = r.tx.WithTx(ctx, func(ctx context.Context) error {
		return r.apply(ctx, &user, payload, state)
	})
	if err != nil {
		return err
	}

	if err := r.notifier.SendLogout(ctx, user, deviceID); err != nil {
		log.Err(err).Str("user", user.ID).Msg("logout broadcast failed")
	}

	log.Info().Str("user", user.ID).Msg("account keys rotated")
	return nil
}

// ownedState is the snapshot of everything the rotation must cover.
type ownedState struct {
	cipherIDs map[string]bool
	folderIDs map[string]bool
	grantIDs  map[string]bool
	resetOrgs map[string]bool
	sendIDs   map[string]bool
}

func (r *rotationService) loadOwnedState(ctx context.Context, userID string) (ownedState, error) {
	state := ownedState{
		cipherIDs: map[string]bool{},
		folderIDs: map[string]bool{},
		grantIDs:  map[string]bool{},
		resetOrgs: map[string]bool{},
		sendIDs:   map[string]bool{},
	}

	ciphers, err := r.vaultRepository.FindCiphersOwnedByUser(ctx, userID)
	if err != nil {
		return ownedState{}, fmt.Errorf("error loading ciphers: %w", err)
	}
	for _, c := range ciphers {
		state.cipherIDs[c.ID] = true
	}

	folders, err := r.vaultRepository.FindFoldersByUser(ctx, userID)
	if err != nil {
		return ownedState{}, fmt.Errorf("error loading folders: %w", err)
	}
	for _, f := range folders {
		state.folderIDs[f.ID] = true
	}

	grants, err := r.orgRepository.FindEmergencyAccessByGrantor(ctx, userID)
	if err != nil {
		return ownedState{}, fmt.Errorf("error loading emergency access grants: %w", err)
	}
	for _, g := range grants {
		// Grants still awaiting acceptance carry no key material and have
		// nothing to rotate.
		if g.KeyEncrypted != "" {
			state.grantIDs[g.ID] = true
		}
	}

	memberships, err := r.orgRepository.FindMembershipsByUser(ctx, userID)
	if err != nil {
		return ownedState{}, fmt.Errorf("error loading memberships: %w", err)
	}
	for _, m := range memberships {
		if m.ResetPasswordKey != "" {
			state.resetOrgs[m.OrganizationID] = true
		}
	}

	sends, err := r.vaultRepository.FindSendsByUser(ctx, userID)
	if err != nil {
		return ownedState{}, fmt.Errorf("error loading sends: %w", err)
	}
	for _, s := range sends {
		state.sendIDs[s.ID] = true
	}

	return state, nil
}

// checkCompleteness requires the payload's identifier set to cover every
// stored identifier, family by family.
func (r *rotationService) checkCompleteness(payload models.RotationPayload, state ownedState) error {
	inPayload := map[string]bool{}
	for _, c := range payload.Data.Ciphers {
		if c.OrganizationID == "" {
			inPayload[c.ID] = true
		}
	}
	if err := requireCovered(state.cipherIDs, inPayload, familyCiphers); err != nil {
		return err
	}

	inPayload = map[string]bool{}
	for _, f := range payload.Data.Folders {
		if f.ID != nil {
			inPayload[*f.ID] = true
		}
	}
	if err := requireCovered(state.folderIDs, inPayload, familyFolders); err != nil {
		return err
	}

	inPayload = map[string]bool{}
	for _, g := range payload.Unlock.EmergencyAccess {
		inPayload[g.ID] = true
	}
	if err := requireCovered(state.grantIDs, inPayload, familyEmergencyAccess); err != nil {
		return err
	}

	inPayload = map[string]bool{}
	for _, rp := range payload.Unlock.ResetPasswords {
		inPayload[rp.OrganizationID] = true
	}
	if err := requireCovered(state.resetOrgs, inPayload, familyResetPasswords); err != nil {
		return err
	}

	inPayload = map[string]bool{}
	for _, s := range payload.Data.Sends {
		inPayload[s.ID] = true
	}
	return requireCovered(state.sendIDs, inPayload, familySends)
}

func requireCovered(owned, payload map[string]bool, family string) error {
	for id := range owned {
		if !payload[id] {
			return fmt.Errorf("%w: all existing %s must be included in the rotation", ErrIncompleteRotation, family)
		}
	}
	return nil
}

// apply writes the new ciphertexts in a fixed order — folders, emergency
// access grants, reset-password keys, sends, ciphers, then the user record
// itself via the password mutator with a stamp regeneration. A payload entry
// naming an entity the user does not own aborts the transaction.
func (r *rotationService) apply(ctx context.Context, user *models.User, payload models.RotationPayload, state ownedState) error {
	for _, f := range payload.Data.Folders {
		if f.ID == nil {
			continue
		}
		if !state.folderIDs[*f.ID] {
			return fmt.Errorf("%w: %s", ErrNotFound, familyFolders)
		}
		folder := models.Folder{ID: *f.ID, UserID: user.ID, Name: f.Name}
		if err := r.vaultRepository.SaveFolderName(ctx, folder); err != nil {
			return rotationSaveError(err, familyFolders)
		}
	}

	for _, g := range payload.Unlock.EmergencyAccess {
		if !state.grantIDs[g.ID] {
			return fmt.Errorf("%w: %s", ErrNotFound, familyEmergencyAccess)
		}
		grant := models.EmergencyAccess{ID: g.ID, GrantorID: user.ID, KeyEncrypted: g.KeyEncrypted}
		if err := r.orgRepository.SaveEmergencyAccessKey(ctx, grant); err != nil {
			return rotationSaveError(err, familyEmergencyAccess)
		}
	}

	for _, rp := range payload.Unlock.ResetPasswords {
		if !state.resetOrgs[rp.OrganizationID] {
			return fmt.Errorf("%w: %s", ErrNotFound, familyResetPasswords)
		}
		membership := models.Membership{
			UserID:           user.ID,
			OrganizationID:   rp.OrganizationID,
			ResetPasswordKey: rp.ResetPasswordKey,
		}
		if err := r.orgRepository.SaveMembershipResetKey(ctx, membership); err != nil {
			return rotationSaveError(err, familyResetPasswords)
		}
	}

	for _, s := range payload.Data.Sends {
		if !state.sendIDs[s.ID] {
			return fmt.Errorf("%w: %s", ErrNotFound, familySends)
		}
		send := models.Send{ID: s.ID, UserID: user.ID, Data: s.Data, Akey: s.Akey}
		if err := r.vaultRepository.SaveSendData(ctx, send); err != nil {
			return rotationSaveError(err, familySends)
		}
	}

	for _, c := range payload.Data.Ciphers {
		if c.OrganizationID != "" {
			continue
		}
		if !state.cipherIDs[c.ID] {
			return fmt.Errorf("%w: %s", ErrNotFound, familyCiphers)
		}
		cipher := models.Cipher{ID: c.ID, UserID: user.ID, Data: c.Data}
		if err := r.vaultRepository.SaveCipherData(ctx, cipher); err != nil {
			return rotationSaveError(err, familyCiphers)
		}
	}

	user.PrivateKey = payload.Keys.EncryptedPrivateKey
	unlock := payload.Unlock.MasterPassword
	return r.mutator.SetPassword(ctx, user, unlock.NewMasterPasswordHash, unlock.NewEncryptedKey, true, rotationStaleTokenKinds)
}

func rotationSaveError(err error, family string) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, family)
	}
	return fmt.Errorf("error rotating %s: %w", family, err)
}
