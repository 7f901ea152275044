package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/ndanilkin/go-vault-server/internal/config"
	"github.com/ndanilkin/go-vault-server/internal/logger"
	"github.com/ndanilkin/go-vault-server/internal/store"
	"github.com/ndanilkin/go-vault-server/internal/utils"
	"github.com/ndanilkin/go-vault-server/models"
)

const maxNameLength = 50

// hintDelayBase and hintDelayJitter shape the randomized delay injected on
// the nonexistent-account path of the password-hint flow, masking the mail
// round-trip the existing-account path performs.
const (
	hintDelayBase   = 1000 * time.Millisecond
	hintDelayJitter = 100 * time.Millisecond
)

// accountService is the concrete implementation of AccountService. It is the
// single authority over the users table: password hash, encrypted user key
// and security stamp are written nowhere else.
type accountService struct {
	userRepository   store.UserRepository
	deviceRepository store.DeviceRepository
	orgRepository    store.OrgRepository

	notifier Notifier
	mailer   Mailer

	cfg     config.App
	mailCfg config.Mail

	uuid *utils.UUIDGenerator

	logger *logger.Logger
}

// NewAccountService constructs an AccountService wired to the given
// repositories and collaborators.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAccountService(userRepository store.UserRepository, deviceRepository store.DeviceRepository,
	orgRepository store.OrgRepository, notifier Notifier, mailer Mailer,
	cfg config.App, mailCfg config.Mail, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository:   userRepository,
		deviceRepository: deviceRepository,
		orgRepository:    orgRepository,
		notifier:         notifier,
		mailer:           mailer,
		cfg:              cfg,
		mailCfg:          mailCfg,
		uuid:             utils.NewUUIDGenerator(),
		logger:           logger,
	}
}

// Register creates a new account.
//
// Policy gates (signups disabled, email already taken) all collapse into
// ErrRegistrationNotAllowed so a prober cannot tell which one fired. KDF
// parameters are validated before anything is written; a welcome mail is
// sent best-effort.
func (a *accountService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.MasterPasswordHash == "" {
		return models.User{}, fmt.Errorf("%w: email and master password hash are required", ErrInvalidDataProvided)
	}
	if len(req.Name) > maxNameLength {
		return models.User{}, fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidDataProvided, maxNameLength)
	}

	hint, err := a.cleanPasswordHint(req.MasterPasswordHint)
	if err != nil {
		return models.User{}, err
	}

	kdf := models.Kdf{Type: models.DefaultKdfType, Iterations: models.DefaultKdfIterations}
	if req.Kdf != nil {
		if err := ValidateKdf(*req.Kdf); err != nil {
			return models.User{}, err
		}
		kdf = NormalizeKdf(*req.Kdf)
	}

	if !a.cfg.SignupsAllowed {
		log.Warn().Msg("registration attempt while signups are disabled")
		return models.User{}, ErrRegistrationNotAllowed
	}

	salt, err := utils.GenerateSalt()
	if err != nil {
		return models.User{}, fmt.Errorf("error preparing credentials: %w", err)
	}
	hash, err := utils.StretchPassword(req.MasterPasswordHash, salt, a.cfg.PasswordIterations)
	if err != nil {
		return models.User{}, fmt.Errorf("error preparing credentials: %w", err)
	}

	user := models.User{
		ID:                 a.uuid.Generate(),
		Email:              strings.ToLower(req.Email),
		Name:               req.Name,
		PasswordHash:       hash,
		Salt:               salt,
		PasswordIterations: a.cfg.PasswordIterations,
		PasswordHint:       hint,
		EncryptedKey:       req.EncryptedKey,
		PrivateKey:         req.PrivateKey,
		PublicKey:          req.PublicKey,
		Kdf:                kdf,
		SecurityStamp:      a.uuid.Generate(),
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Warn().Msg("registration attempt for taken email")
			return models.User{}, ErrRegistrationNotAllowed
		}
		log.Err(err).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if a.mailCfg.Enabled {
		if err := a.mailer.SendWelcome(ctx, created.Email); err != nil {
			log.Err(err).Msg("welcome mail delivery failed")
		}
		if req.OrganizationUserID != "" {
			a.activateEmailTwoFactor(ctx, created, req.OrganizationUserID)
		}
	}

	return created, nil
}

// activateEmailTwoFactor enables an email second factor for an invited
// registration whose organization enforces the two-factor policy on its
// members. Best effort: the account is already created, so failures are
// logged and never surfaced to the caller.
func (a *accountService) activateEmailTwoFactor(ctx context.Context, user models.User, membershipID string) {
	log := logger.FromContext(ctx)

	required, err := a.orgRepository.IsPolicyEnabledForMember(ctx, membershipID, models.OrgPolicyTwoFactorAuthentication)
	if err != nil {
		log.Err(err).Str("membership", membershipID).Msg("two-factor policy lookup failed")
		return
	}
	if !required {
		return
	}

	token, err := utils.GenerateNumericToken(6)
	if err != nil {
		log.Err(err).Msg("two-factor activation token generation failed")
		return
	}
	if err := a.mailer.SendEmailTwoFactorActivation(ctx, user.Email, token); err != nil {
		log.Err(err).Msg("two-factor activation mail delivery failed")
	}
}

// Prelogin returns the KDF parameters a client must use to derive its master
// key for the given email. Unknown accounts get the defaults, so the reply
// never reveals whether the account exists.
func (a *accountService) Prelogin(ctx context.Context, email string) models.Kdf {
	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return models.Kdf{Type: models.DefaultKdfType, Iterations: models.DefaultKdfIterations}
	}
	return user.Kdf
}

// Login authenticates an account, upserts the calling device and issues a
// session token. Unknown email and wrong password both yield
// ErrAuthenticationFailed.
func (a *accountService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.MasterPasswordHash == "" || req.DeviceID == "" {
		return models.User{}, models.Token{}, fmt.Errorf("%w: email, master password hash and device are required", ErrInvalidDataProvided)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		log.Warn().Msg("login attempt for unknown email")
		return models.User{}, models.Token{}, ErrAuthenticationFailed
	}

	if !a.VerifyPassword(user, req.MasterPasswordHash) {
		log.Warn().Str("user", user.ID).Msg("login attempt with wrong password")
		return models.User{}, models.Token{}, ErrAuthenticationFailed
	}

	device := models.Device{
		ID:     req.DeviceID,
		UserID: user.ID,
		Name:   req.DeviceName,
		Type:   req.DeviceType,
	}
	if err := a.deviceRepository.SaveDevice(ctx, device); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("error registering device: %w", err)
	}

	token, err := a.CreateToken(ctx, user, req.DeviceID, models.TokenKindSession)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// VerifyPassword compares a client-supplied master-password authentication
// hash against the stored verifier in constant time. It never writes.
func (a *accountService) VerifyPassword(user models.User, masterPasswordHash string) bool {
	return utils.VerifyPassword(masterPasswordHash, user.PasswordHash, user.Salt, user.PasswordIterations)
}

// SetPassword is the password/secret mutator: it writes the new verifier,
// the new encrypted user key, and, when regenerateStamp is set, a fresh
// security stamp that invalidates every previously issued session token.
// staleTokenKinds names capability-token kinds whose cached authorization
// must be rejected from now on.
//
// Callers must have verified the current password (or an equivalent factor)
// before calling; this method does not re-verify. Broadcasting the logout is
// also the caller's job, since only the caller knows which device to exclude.
func (a *accountService) SetPassword(ctx context.Context, user *models.User, newHash, newEncryptedKey string, regenerateStamp bool, staleTokenKinds []string) error {
	salt, err := utils.GenerateSalt()
	if err != nil {
		return fmt.Errorf("error preparing credentials: %w", err)
	}
	hash, err := utils.StretchPassword(newHash, salt, a.cfg.PasswordIterations)
	if err != nil {
		return fmt.Errorf("error preparing credentials: %w", err)
	}

	user.PasswordHash = hash
	user.Salt = salt
	user.PasswordIterations = a.cfg.PasswordIterations
	if newEncryptedKey != "" {
		user.EncryptedKey = newEncryptedKey
	}
	if regenerateStamp {
		user.SecurityStamp = a.uuid.Generate()
	}
	user.StaleTokenKinds = staleTokenKinds

	if err := a.userRepository.SaveUser(ctx, *user); err != nil {
		return fmt.Errorf("error saving user: %w", err)
	}

	return nil
}

// ChangePassword verifies the current password, runs the mutator with a
// stamp regeneration, and logs every other device out. The initiating device
// keeps its session: its client immediately re-authenticates with the new
// credentials and must not be cut off mid-flow.
func (a *accountService) ChangePassword(ctx context.Context, userID, deviceID string, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if req.NewMasterPasswordHash == "" || req.NewEncryptedKey == "" {
		return fmt.Errorf("%w: new password hash and key are required", ErrInvalidDataProvided)
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user lookup failed: %w", err)
	}
	if !a.VerifyPassword(user, req.MasterPasswordHash) {
		log.Warn().Str("user", user.ID).Msg("password change with wrong current password")
		return ErrAuthenticationFailed
	}

	hint, err := a.cleanPasswordHint(req.MasterPasswordHint)
	if err != nil {
		return err
	}
	user.PasswordHint = hint

	if err := a.SetPassword(ctx, &user, req.NewMasterPasswordHash, req.NewEncryptedKey, true, nil); err != nil {
		return err
	}

	if err := a.notifier.SendLogout(ctx, user, deviceID); err != nil {
		log.Err(err).Str("user", user.ID).Msg("logout broadcast failed")
	}

	return nil
}

// ChangeKdf switches the stored KDF parameters. The master key depends on
// them, so the flow is a password change with a parameter write in front.
func (a *accountService) ChangeKdf(ctx context.Context, userID, deviceID string, req models.ChangeKdfRequest) error {
	log := logger.FromContext(ctx)

	if err := ValidateKdf(req.Kdf); err != nil {
		return err
	}
	if req.NewMasterPasswordHash == "" || req.NewEncryptedKey == "" {
		return fmt.Errorf("%w: new password hash and key are required", ErrInvalidDataProvided)
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user lookup failed: %w", err)
	}
	if !a.VerifyPassword(user, req.MasterPasswordHash) {
		log.Warn().Str("user", user.ID).Msg("kdf change with wrong current password")
		return ErrAuthenticationFailed
	}

	user.Kdf = NormalizeKdf(req.Kdf)

	if err := a.SetPassword(ctx, &user, req.NewMasterPasswordHash, req.NewEncryptedKey, true, nil); err != nil {
		return err
	}

	if err := a.notifier.SendLogout(ctx, user, deviceID); err != nil {
		log.Err(err).Str("user", user.ID).Msg("logout broadcast failed")
	}

	return nil
}

// SetSecurityStamp is the manual "log out everywhere" operation: it issues a
// fresh stamp, forgets every registered device and broadcasts a logout with
// no exclusions.
func (a *accountService) SetSecurityStamp(ctx context.Context, userID, masterPasswordHash string) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user lookup failed: %w", err)
	}
	if !a.VerifyPassword(user, masterPasswordHash) {
		return ErrAuthenticationFailed
	}

	user.SecurityStamp = a.uuid.Generate()
	user.StaleTokenKinds = nil
	if err := a.userRepository.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("error saving user: %w", err)
	}

	if err := a.deviceRepository.DeleteDevicesByUser(ctx, user.ID); err != nil {
		log.Err(err).Str("user", user.ID).Msg("device cleanup failed")
	}
	if err := a.notifier.SendLogout(ctx, user, ""); err != nil {
		log.Err(err).Str("user", user.ID).Msg("logout broadcast failed")
	}

	return nil
}

// SetKeyPair stores the account keypair for accounts registered without one.
func (a *accountService) SetKeyPair(ctx context.Context, userID string, req models.KeyPairRequest) error {
	if req.EncryptedPrivateKey == "" || req.PublicKey == "" {
		return fmt.Errorf("%w: both keys are required", ErrInvalidDataProvided)
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user lookup failed: %w", err)
	}

	user.PrivateKey = req.EncryptedPrivateKey
	user.PublicKey = req.PublicKey

	if err := a.userRepository.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("error saving user: %w", err)
	}
	return nil
}

// BeginEmailChange stores the pending address and mails a confirmation token
// to it. Requires working mail: without the token round-trip the new address
// would never be proven reachable.
func (a *accountService) BeginEmailChange(ctx context.Context, userID string, req models.EmailChangeBeginRequest) error {
	log := logger.FromContext(ctx)

	if !a.cfg.EmailChangeAllowed || !a.mailCfg.Enabled {
		return ErrEmailChangeNotAllowed
	}
	if req.NewEmail == "" {
		return fmt.Errorf("%w: new email is required", ErrInvalidDataProvided)
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user lookup failed: %w", err)
	}
	if !a.VerifyPassword(user, req.MasterPasswordHash) {
		return ErrAuthenticationFailed
	}

	newEmail := strings.ToLower(req.NewEmail)
	if _, err := a.userRepository.FindUserByEmail(ctx, newEmail); err == nil {
		return fmt.Errorf("%w: email is not available", ErrInvalidDataProvided)
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("user lookup failed: %w", err)
	}

	token, err := utils.GenerateNumericToken(6)
	if err != nil {
		return fmt.Errorf("error generating email token: %w", err)
	}

	now := time.Now()
	user.EmailNew = newEmail
	user.EmailNewToken = token
	user.LastVerifyingAt = &now
	if err := a.userRepository.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("error saving user: %w", err)
	}

	if err := a.mailer.SendChangeEmail(ctx, newEmail, token); err != nil {
		log.Err(err).Str("user", user.ID).Msg("email change token delivery failed")
	}

	return nil
}

// ConfirmEmailChange verifies the password, the pending address and the
// mailed token, swaps the email and re-keys the account like a password
// change (the master key is salted with the email client-side).
func (a *accountService) ConfirmEmailChange(ctx context.Context, userID, deviceID string, req models.EmailChangeConfirmRequest) error {
	log := logger.FromContext(ctx)

	if !a.cfg.EmailChangeAllowed {
		return ErrEmailChangeNotAllowed
	}
	if req.NewEmail == "" || req.Token == "" || req.NewMasterPasswordHash == "" || req.NewEncryptedKey == "" {
		return fmt.Errorf("%w: incomplete email change confirmation", ErrInvalidDataProvided)
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user lookup failed: %w", err)
	}
	if !a.VerifyPassword(user, req.MasterPasswordHash) {
		return ErrAuthenticationFailed
	}

	if user.EmailNew == "" || user.EmailNew != strings.ToLower(req.NewEmail) {
		return fmt.Errorf("%w: no matching email change pending", ErrInvalidDataProvided)
	}
	if !utils.SecureCompare(user.EmailNewToken, req.Token) {
		return fmt.Errorf("%w: token does not match", ErrInvalidDataProvided)
	}

	user.Email = user.EmailNew
	user.EmailNew = ""
	user.EmailNewToken = ""

	if err := a.SetPassword(ctx, &user, req.NewMasterPasswordHash, req.NewEncryptedKey, true, nil); err != nil {
		return err
	}

	if err := a.notifier.SendLogout(ctx, user, deviceID); err != nil {
		log.Err(err).Str("user", user.ID).Msg("logout broadcast failed")
	}

	return nil
}

// GetAPIKey returns the account's machine credential, generating one on
// first request.
func (a *accountService) GetAPIKey(ctx context.Context, userID, masterPasswordHash string) (string, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("user lookup failed: %w", err)
	}
	if !a.VerifyPassword(user, masterPasswordHash) {
		return "", ErrAuthenticationFailed
	}

	if user.APIKey == "" {
		key, err := utils.GenerateAPIKey()
		if err != nil {
			return "", fmt.Errorf("error generating api key: %w", err)
		}
		user.APIKey = key
		if err := a.userRepository.SaveUser(ctx, user); err != nil {
			return "", fmt.Errorf("error saving user: %w", err)
		}
	}

	return user.APIKey, nil
}

// RotateAPIKey replaces the machine credential unconditionally.
func (a *accountService) RotateAPIKey(ctx context.Context, userID, masterPasswordHash string) (string, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("user lookup failed: %w", err)
	}
	if !a.VerifyPassword(user, masterPasswordHash) {
		return "", ErrAuthenticationFailed
	}

	key, err := utils.GenerateAPIKey()
	if err != nil {
		return "", fmt.Errorf("error generating api key: %w", err)
	}
	user.APIKey = key
	if err := a.userRepository.SaveUser(ctx, user); err != nil {
		return "", fmt.Errorf("error saving user: %w", err)
	}

	return key, nil
}

// DeleteAccount removes the account after password verification; owned
// entities cascade at the store level.
func (a *accountService) DeleteAccount(ctx context.Context, userID, masterPasswordHash string) error {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user lookup failed: %w", err)
	}
	if !a.VerifyPassword(user, masterPasswordHash) {
		return ErrAuthenticationFailed
	}

	if err := a.userRepository.DeleteUser(ctx, user.ID); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}

// RequestDeleteAccount mails a single-purpose deletion token to the given
// address. It always reports success: a failure reply would reveal whether
// the address has an account.
func (a *accountService) RequestDeleteAccount(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if !a.mailCfg.Enabled {
		return nil
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return nil
	}

	token, err := a.CreateToken(ctx, user, "", models.TokenKindDeleteAccount)
	if err != nil {
		log.Err(err).Str("user", user.ID).Msg("delete token creation failed")
		return nil
	}
	if err := a.mailer.SendDeleteAccount(ctx, user.Email, token.SignedString); err != nil {
		log.Err(err).Str("user", user.ID).Msg("delete token delivery failed")
	}

	return nil
}

// DeleteAccountWithToken removes the account named by a mailed deletion
// token.
func (a *accountService) DeleteAccountWithToken(ctx context.Context, tokenString string) error {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return err
	}
	if token.Claims.Kind != models.TokenKindDeleteAccount {
		return ErrTokenIsExpiredOrInvalid
	}

	if err := a.userRepository.DeleteUser(ctx, token.UserID()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}

// RequestPasswordHint mails the stored hint to the account address.
//
// When mail is enabled, the nonexistent-address path sleeps a randomized
// interval so its timing matches the existing-address path's mail call, and
// both return success with no content. When mail is disabled the flow is
// refused outright unless the administrator opted into revealing hints in
// error text.
func (a *accountService) RequestPasswordHint(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if !a.mailCfg.Enabled && !a.cfg.ShowPasswordHint {
		return ErrPasswordHintsDisabled
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if a.mailCfg.Enabled {
			a.sleepHintDelay(ctx)
			return nil
		}
		return ErrNoPasswordHint
	}

	if a.mailCfg.Enabled {
		if err := a.mailer.SendPasswordHint(ctx, user.Email, user.PasswordHint); err != nil {
			log.Err(err).Str("user", user.ID).Msg("password hint delivery failed")
		}
		return nil
	}

	if user.PasswordHint == "" {
		return ErrNoPasswordHint
	}
	return fmt.Errorf("%w: %s", ErrShowPasswordHint, user.PasswordHint)
}

// CreateToken issues a signed JWT of the given kind for the user, embedding
// the current security stamp.
func (a *accountService) CreateToken(ctx context.Context, user models.User, deviceID, kind string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.cfg.TokenIssuer, user.ID, deviceID, user.SecurityStamp,
		kind, a.cfg.TokenDuration, a.cfg.TokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// is normalised to ErrTokenIsExpiredOrInvalid so callers do not inspect
// low-level JWT errors.
func (a *accountService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.cfg.TokenSignKey, a.cfg.TokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	return token, nil
}

// AuthenticateToken resolves a raw JWT of the expected kind to its account.
//
// Beyond signature and expiry, the token's embedded security stamp must
// match the stamp currently stored for the user, so a password change or a
// manual stamp reset invalidates every token issued before it. Capability
// tokens are additionally checked against the account's stale-kind list;
// session tokens rely on the stamp alone. Every failure collapses to
// ErrTokenIsExpiredOrInvalid.
func (a *accountService) AuthenticateToken(ctx context.Context, tokenString, wantKind string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, models.Token{}, err
	}
	if token.Claims.Kind != wantKind {
		return models.User{}, models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID())
	if err != nil {
		return models.User{}, models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if token.Claims.SecurityStamp != user.SecurityStamp {
		log.Warn().Str("user", user.ID).Msg("token with stale security stamp")
		return models.User{}, models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if wantKind != models.TokenKindSession {
		for _, kind := range user.StaleTokenKinds {
			if kind == wantKind {
				log.Warn().Str("user", user.ID).Str("kind", wantKind).Msg("stale capability token rejected")
				return models.User{}, models.Token{}, ErrTokenIsExpiredOrInvalid
			}
		}
	}

	return user, token, nil
}

// cleanPasswordHint trims the hint and enforces the hints-allowed policy.
// A blank hint always means "no hint".
func (a *accountService) cleanPasswordHint(hint string) (string, error) {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return "", nil
	}
	if !a.cfg.PasswordHintsAllowed {
		return "", fmt.Errorf("%w: password hints are not allowed on this server", ErrInvalidDataProvided)
	}
	return hint, nil
}

func (a *accountService) sleepHintDelay(ctx context.Context) {
	jitter := time.Duration(rand.Int63n(int64(2*hintDelayJitter))) - hintDelayJitter
	select {
	case <-time.After(hintDelayBase + jitter):
	case <-ctx.Done():
	}
}
