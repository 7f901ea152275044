package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ndanilkin/go-vault-server/internal/config"
	"github.com/ndanilkin/go-vault-server/internal/logger"
	"github.com/ndanilkin/go-vault-server/internal/store"
	"github.com/ndanilkin/go-vault-server/internal/utils"
	"github.com/ndanilkin/go-vault-server/models"
)

// authRequestService runs the passwordless device-approval state machine:
// Pending → Approved (record kept) or denied (record deleted). A denied
// request is indistinguishable from one that never existed.
type authRequestService struct {
	authRequestRepository store.AuthRequestRepository
	deviceRepository      store.DeviceRepository
	userRepository        store.UserRepository
	eventRepository       store.EventRepository

	notifier Notifier

	ttl time.Duration

	logger *logger.Logger
}

// NewAuthRequestService constructs an AuthRequestService. cfg supplies the
// pending-request TTL enforced by the purge sweep.
func NewAuthRequestService(authRequestRepository store.AuthRequestRepository,
	deviceRepository store.DeviceRepository, userRepository store.UserRepository,
	eventRepository store.EventRepository, notifier Notifier,
	cfg config.Workers, logger *logger.Logger) AuthRequestService {
	return &authRequestService{
		authRequestRepository: authRequestRepository,
		deviceRepository:      deviceRepository,
		userRepository:        userRepository,
		eventRepository:       eventRepository,
		notifier:              notifier,
		ttl:                   cfg.AuthRequestTTL,
		logger:                logger,
	}
}

// CreateAuthRequest opens a pending request. The target user must exist, the
// presented device identifier must belong to that user, and its registered
// type must match the type the server observed on this call, so a stolen
// device id alone is not enough to forge a request from a different kind of
// client. All three failures yield the same generic error.
func (s *authRequestService) CreateAuthRequest(ctx context.Context, req models.AuthRequestCreate, info models.ClientInfo) (models.AuthRequest, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.DeviceID == "" || req.AccessCode == "" || req.PublicKey == "" {
		return models.AuthRequest{}, fmt.Errorf("%w: incomplete auth request", ErrInvalidDataProvided)
	}

	user, err := s.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		log.Warn().Msg("auth request for unknown email")
		return models.AuthRequest{}, ErrNotFound
	}

	device, err := s.deviceRepository.FindDeviceByIDAndUser(ctx, req.DeviceID, user.ID)
	if err != nil {
		log.Warn().Str("user", user.ID).Msg("auth request for unknown device")
		return models.AuthRequest{}, ErrNotFound
	}
	if device.Type != info.DeviceType {
		log.Warn().Str("user", user.ID).Str("device", device.ID).Msg("auth request device type mismatch")
		return models.AuthRequest{}, ErrNotFound
	}

	request := models.AuthRequest{
		ID:                utils.NewUUIDGenerator().Generate(),
		UserID:            user.ID,
		RequestDeviceID:   req.DeviceID,
		RequestDeviceType: info.DeviceType,
		RequestIP:         info.IP,
		AccessCode:        req.AccessCode,
		PublicKey:         req.PublicKey,
	}

	created, err := s.authRequestRepository.CreateAuthRequest(ctx, request)
	if err != nil {
		return models.AuthRequest{}, fmt.Errorf("error creating auth request: %w", err)
	}

	if err := s.notifier.SendAuthRequestCreated(ctx, user, created); err != nil {
		log.Err(err).Str("request", created.ID).Msg("auth request notification failed")
	}
	s.logEvent(ctx, models.EventUserRequestedDeviceApproval, user.ID, info)

	return created, nil
}

// RespondAuthRequest resolves a pending request exactly once. Approval keeps
// the record and fills the response fields; denial deletes it. A second
// response of either kind fails with ErrStateConflict.
func (s *authRequestService) RespondAuthRequest(ctx context.Context, requestID, userID, respondingDeviceID string, resp models.AuthRequestResponse, info models.ClientInfo) (models.AuthRequest, error) {
	log := logger.FromContext(ctx)

	if respondingDeviceID == "" || resp.DeviceID != respondingDeviceID {
		log.Warn().Str("request", requestID).Msg("auth response device mismatch")
		return models.AuthRequest{}, ErrNotFound
	}

	request, err := s.authRequestRepository.FindAuthRequestByIDAndUser(ctx, requestID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.AuthRequest{}, ErrNotFound
		}
		return models.AuthRequest{}, fmt.Errorf("auth request lookup failed: %w", err)
	}
	if !request.Pending() {
		return models.AuthRequest{}, ErrStateConflict
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.AuthRequest{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if !resp.Approved {
		if err := s.authRequestRepository.DeleteAuthRequest(ctx, request.ID); err != nil {
			return models.AuthRequest{}, fmt.Errorf("error deleting auth request: %w", err)
		}
		s.logEvent(ctx, models.EventUserRejectedAuthRequest, userID, info)
		return models.AuthRequest{}, nil
	}

	approved := true
	now := time.Now()
	request.Approved = &approved
	request.EncKey = resp.EncKey
	request.MasterPasswordHash = resp.MasterPasswordHash
	request.ResponseDeviceID = respondingDeviceID
	request.ResponseDate = &now

	if err := s.authRequestRepository.SaveAuthRequest(ctx, request); err != nil {
		return models.AuthRequest{}, fmt.Errorf("error saving auth request: %w", err)
	}

	// The requesting device polls anonymously by request id; the user's
	// other logged-in devices get the authenticated event.
	if err := s.notifier.SendAnonymousAuthResponse(ctx, request); err != nil {
		log.Err(err).Str("request", request.ID).Msg("anonymous auth response notification failed")
	}
	if err := s.notifier.SendAuthResponse(ctx, user, request); err != nil {
		log.Err(err).Str("request", request.ID).Msg("auth response notification failed")
	}
	s.logEvent(ctx, models.EventUserApprovedAuthRequest, userID, info)

	return request, nil
}

// GetAuthRequest returns one request owned by the authenticated user.
func (s *authRequestService) GetAuthRequest(ctx context.Context, requestID, userID string) (models.AuthRequest, error) {
	request, err := s.authRequestRepository.FindAuthRequestByIDAndUser(ctx, requestID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.AuthRequest{}, ErrNotFound
		}
		return models.AuthRequest{}, fmt.Errorf("auth request lookup failed: %w", err)
	}
	return request, nil
}

// GetAuthRequestByCode serves the unauthenticated requester polling its own
// request. The caller must present the original access code from the same
// device type and source IP recorded at creation; the code comparison is
// constant-time. Every mismatch — wrong code, wrong device type, wrong IP,
// unknown id — yields the same ErrNotFound.
func (s *authRequestService) GetAuthRequestByCode(ctx context.Context, requestID, accessCode string, info models.ClientInfo) (models.AuthRequest, error) {
	log := logger.FromContext(ctx)

	request, err := s.authRequestRepository.FindAuthRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.AuthRequest{}, ErrNotFound
		}
		return models.AuthRequest{}, fmt.Errorf("auth request lookup failed: %w", err)
	}

	codeOK := utils.SecureCompare(accessCode, request.AccessCode)
	if request.RequestDeviceType != info.DeviceType || request.RequestIP != info.IP || !codeOK {
		log.Warn().Str("request", request.ID).Msg("auth request poll mismatch")
		return models.AuthRequest{}, ErrNotFound
	}

	return request, nil
}

// ListPendingAuthRequests returns the user's unresolved requests ordered by
// creation time.
func (s *authRequestService) ListPendingAuthRequests(ctx context.Context, userID string) ([]models.AuthRequest, error) {
	requests, err := s.authRequestRepository.FindAuthRequestsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth request lookup failed: %w", err)
	}

	pending := make([]models.AuthRequest, 0, len(requests))
	for _, request := range requests {
		if request.Pending() {
			pending = append(pending, request)
		}
	}
	return pending, nil
}

// PurgeExpiredAuthRequests deletes pending requests older than the TTL and
// returns how many went. Safe to run concurrently with any transition: a
// request resolved mid-sweep no longer matches the predicate, and deleting
// an already-deleted row is a no-op.
func (s *authRequestService) PurgeExpiredAuthRequests(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-s.ttl)

	purged, err := s.authRequestRepository.DeleteExpiredAuthRequests(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("error purging auth requests: %w", err)
	}
	if purged > 0 {
		s.logger.Info().Int64("purged", purged).Msg("expired auth requests removed")
	}
	return purged, nil
}

func (s *authRequestService) logEvent(ctx context.Context, eventType int, userID string, info models.ClientInfo) {
	if err := s.eventRepository.LogUserEvent(ctx, eventType, userID, info.DeviceType, info.IP); err != nil {
		logger.FromContext(ctx).Err(err).Int("event", eventType).Msg("security event logging failed")
	}
}
