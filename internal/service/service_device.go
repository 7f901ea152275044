package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndanilkin/go-vault-server/internal/logger"
	"github.com/ndanilkin/go-vault-server/internal/store"
	"github.com/ndanilkin/go-vault-server/models"
)

// deviceService manages the device registry of an account.
type deviceService struct {
	deviceRepository store.DeviceRepository
	userRepository   store.UserRepository

	notifier Notifier

	logger *logger.Logger
}

// NewDeviceService constructs a DeviceService.
func NewDeviceService(deviceRepository store.DeviceRepository, userRepository store.UserRepository,
	notifier Notifier, logger *logger.Logger) DeviceService {
	return &deviceService{
		deviceRepository: deviceRepository,
		userRepository:   userRepository,
		notifier:         notifier,
		logger:           logger,
	}
}

func (s *deviceService) ListDevices(ctx context.Context, userID string) ([]models.Device, error) {
	devices, err := s.deviceRepository.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("device lookup failed: %w", err)
	}
	return devices, nil
}

func (s *deviceService) GetDevice(ctx context.Context, userID, deviceID string) (models.Device, error) {
	device, err := s.deviceRepository.FindDeviceByIDAndUser(ctx, deviceID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Device{}, ErrNotFound
		}
		return models.Device{}, fmt.Errorf("device lookup failed: %w", err)
	}
	return device, nil
}

// IsKnownDevice reports whether the device has authenticated for this email
// before. Both the unknown-email and unknown-device cases answer false; the
// probe does not reveal which.
func (s *deviceService) IsKnownDevice(ctx context.Context, email, deviceID string) (bool, error) {
	if email == "" || deviceID == "" {
		return false, nil
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return false, nil
		}
		return false, fmt.Errorf("user lookup failed: %w", err)
	}

	_, err = s.deviceRepository.FindDeviceByIDAndUser(ctx, deviceID, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("device lookup failed: %w", err)
	}
	return true, nil
}

// RegisterPushToken stores the platform push registration for a device and
// registers it with the relay best-effort.
func (s *deviceService) RegisterPushToken(ctx context.Context, userID, deviceID, pushToken string) error {
	log := logger.FromContext(ctx)

	device, err := s.deviceRepository.FindDeviceByIDAndUser(ctx, deviceID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("device lookup failed: %w", err)
	}

	device.PushToken = pushToken
	if err := s.deviceRepository.SaveDevice(ctx, device); err != nil {
		return fmt.Errorf("error saving device: %w", err)
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user lookup failed: %w", err)
	}
	if err := s.notifier.RegisterPushDevice(ctx, user, device); err != nil {
		log.Err(err).Str("device", device.ID).Msg("push relay registration failed")
	}

	return nil
}

// ClearPushToken removes the push registration locally and at the relay.
func (s *deviceService) ClearPushToken(ctx context.Context, deviceID string) error {
	log := logger.FromContext(ctx)

	if err := s.deviceRepository.ClearPushToken(ctx, deviceID); err != nil {
		return fmt.Errorf("error clearing push token: %w", err)
	}
	if err := s.notifier.UnregisterPushDevice(ctx, deviceID); err != nil {
		log.Err(err).Str("device", deviceID).Msg("push relay unregistration failed")
	}
	return nil
}
