package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndanilkin/go-vault-server/internal/logger"
	"github.com/ndanilkin/go-vault-server/models"
)

// deviceRepository is the PostgreSQL-backed implementation of
// [DeviceRepository]. Device rows are upserted keyed on (id, user_id): the
// client chooses its device identifier and re-registers freely.
type deviceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDeviceRepository constructs a [DeviceRepository] backed by the provided
// database connection and logger.
func NewDeviceRepository(db *DB, logger *logger.Logger) DeviceRepository {
	logger.Debug().Msg("creating device repository")
	return &deviceRepository{
		db:     db,
		logger: logger,
	}
}

// FindDeviceByIDAndUser retrieves one device row. Returns [ErrNotFound] when
// the device does not exist or belongs to a different user.
func (r *deviceRepository) FindDeviceByIDAndUser(ctx context.Context, deviceID, userID string) (models.Device, error) {
	log := logger.FromContext(ctx)

	var device models.Device
	row := r.db.querier(ctx).QueryRowContext(ctx, findDeviceByIDAndUser, deviceID, userID)

	err := row.Scan(&device.ID, &device.UserID, &device.Name, &device.Type, &device.PushToken,
		&device.CreatedAt, &device.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Device{}, ErrNotFound
		}
		log.Err(err).Str("func", "*deviceRepository.FindDeviceByIDAndUser").Msg("error scanning device")
		return models.Device{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return device, nil
}

// FindDevicesByUser lists all devices of a user ordered by creation time.
func (r *deviceRepository) FindDevicesByUser(ctx context.Context, userID string) ([]models.Device, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.querier(ctx).QueryContext(ctx, findDevicesByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*deviceRepository.FindDevicesByUser").Msg("error querying devices")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var devices []models.Device
	for rows.Next() {
		var device models.Device
		if err := rows.Scan(&device.ID, &device.UserID, &device.Name, &device.Type,
			&device.PushToken, &device.CreatedAt, &device.UpdatedAt); err != nil {
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		devices = append(devices, device)
	}

	return devices, rows.Err()
}

// SaveDevice inserts or updates a device row.
func (r *deviceRepository) SaveDevice(ctx context.Context, device models.Device) error {
	log := logger.FromContext(ctx)

	_, err := r.db.querier(ctx).ExecContext(ctx, saveDevice,
		device.ID, device.UserID, device.Name, device.Type, device.PushToken)
	if err != nil {
		log.Err(err).Str("func", "*deviceRepository.SaveDevice").Msg("error saving device")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteDevicesByUser removes every device row of the user. Used by the
// manual security-stamp reset, which forces all clients to re-register.
func (r *deviceRepository) DeleteDevicesByUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.querier(ctx).ExecContext(ctx, deleteDevicesByUser, userID); err != nil {
		log.Err(err).Str("func", "*deviceRepository.DeleteDevicesByUser").Msg("error deleting devices")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// ClearPushToken blanks the push registration of a device.
func (r *deviceRepository) ClearPushToken(ctx context.Context, deviceID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.querier(ctx).ExecContext(ctx, clearPushToken, deviceID); err != nil {
		log.Err(err).Str("func", "*deviceRepository.ClearPushToken").Msg("error clearing push token")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
