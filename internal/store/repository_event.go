package store

import (
	"context"
	"fmt"

	"github.com/ndanilkin/go-vault-server/internal/logger"
	"github.com/ndanilkin/go-vault-server/models"
)

// eventRepository appends rows to the security_events audit table.
type eventRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEventRepository constructs an [EventRepository] backed by the provided
// database connection and logger.
func NewEventRepository(db *DB, logger *logger.Logger) EventRepository {
	logger.Debug().Msg("creating event repository")
	return &eventRepository{
		db:     db,
		logger: logger,
	}
}

func (r *eventRepository) LogUserEvent(ctx context.Context, eventType int, userID string, deviceType models.DeviceType, ip string) error {
	log := logger.FromContext(ctx)

	_, err := r.db.querier(ctx).ExecContext(ctx, logUserEvent, eventType, userID, deviceType, ip)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.LogUserEvent").Msg("error inserting event")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
