package store

import (
	"context"

	"github.com/ndanilkin/go-vault-server/internal/config"
	"github.com/ndanilkin/go-vault-server/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// connection, plus the connection itself for transaction control.
type Storages struct {
	DB *DB

	UserRepository        UserRepository
	DeviceRepository      DeviceRepository
	AuthRequestRepository AuthRequestRepository
	VaultRepository       VaultRepository
	OrgRepository         OrgRepository
	EventRepository       EventRepository
}

// NewStorages connects to PostgreSQL, applies migrations, and wires all
// repositories to the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		DB:                    db,
		UserRepository:        NewUserRepository(db, log),
		DeviceRepository:      NewDeviceRepository(db, log),
		AuthRequestRepository: NewAuthRequestRepository(db, log),
		VaultRepository:       NewVaultRepository(db, log),
		OrgRepository:         NewOrgRepository(db, log),
		EventRepository:       NewEventRepository(db, log),
	}, nil
}
