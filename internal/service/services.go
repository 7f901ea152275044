package service

import (
	"github.com/ndanilkin/go-vault-server/internal/config"
	"github.com/ndanilkin/go-vault-server/internal/logger"
	"github.com/ndanilkin/go-vault-server/internal/store"
)

type Services struct {
	AccountService     AccountService
	RotationService    RotationService
	AuthRequestService AuthRequestService
	DeviceService      DeviceService
}

func NewServices(storages store.Storages, db *store.DB, notifier Notifier, mailer Mailer,
	cfg config.StructuredConfig, logger *logger.Logger) *Services {
	accounts := NewAccountService(storages.UserRepository, storages.DeviceRepository,
		storages.OrgRepository, notifier, mailer, cfg.App, cfg.Mail, logger)

	return &Services{
		AccountService: accounts,
		RotationService: NewRotationService(storages.UserRepository, storages.VaultRepository,
			storages.OrgRepository, accounts, db, notifier, logger),
		AuthRequestService: NewAuthRequestService(storages.AuthRequestRepository,
			storages.DeviceRepository, storages.UserRepository, storages.EventRepository,
			notifier, cfg.Workers, logger),
		DeviceService: NewDeviceService(storages.DeviceRepository, storages.UserRepository,
			notifier, logger),
	}
}
