package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or inconsistent.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidMailConfigs indicates mail delivery was enabled without the
	// SMTP host or sender address.
	ErrInvalidMailConfigs = errors.New("invalid mail configuration")
	// ErrInvalidPushConfigs indicates push was enabled without a relay URI.
	ErrInvalidPushConfigs = errors.New("invalid push configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a zero purge interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
