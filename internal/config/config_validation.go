package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the server depends on at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Mail.Enabled && (cfg.Mail.Host == "" || cfg.Mail.From == "") {
		return ErrInvalidMailConfigs
	}

	if cfg.Push.Enabled && cfg.Push.RelayURI == "" {
		return ErrInvalidPushConfigs
	}

	if cfg.Workers.AuthRequestTTL <= 0 || cfg.Workers.PurgeInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
