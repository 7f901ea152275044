package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON decoding, with
// durations accepted as either "2h"-style strings or nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		DomainOrigin         string   `json:"domain_origin"`
		TokenSignKey         string   `json:"token_sign_key"`
		TokenIssuer          string   `json:"token_issuer"`
		TokenDuration        Duration `json:"token_duration"`
		PasswordIterations   int      `json:"password_iterations"`
		SignupsAllowed       bool     `json:"signups_allowed"`
		PasswordHintsAllowed bool     `json:"password_hints_allowed"`
		ShowPasswordHint     bool     `json:"show_password_hint"`
		EmailChangeAllowed   bool     `json:"email_change_allowed"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Mail struct {
		Enabled  bool   `json:"enabled"`
		Host     string `json:"smtp_host"`
		Port     int    `json:"smtp_port"`
		Username string `json:"smtp_username"`
		Password string `json:"smtp_password"`
		From     string `json:"from"`
	} `json:"mail,omitempty"`

	Push struct {
		Enabled         bool     `json:"enabled"`
		RelayURI        string   `json:"relay_uri"`
		InstallationID  string   `json:"installation_id"`
		InstallationKey string   `json:"installation_key"`
		RequestTimeout  Duration `json:"request_timeout"`
	} `json:"push,omitempty"`

	Workers struct {
		AuthRequestTTL Duration `json:"auth_request_ttl"`
		PurgeInterval  Duration `json:"purge_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DomainOrigin:         jsonCfg.App.DomainOrigin,
			TokenSignKey:         jsonCfg.App.TokenSignKey,
			TokenIssuer:          jsonCfg.App.TokenIssuer,
			TokenDuration:        time.Duration(jsonCfg.App.TokenDuration),
			PasswordIterations:   jsonCfg.App.PasswordIterations,
			SignupsAllowed:       jsonCfg.App.SignupsAllowed,
			PasswordHintsAllowed: jsonCfg.App.PasswordHintsAllowed,
			ShowPasswordHint:     jsonCfg.App.ShowPasswordHint,
			EmailChangeAllowed:   jsonCfg.App.EmailChangeAllowed,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Mail: Mail{
			Enabled:  jsonCfg.Mail.Enabled,
			Host:     jsonCfg.Mail.Host,
			Port:     jsonCfg.Mail.Port,
			Username: jsonCfg.Mail.Username,
			Password: jsonCfg.Mail.Password,
			From:     jsonCfg.Mail.From,
		},
		Push: Push{
			Enabled:         jsonCfg.Push.Enabled,
			RelayURI:        jsonCfg.Push.RelayURI,
			InstallationID:  jsonCfg.Push.InstallationID,
			InstallationKey: jsonCfg.Push.InstallationKey,
			RequestTimeout:  time.Duration(jsonCfg.Push.RequestTimeout),
		},
		Workers: Workers{
			AuthRequestTTL: time.Duration(jsonCfg.Workers.AuthRequestTTL),
			PurgeInterval:  time.Duration(jsonCfg.Workers.PurgeInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h" and "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
