package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration session token duration (e.g., "2h")
//	-domain-origin public origin of the deployment
//	-signups-allowed allow open registration
//	-password-hints-allowed allow storing password hints
//	-show-password-hint reveal hints in error text when mail is off
//	-email-change-allowed allow the email change flow
//	-mail-enabled enable outbound SMTP delivery
//	-push-enabled enable push relay notifications
//	-auth-request-ttl pending auth request lifetime
//	-purge-interval purge sweep period
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var domainOrigin string
	var signupsAllowed bool
	var hintsAllowed bool
	var showHint bool
	var emailChangeAllowed bool
	var mailEnabled bool
	var pushEnabled bool
	var authRequestTTL time.Duration
	var purgeInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Session token duration (e.g., 2h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	flag.StringVar(&domainOrigin, "domain-origin", "", "Public origin of this deployment")
	flag.BoolVar(&signupsAllowed, "signups-allowed", false, "Allow open registration")
	flag.BoolVar(&hintsAllowed, "password-hints-allowed", false, "Allow storing password hints")
	flag.BoolVar(&showHint, "show-password-hint", false, "Reveal hints in error text when mail is disabled")
	flag.BoolVar(&emailChangeAllowed, "email-change-allowed", false, "Allow the email change flow")
	flag.BoolVar(&mailEnabled, "mail-enabled", false, "Enable outbound SMTP delivery")
	flag.BoolVar(&pushEnabled, "push-enabled", false, "Enable push relay notifications")
	flag.DurationVar(&authRequestTTL, "auth-request-ttl", 0, "Pending auth request lifetime")
	flag.DurationVar(&purgeInterval, "purge-interval", 0, "Auth request purge period")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DomainOrigin:         domainOrigin,
			TokenSignKey:         tokenSignKey,
			TokenIssuer:          tokenIssuer,
			TokenDuration:        tokenDuration,
			SignupsAllowed:       signupsAllowed,
			PasswordHintsAllowed: hintsAllowed,
			ShowPasswordHint:     showHint,
			EmailChangeAllowed:   emailChangeAllowed,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Mail: Mail{
			Enabled: mailEnabled,
		},
		Push: Push{
			Enabled: pushEnabled,
		},
		Workers: Workers{
			AuthRequestTTL: authRequestTTL,
			PurgeInterval:  purgeInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
