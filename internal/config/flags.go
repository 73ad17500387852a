package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port flag value.
type NetAddress struct {
	Host string
	Port int
}

func commandLineArgs() []string {
	return os.Args[1:]
}

// parseFlags parses the server flags from args.
//
// Flags:
//
//	-a              HTTP address host:port
//	-grpc-address   gRPC health address host:port
//	-d              database DSN (selects the SQL backend)
//	-driver         database driver override (pgx, sqlite3)
//	-l              local store directory
//	-c/-config      JSON config file path
//	-token-sign-key token signing key
//	-token-issuer   token issuer name
//	-token-duration token lifetime (e.g. "24h")
//	-hash-key       request signing key
//	-tz             IANA time zone of "today"
//	-stale-time     cache freshness window
//	-gc-time        cache retention window
//	-request-timeout request timeout (e.g. "30s")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("diary-server", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	cfg := &StructuredConfig{}

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc health address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&cfg.Storage.Local.Dir, "l", "", "Local store directory")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "Request signing key")
	fs.StringVar(&cfg.App.TimeZone, "tz", "", "IANA time zone")
	fs.DurationVar(&cfg.Cache.StaleTime, "stale-time", 0, "Cache freshness window")
	fs.DurationVar(&cfg.Cache.GCTime, "gc-time", 0, "Cache retention window")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()

	return cfg, nil
}

// String returns host:port, or "" when the address was never set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be an IP address, "localhost" or empty
// (all interfaces).
func (a *NetAddress) Set(s string) error {
	host, portString, ok := strings.Cut(s, ":")
	if !ok || strings.Contains(portString, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

var _ flag.Value = (*NetAddress)(nil)

// durationOrZero is used by the JSON layer for optional durations.
func durationOrZero(d *Duration) time.Duration {
	if d == nil {
		return 0
	}
	return time.Duration(*d)
}
