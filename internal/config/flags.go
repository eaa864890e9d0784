package config

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
)

// NetAddress is a listen address given as [host]:port. It implements
// flag.Value. The host is empty, "localhost" or an IP literal.
type NetAddress struct {
	Host string
	Port int
}

// String returns host:port, bracketing IPv6 hosts. An unset address is "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNetAddress, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q is not in 1..65535", ErrInvalidNetAddress, rawPort)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: host %q is not an IP address", ErrInvalidNetAddress, host)
	}

	a.Host, a.Port = host, port
	return nil
}

// parseFlags reads the command line of the server.
//
//	-a                 HTTP listen address [host]:port
//	-grpc-address      gRPC health listen address [host]:port
//	-d                 database DSN (postgres URL or SQLite file)
//	-c, -config        JSON config file
//	-token-sign-key    key verifying bearer tokens
//	-token-issuer      expected token issuer
//	-app-version       protocol version reported by GET /api/version
//	-request-timeout   per request deadline, e.g. 30s
//	-mqtt-broker       change-event broker, e.g. tcp://localhost:1883
//	-mqtt-topic-prefix first topic segment of change events
//	-permissions-file  YAML file overriding the role tables
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		cfg                      StructuredConfig
		httpAddress, grpcAddress NetAddress
	)

	fs := flag.NewFlagSet("sphere-sync", flag.ContinueOnError)
	fs.Var(&httpAddress, "a", "HTTP listen address [host]:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC health listen address [host]:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&cfg.App.Version, "app-version", "", "Sync protocol version")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Events.MQTT.Broker, "mqtt-broker", "", "MQTT broker URL (e.g., tcp://localhost:1883)")
	fs.StringVar(&cfg.Events.MQTT.TopicPrefix, "mqtt-topic-prefix", "", "First topic segment of change events")
	fs.StringVar(&cfg.Sync.PermissionsFile, "permissions-file", "", "YAML file with role table overrides")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()

	return &cfg, nil
}

// commandLineArgs is swapped in tests.
var commandLineArgs = func() []string { return os.Args[1:] }
