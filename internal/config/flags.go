package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-u user service base URL
//	-r redis address in format [host]:[port]
//	-c/-config json file path with configs
//	-log-level minimal log level
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-adapter-timeout user service request timeout
//	-adapter-retries user service retry count
//	-token-sign-key service token signing key
//	-user-ttl user cache TTL
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var userServiceAddress string
	var redisAddress string
	var jsonConfigPath string
	var logLevel string
	var requestTimeout time.Duration
	var shutdownTimeout time.Duration
	var adapterTimeout time.Duration
	var adapterRetries int
	var tokenSignKey string
	var userTTL time.Duration

	fs := flag.NewFlagSet("order-service", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&userServiceAddress, "u", "", "User service base URL")
	fs.StringVar(&redisAddress, "r", "", "Redis address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "User service request timeout")
	fs.IntVar(&adapterRetries, "adapter-retries", 0, "User service retry count")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Service token signing key")
	fs.DurationVar(&userTTL, "user-ttl", 0, "User cache TTL (e.g., 5m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Cache: Cache{
				RedisAddress: redisAddress,
				UserTTL:      userTTL,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Adapter: Adapter{
			UserServiceAddress: userServiceAddress,
			RequestTimeout:     adapterTimeout,
			RetryCount:         adapterRetries,
			TokenSignKey:       tokenSignKey,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the default server address.
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
