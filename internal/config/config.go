package config

import (
	"os"
	"strconv"
	"time"
)

// Defaults mirror the development setup. Every value can be overridden via
// environment; a missing or malformed override silently falls back.
const (
	DefaultBackendBase  = "http://localhost:8000"
	DefaultRelayBase    = "http://127.0.0.1:9000"
	DefaultTenantNumber = "+16148193454"
	DefaultListenAddr   = ":9000"
	DefaultPollInterval = 2 * time.Second
	DefaultSendTimeout  = 15 * time.Second
)

type Config struct {
	// BackendBase is the base URL of the durable messaging backend.
	BackendBase string
	// RelayBase is the base URL of the relay hub.
	RelayBase string
	// TenantNumber is the default operator-side recipient of outgoing sends.
	TenantNumber string
	// ListenAddr is the relay hub's listen address.
	ListenAddr string
	// PollInterval is the console's relay poll period.
	PollInterval time.Duration
	// SendTimeout bounds one outbound send call.
	SendTimeout time.Duration
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		BackendBase:  getString("API_BASE", DefaultBackendBase),
		RelayBase:    getString("REALTIME_HUB", DefaultRelayBase),
		TenantNumber: getString("TENANT_NUMBER", DefaultTenantNumber),
		ListenAddr:   getString("LISTEN_ADDR", DefaultListenAddr),
		PollInterval: getDuration("POLL_INTERVAL_MS", time.Millisecond, DefaultPollInterval),
		SendTimeout:  getDuration("SEND_TIMEOUT_SEC", time.Second, DefaultSendTimeout),
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, unit, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return time.Duration(n) * unit
}
