package config

import (
	"fmt"
	"strings"
	"time"
)

// SessionBackend selects where live sessions are kept.
type SessionBackend string

const (
	// SessionBackendMemory keeps sessions in process memory. Fine for a
	// single instance and the default for local development.
	SessionBackendMemory SessionBackend = "memory"
	// SessionBackendRedis keeps sessions in Redis so multiple instances
	// share them.
	SessionBackendRedis SessionBackend = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionBackend.
func (s *SessionBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "memory", "redis":
		*s = SessionBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionBackend: %q (valid options: memory, redis)", v)
	}
}

// SessionConfig contains session store configuration.
type SessionConfig struct {
	// Backend selects the session store implementation.
	Backend SessionBackend `env:"SESSION_BACKEND" envDefault:"memory"`

	// TTL bounds how long a session stays valid after login.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"8h"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.TTL <= 0 {
		s.TTL = 8 * time.Hour
	}
}

// RedisConfig contains Redis connection configuration, shared by the redis
// session backend and the cache.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

// CacheConfig contains cache configuration.
type CacheConfig struct {
	// StatsTTL is the TTL for cached dashboard statistics.
	StatsTTL time.Duration `env:"CACHE_STATS_TTL" envDefault:"1m"`
}
