package bootstrap

import (
	"log/slog"

	"github.com/kwakyosong/platform-ui/config"
	"github.com/kwakyosong/platform-ui/internal/adapters/authroles"
	"github.com/kwakyosong/platform-ui/internal/adapters/memstore"
	"github.com/kwakyosong/platform-ui/internal/adapters/mockauth"
	"github.com/kwakyosong/platform-ui/internal/adapters/oidc"
	redisadapter "github.com/kwakyosong/platform-ui/internal/adapters/redis"
	"github.com/kwakyosong/platform-ui/internal/ports"
	"github.com/kwakyosong/platform-ui/internal/service"
	"github.com/redis/go-redis/v9"
)

// AuthConfig contains configuration for auth service construction.
type AuthConfig struct {
	Auth        config.AuthConfig
	Session     config.SessionConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildAuthService creates an auth service based on the configured auth mode.
// Returns nil when the configuration cannot produce a working provider.
func BuildAuthService(cfg AuthConfig) *service.AuthService {
	sessionStore := buildSessionStore(cfg)

	roleMapper := authroles.StaticRoleMapper{
		SuperAdminGroup:   cfg.Auth.SuperAdminGroup,
		CompanyAdminGroup: cfg.Auth.CompanyAdminGroup,
	}

	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		return service.NewAuthService(service.AuthServiceOptions{
			Provider:        mockauth.NewProvider(mockauth.Config{SessionDuration: cfg.Session.TTL}),
			Sessions:        sessionStore,
			Roles:           roleMapper,
			SessionDuration: cfg.Session.TTL,
		})

	case config.AuthModeOAuth:
		return buildOAuthService(cfg, sessionStore, roleMapper)

	default:
		return nil
	}
}

// buildSessionStore selects the session backend. Redis keeps sessions shared
// across instances; memory is the single-instance default.
func buildSessionStore(cfg AuthConfig) ports.SessionStore {
	if cfg.Session.Backend == config.SessionBackendRedis && cfg.RedisClient != nil {
		return redisadapter.NewSessionStoreWithPrefix(cfg.RedisClient, "session:")
	}
	if cfg.Session.Backend == config.SessionBackendRedis && cfg.Logger != nil {
		cfg.Logger.Warn("redis session backend configured without a redis client, using memory store")
	}
	return memstore.NewSessionStore()
}

func buildOAuthService(
	cfg AuthConfig,
	sessionStore ports.SessionStore,
	roleMapper authroles.StaticRoleMapper,
) *service.AuthService {
	prov, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     cfg.Auth.OAuth.ClientID,
		ClientSecret: cfg.Auth.OAuth.ClientSecret,
		RedirectURL:  cfg.Auth.OAuth.RedirectURL,
		Scope:        cfg.Auth.OAuth.Scope,
		DiscoveryURL: cfg.Auth.OAuth.DiscoveryURL,
	})
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create OIDC provider, auth disabled", "error", err)
		}
		return nil
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider:        prov,
		Sessions:        sessionStore,
		Roles:           roleMapper,
		SessionDuration: cfg.Session.TTL,
	})
}
