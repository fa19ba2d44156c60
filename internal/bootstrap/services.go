package bootstrap

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/kwakyosong/platform-ui/config"
	"github.com/kwakyosong/platform-ui/internal/adapters/memstore"
	redisadapter "github.com/kwakyosong/platform-ui/internal/adapters/redis"
	"github.com/kwakyosong/platform-ui/internal/core"
	"github.com/kwakyosong/platform-ui/internal/devseed"
	"github.com/kwakyosong/platform-ui/internal/service"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Contents  *service.ContentService
	Posts     *service.CommunityService
	Careers   *service.CareerService
	Accounts  *service.AccountService
	Dashboard *service.DashboardService
	Auth      *service.AuthService
	Cache     core.CacheRepository
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices constructs the service container. Catalog data comes from the
// seeded in-memory repositories; the cache and session store ride Redis when
// a client is configured.
func NewServices(deps *ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	contents := memstore.NewContentRepo(devseed.Contents())
	posts := memstore.NewPostRepo(devseed.Posts())
	careers := memstore.NewCareerRepo(devseed.CareerPaths())
	accounts := memstore.NewAccountRepo(devseed.Accounts())

	var cache core.CacheRepository
	if deps.RedisClient != nil {
		cache = redisadapter.NewCacheRepo(deps.RedisClient)
	} else {
		cache = memstore.NewCache()
	}

	return ServiceContainer{
		Contents: service.NewContentService(service.ContentServiceOptions{
			Repo:      contents,
			Evaluator: service.NewExprEvaluator(),
		}),
		Posts:    service.NewCommunityService(posts),
		Careers:  service.NewCareerService(careers),
		Accounts: service.NewAccountService(accounts),
		Dashboard: service.NewDashboardService(service.DashboardServiceOptions{
			Contents: contents,
			Posts:    posts,
			Accounts: accounts,
			Cache:    cache,
			Logger:   logger,
			StatsTTL: deps.Config.Cache.StatsTTL,
		}),
		Auth: BuildAuthService(AuthConfig{
			Auth:        deps.Config.Auth,
			Session:     deps.Config.Session,
			RedisClient: deps.RedisClient,
			Logger:      logger,
		}),
		Cache: cache,
	}
}

// ConnectRedis creates a Redis client when the configuration calls for one.
// Returns nil when everything runs in process memory.
func ConnectRedis(cfg *config.AppConfig, logger *slog.Logger) redis.UniversalClient {
	if cfg.Session.Backend != config.SessionBackendRedis {
		return nil
	}
	client := redisadapter.NewClient(redisadapter.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if logger != nil {
		logger.Info("redis client configured", "addr", cfg.Redis.Addr)
	}
	return client
}

// RunConfig groups dependencies for the serve-until-signal loop.
type RunConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// RunWithShutdown starts the HTTP server and blocks until the context is
// cancelled or a termination signal arrives, then shuts down gracefully.
func RunWithShutdown(ctx context.Context, cfg *RunConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := StartHTTPServer(&HTTPServerConfig{
		Config:   cfg.Config,
		Services: cfg.Services,
		Logger:   logger,
	})

	g, gctx := errgroup.WithContext(signalCtx)
	g.Go(func() error {
		<-gctx.Done()
		return ShutdownHTTPServer(ShutdownConfig{
			Context: context.WithoutCancel(gctx),
			Server:  server,
			Logger:  logger,
		})
	})

	return g.Wait()
}
