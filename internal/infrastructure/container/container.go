// Package container provides dependency injection using Uber FX.
package container

import (
	"context"

	appcatalog "github.com/platewise/v1/internal/application/catalog"
	"github.com/platewise/v1/internal/infrastructure/cms"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/http/server"
	"github.com/platewise/v1/internal/infrastructure/persistence/memory"
	"github.com/platewise/v1/internal/infrastructure/persistence/redis"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides all dependency injection modules.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	CacheModule,
	RepositoryModule,
	SourceModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration.
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging.
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// CacheModule selects the cache backend from configuration.
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
		if cfg.Cache.UseRedis {
			return redis.NewCacheRepository(cfg, log)
		}
		log.Info("Using in-memory cache")
		return memory.NewCacheRepository(), nil
	},
)

// RepositoryModule provides the catalog snapshot store.
var RepositoryModule = fx.Provide(
	memory.NewCatalogRepository,
)

// SourceModule provides the content API client.
var SourceModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.CatalogSource {
		return cms.NewClient(&cfg.CMS, log)
	},
)

// ServiceModule provides application services.
var ServiceModule = fx.Provide(
	func(
		source outbound.CatalogSource,
		repo outbound.CatalogRepository,
		cache outbound.CacheRepository,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.CatalogService {
		return appcatalog.NewService(source, repo, cache, cfg.Cache.TTL, log)
	},
)

// HTTPModule provides the HTTP server.
var HTTPModule = fx.Provide(
	server.NewServer,
)

// LifecycleModule registers application lifecycle hooks.
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks wires startup and shutdown behavior: an initial
// catalog refresh when configured, the HTTP listener, and graceful teardown.
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	service inbound.CatalogService,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Platewise application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			if cfg.CMS.RefreshOnStart {
				// Startup survives a failed initial fetch; the catalog
				// stays empty until a refresh succeeds.
				if err := service.Refresh(ctx); err != nil {
					log.Warn("Initial catalog refresh failed", zap.Error(err))
				}
			}

			go func() {
				if err := srv.Start(); err != nil {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Platewise application")

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			_ = log.Sync()
			return nil
		},
	})
}
