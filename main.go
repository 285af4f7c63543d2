package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"

	"github.com/dcode-github/listing_storefront/cache"
	"github.com/dcode-github/listing_storefront/catalog"
	"github.com/dcode-github/listing_storefront/config"
	"github.com/dcode-github/listing_storefront/constants"
	"github.com/dcode-github/listing_storefront/controllers"
	"github.com/dcode-github/listing_storefront/middleware"
	"github.com/dcode-github/listing_storefront/models"
	"github.com/dcode-github/listing_storefront/repository"
	"github.com/dcode-github/listing_storefront/routes"
	"github.com/dcode-github/listing_storefront/utils"
	"github.com/dcode-github/listing_storefront/views"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("storefront stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	logger, closeLogger := setupLogger(cfg)
	defer closeLogger()
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cleanups []func()
	defer func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}()

	seed, err := catalog.NewStaticSource(constants.SampleListings)
	if err != nil {
		return fmt.Errorf("load sample listings: %w", err)
	}

	var (
		src   catalog.Source = seed
		users repository.UserRepository
	)

	if cfg.MongoURI != "" {
		client, err := config.ConnectDB(ctx, cfg.MongoURI)
		if err != nil {
			return err
		}
		cleanups = append(cleanups, func() { config.CloseDBConnection(context.Background(), client) })
		db := client.Database(cfg.MongoDB)
		users = repository.NewMongoUserRepository(db)

		if cfg.CatalogBackend == config.BackendMongo {
			if cfg.SeedCatalog {
				if err := seedCatalog(ctx, "mongo", seed, func(ctx context.Context, props []models.Property) (int, error) {
					return catalog.SeedMongo(ctx, db, props)
				}); err != nil {
					return err
				}
			}
			src = catalog.NewMongoSource(db)
		}
	} else {
		slog.Warn("MONGOURI not set, accounts are kept in memory")
		users = repository.NewMemoryUserRepository()
	}

	switch cfg.CatalogBackend {
	case config.BackendFile:
		src = catalog.NewFileSource(cfg.CatalogFile)
	case config.BackendPostgres:
		pool, err := config.ConnectPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return err
		}
		cleanups = append(cleanups, pool.Close)
		if cfg.SeedCatalog {
			if err := seedCatalog(ctx, "postgres", seed, func(ctx context.Context, props []models.Property) (int, error) {
				return catalog.SeedPostgres(ctx, pool, props)
			}); err != nil {
				return err
			}
		}
		src = catalog.NewPostgresSource(pool)
	}
	slog.Info("catalog backend selected", "backend", cfg.CatalogBackend)

	var store cache.Store
	if cfg.RedisAddr != "" {
		redisClient, err := config.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPass)
		if err != nil {
			return err
		}
		cleanups = append(cleanups, func() { _ = redisClient.Close() })
		store = cache.NewRedisStore(redisClient)
	} else {
		store = cache.NewMemoryStore()
	}
	if cfg.SeedCatalog {
		controllers.InvalidatePropertyCache(ctx, store)
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		return err
	}

	router := mux.NewRouter()
	routes.Routes(router, routes.Deps{
		AppName:  cfg.AppName,
		Catalog:  src,
		Cache:    store,
		CacheTTL: cfg.CacheTTL,
		Users:    users,
		Tokens:   utils.NewJWTManager(cfg.JWTKey, cfg.AppName),
		Views:    renderer,
	})

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Content-Type", "Authorization", middleware.TraceHeader},
		ExposedHeaders:   []string{middleware.TraceHeader, controllers.CacheHeader},
		AllowCredentials: true,
	})
	handler := middleware.Chain(corsOptions.Handler(router), middleware.Logging(logger), middleware.Recover)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server running", "port", cfg.Port, "app", cfg.AppName)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error during server shutdown: %w", err)
		}
		slog.Info("server gracefully stopped")
		return nil
	})
	return g.Wait()
}

func setupLogger(cfg config.Config) (*slog.Logger, func()) {
	level := utils.ParseLogLevel(cfg.LogLevel)
	logCfg := utils.LogConfig{Writer: os.Stdout, Level: level, Format: cfg.LogFormat}
	if !cfg.FluentEnabled {
		return utils.NewLogger(logCfg), func() {}
	}

	client, err := utils.NewFluentClient(cfg.FluentHost, cfg.FluentPort)
	if err != nil {
		logger := utils.NewLogger(logCfg)
		logger.Warn("fluent bit unavailable, logging to stdout only", "error", err)
		return logger, func() {}
	}
	logger := utils.NewLogger(logCfg, utils.NewFluentHandler(client, "storefront", level))
	return logger, func() { _ = client.Close() }
}

func seedCatalog(ctx context.Context, backend string, seed catalog.Source, insert func(context.Context, []models.Property) (int, error)) error {
	props, err := seed.Load(ctx)
	if err != nil {
		return err
	}
	n, err := insert(ctx, props)
	if err != nil {
		return fmt.Errorf("seed %s catalog: %w", backend, err)
	}
	slog.Info("catalog seeded", "backend", backend, "inserted", n)
	return nil
}
