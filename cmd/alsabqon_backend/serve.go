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

	"github.com/SscSPs/alsabqon_app/internal/adapters/catalog"
	"github.com/SscSPs/alsabqon_app/internal/adapters/corpus"
	portsrepo "github.com/SscSPs/alsabqon_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/alsabqon_app/internal/core/ports/services"
	"github.com/SscSPs/alsabqon_app/internal/core/services"
	"github.com/SscSPs/alsabqon_app/internal/handlers"
	"github.com/SscSPs/alsabqon_app/internal/middleware"
	"github.com/SscSPs/alsabqon_app/internal/platform/config"
	mongorepo "github.com/SscSPs/alsabqon_app/internal/repositories/database/mongo"
	"github.com/SscSPs/alsabqon_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/alsabqon_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, a.cfg, a.logger)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	repos, closeStorage, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStorage()

	quran, err := corpus.Load(cfg.QuranDataPath)
	if err != nil {
		return fmt.Errorf("failed to load quran corpus: %w", err)
	}
	categories, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load category catalogs: %w", err)
	}
	repos.Corpus = quran
	repos.Catalog = categories
	logger.Info("Reference data loaded", slog.Int("surahs", len(quran.Surahs())))

	r, err := newRouter(cfg, services.NewServiceContainer(repos), logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStorage connects the configured ledger store. The returned func
// releases it.
func openStorage(ctx context.Context, cfg *config.Config) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp); err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil

	case config.StorageMongo:
		client, err := database.NewMongoClient(ctx, cfg.MongoURL)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		repos, err := mongorepo.NewRepositoryProvider(ctx, client.Database(cfg.DBName))
		if err != nil {
			database.CloseMongoClient(client)
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to prepare mongo collections: %w", err)
		}
		return repos, func() { database.CloseMongoClient(client) }, nil

	default:
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func newRouter(cfg *config.Config, svc *portssvc.ServiceContainer, logger *slog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if cfg.EnableMetrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		r.Use(middleware.NewHTTPMetrics(reg).Middleware())
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	if cfg.RateLimit != "" {
		lim, err := middleware.NewRateLimiter(cfg.RateLimit)
		if err != nil {
			return nil, err
		}
		r.Use(middleware.RateLimit(lim))
	}

	if err := handlers.RegisterRoutes(r, cfg, svc); err != nil {
		return nil, fmt.Errorf("failed to register routes: %w", err)
	}
	return r, nil
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}
	if cfg.AllowAllOrigins() {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
		c.AllowCredentials = true
	}
	return c
}
