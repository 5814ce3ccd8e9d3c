package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/rogerio-castellano/supplysight/internal/config"
	api "github.com/rogerio-castellano/supplysight/internal/http"
	"github.com/rogerio-castellano/supplysight/internal/http/ban"
	rl "github.com/rogerio-castellano/supplysight/internal/http/rate_limiter"
	"github.com/rogerio-castellano/supplysight/internal/inventory"
	"github.com/rogerio-castellano/supplysight/internal/logger"
	"github.com/rogerio-castellano/supplysight/internal/redissvc"
	"github.com/rogerio-castellano/supplysight/internal/repo"
)

const (
	visitorCleanupInterval = time.Minute
	visitorMaxIdle         = 3 * time.Minute
	banSummaryInterval     = 24 * time.Hour
)

// @title SupplySight API
// @version 1.0
// @description Inventory dashboard API: products, warehouses, KPIs and stock mutations.
// @host localhost:4000
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.New(logger.Config{})
		l.Fatal().Err(err).Msg("could not load config")
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).
		With().Str("app", cfg.App.Name).Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	productRepo := repo.NewInMemoryProductRepository()
	warehouseRepo := repo.NewInMemoryWarehouseRepository()
	if err := repo.Seed(productRepo, warehouseRepo); err != nil {
		return err
	}
	svc := inventory.NewService(
		productRepo,
		warehouseRepo,
		repo.NewInMemoryMovementRepository(),
		repo.NewInMemoryMetricsRepository(productRepo),
		inventory.WithKPIGenerator(inventory.NewRandomKPIGenerator(cfg.KPI.Seed)),
		inventory.WithLogger(log),
	)

	policy := ban.Policy{MaxStrikes: cfg.RateLimit.BanStrikes, BanTTL: cfg.RateLimit.BanTTL}
	var bans ban.Store = ban.NewMemoryStore(policy)
	if cfg.Redis.Enabled() {
		rs, err := redissvc.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rs.Close()
		bans = ban.NewRedisStore(rs.Rdb(), policy)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("ban store backed by redis")
	}

	limiter := rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go limiter.StartCleanupLoop(ctx, visitorCleanupInterval, visitorMaxIdle)
	go ban.StartSummaryLoop(ctx, bans, banSummaryInterval, log.With().Str("component", "ban").Logger())

	router, err := api.NewRouter(api.Dependencies{
		Service:        svc,
		Logger:         log,
		Limiter:        limiter,
		Bans:           bans,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server running")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
