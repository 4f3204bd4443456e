package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	_ "concertflow/docs"
	"concertflow/pkg/api"
	"concertflow/pkg/clientid"
	"concertflow/pkg/concert"
	"concertflow/pkg/concert/memory"
	"concertflow/pkg/concert/postgres"
	concertredis "concertflow/pkg/concert/redis"
	"concertflow/pkg/config"
	"concertflow/pkg/logger"
	"concertflow/pkg/otel"
)

// @title Concert API
// @version 1.0
// @description API for managing concerts
// @host localhost:8443
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, logger.ParseLevel(cfg.LogLevel), "concertflow", otel.GetTraceID)
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error(context.Background(), "startup", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx := context.Background()

	tp, shutdownTracing, err := otel.InitTracing(log, otel.Config{
		ServiceName: "concertflow",
		Host:        cfg.OTELHost,
		Probability: cfg.TraceProbability,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer shutdownTracing(context.Background())

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPass})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping: %w", err)
		}
	}

	repo, closeRepo, err := openRepository(ctx, cfg, rdb)
	if err != nil {
		return err
	}
	defer closeRepo()
	log.Info(ctx, "store ready", "driver", cfg.StoreDriver)

	var tracker clientid.Tracker
	if rdb != nil {
		tracker = clientid.NewRedisTracker(rdb, cfg.ClientTTL)
	}
	issuer := clientid.NewIssuer(log, tracker)

	handlers := api.New(repo, log, issuer, tp.Tracer("concertflow"))
	srv := &http.Server{Addr: cfg.ListenAddr, Handler: handlers.Router()}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", cfg.ListenAddr, "tls", cfg.TLSEnabled())
		if cfg.TLSEnabled() {
			serverErrors <- srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
			return
		}
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-shutdown:
		log.Info(ctx, "shutdown started", "signal", sig.String())
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			srv.Close()
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		log.Info(ctx, "shutdown complete")
	}
	return nil
}

// openRepository builds the concert store selected by STORE_DRIVER.
func openRepository(ctx context.Context, cfg *config.Config, rdb *redis.Client) (concert.Repository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("db connect: %w", err)
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("create table: %w", err)
		}
		return postgres.New(db), db.Close, nil
	case config.DriverRedis:
		return concertredis.New(rdb), noop, nil
	default:
		return memory.New(), noop, nil
	}
}
