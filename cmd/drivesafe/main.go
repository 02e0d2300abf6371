package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/drivesafe-lab/drivesafe/internal/analytics"
	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/cache"
	corecfg "github.com/drivesafe-lab/drivesafe/internal/core/config"
	"github.com/drivesafe-lab/drivesafe/internal/core/storage/postgres"
	"github.com/drivesafe-lab/drivesafe/internal/drivers"
	"github.com/drivesafe-lab/drivesafe/internal/emergency"
	"github.com/drivesafe-lab/drivesafe/internal/gamification"
	"github.com/drivesafe-lab/drivesafe/internal/migrations"
	"github.com/drivesafe-lab/drivesafe/internal/profile"
	"github.com/drivesafe-lab/drivesafe/internal/server"
	"github.com/drivesafe-lab/drivesafe/internal/sos"
	"github.com/drivesafe-lab/drivesafe/internal/templates"
	"github.com/drivesafe-lab/drivesafe/internal/timebucket"
	"github.com/drivesafe-lab/drivesafe/internal/trips"
	"github.com/drivesafe-lab/drivesafe/internal/vehicles"
)

func main() {
	configPath := flag.String("config", corecfg.DefaultPath, "Path to configuration file")
	flag.Parse()

	// 0. Bootstrap logger until config is known
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg.Log))
	slog.Info("Loaded config",
		"addr", cfg.Server.Addr(),
		"mode", cfg.Server.Mode,
		"cache_enabled", cfg.Cache.Enabled,
		"cache_codec", cfg.Cache.Codec,
	)

	// 2. Initialize Storage (PostgreSQL)
	dbAdapter, err := postgres.NewAdapter(cfg.Database.DSN, postgres.PoolConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbAdapter.Close()

	// 2.1. Run Database Migrations, then make sure every table is there
	if err := migrations.RunMigrations(dbAdapter.DB(), cfg.Database.AutoMigrate); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	checkCtx, cancelCheck := context.WithTimeout(context.Background(), 10*time.Second)
	err = dbAdapter.ValidateSchema(checkCtx)
	cancelCheck()
	if err != nil {
		slog.Error("Database schema is incomplete", "error", err)
		os.Exit(1)
	}

	// 3. Time dimension
	var buckets timebucket.Store = postgres.NewTimeBucketStore(dbAdapter.DB())
	if cfg.TimeBucket.MemoSize > 0 {
		buckets, err = timebucket.NewCachingStore(buckets, cfg.TimeBucket.MemoSize)
		if err != nil {
			slog.Error("Failed to initialize time bucket memo", "error", err)
			os.Exit(1)
		}
	}

	// 4. Initialize Cache
	var (
		cacheStore  cache.Store = cache.NopStore{}
		cacheHealth server.HealthChecker
	)
	if cfg.Cache.Enabled {
		redisStore, err := cache.NewRedisStore(cfg.Cache.URL)
		if err != nil {
			slog.Error("Failed to initialize cache", "error", err)
			os.Exit(1)
		}
		defer redisStore.Close()
		cacheStore, cacheHealth = redisStore, redisStore
	} else {
		slog.Info("[Cache] Disabled by config, every read goes to the store")
	}

	codec, err := templates.NewCodec(cfg.Cache.Codec)
	if err != nil {
		slog.Error("Failed to initialize cache codec", "error", err)
		os.Exit(1)
	}
	templateCache := cache.NewAside[v1.Template](cacheStore, codec,
		cache.WithKeyPrefix(cfg.Cache.KeyPrefix),
		cache.WithDefaultTTL(cfg.Cache.DefaultTTL),
	)

	// 5. Initialize Services
	services := newServices(dbAdapter.DB(), buckets, templateCache, cfg.Cache.DefaultTTL)

	// 6. Initialize Server
	srv := server.New(server.Options{
		Addr:          cfg.Server.Addr(),
		Mode:          cfg.Server.Mode,
		MaxBodySizeMB: cfg.Server.MaxBodySizeMB,
		Database:      dbAdapter,
		Cache:         cacheHealth,
	}, services...)

	// 7. Start
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler → triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// newServices builds every resource service on one connection pool.
func newServices(db *sql.DB, buckets timebucket.Store, templateCache *cache.Aside[v1.Template], listTTL time.Duration) []server.RouteRegistrar {
	return []server.RouteRegistrar{
		drivers.NewService(postgres.NewDriverStore(db)),
		vehicles.NewService(postgres.NewVehicleStore(db)),
		trips.NewService(postgres.NewTripStore(db), buckets),
		sos.NewService(postgres.NewSOSStore(db), buckets),
		gamification.NewService(postgres.NewGamificationStore(db), buckets),
		analytics.NewService(postgres.NewAnalyticsStore(db)),
		emergency.NewService(postgres.NewEmergencyStore(db)),
		profile.NewService(postgres.NewProfileStore(db)),
		templates.NewService(postgres.NewTemplateStore(db), templateCache, listTTL),
	}
}

func newLogger(cfg corecfg.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
