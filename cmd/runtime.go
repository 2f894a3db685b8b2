package cmd

import (
	"context"
	"fmt"
	"time"

	"asset-sorter/core/assets"
	"asset-sorter/core/config"
	"asset-sorter/core/database"
	"asset-sorter/core/logger"
	"asset-sorter/core/metrics"
	"asset-sorter/core/reconcile"
	"asset-sorter/core/storage"
	"asset-sorter/feature/history"
	"asset-sorter/feature/snapshot"
	"asset-sorter/feature/sorter"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime holds everything a command needs to talk to the host.
type runtime struct {
	cfg       *config.Config
	logger    *zap.Logger
	db        *gorm.DB
	store     storage.Client
	history   *history.Repository
	snapshots *snapshot.Store
	metrics   *metrics.Metrics
	sorter    *sorter.Service
}

// newRuntime loads configuration and wires the sorter. The database and the
// snapshot storage are optional; failing to reach them only logs a warning.
// An unreachable host leaves the service in offline mode.
func newRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	rt := &runtime{cfg: cfg, logger: logg, metrics: metrics.New()}

	if cfg.Sorter.History {
		rt.connectHistory(ctx)
	}
	rt.history = history.NewRepository(rt.db)

	if cfg.Sorter.Snapshots {
		rt.connectStorage(ctx)
	}
	rt.snapshots = snapshot.NewStore(rt.store, cfg.Storage.Bucket, cfg.Sorter.SnapshotRetention, logg)

	client, err := assets.NewClient(cfg.Host, logg)
	if err != nil {
		return nil, fmt.Errorf("failed to create host client: %w", err)
	}

	rt.sorter, err = sorter.NewService(sorter.Deps{
		Client:    client,
		Host:      cfg.Host,
		Options:   reconcile.Options{Concurrency: cfg.Sorter.Concurrency},
		Snapshots: rt.snapshots,
		History:   rt.history,
		Metrics:   rt.metrics,
		Logger:    logg,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sorter: %w", err)
	}

	if err := rt.sorter.Ping(ctx); err != nil {
		logg.Warn("Host unreachable, starting offline", zap.String("url", cfg.Host.URL), zap.Error(err))
	} else {
		logg.Info("Connected to host", zap.String("url", cfg.Host.URL))
	}

	return rt, nil
}

func (rt *runtime) connectHistory(ctx context.Context) {
	db, err := database.Connect(rt.cfg.Database)
	if err != nil {
		rt.logger.Warn("Optional database connection failed, history disabled", zap.Error(err))
		return
	}
	if err := history.NewRepository(db).Migrate(ctx); err != nil {
		rt.logger.Warn("History migration failed, history disabled", zap.Error(err))
		return
	}
	rt.db = db
	rt.logger.Info("Connected to history database", zap.String("driver", rt.cfg.Database.Driver))
}

func (rt *runtime) connectStorage(ctx context.Context) {
	client, err := storage.NewClient(rt.cfg.Storage)
	if err != nil {
		rt.logger.Warn("Optional storage client failed, snapshots disabled", zap.Error(err))
		return
	}

	timeout := time.Duration(rt.cfg.Storage.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := storage.EnsureBucket(ctx, client, rt.cfg.Storage.Bucket, rt.cfg.Storage.Region); err != nil {
		rt.logger.Warn("Snapshot bucket unavailable, snapshots disabled", zap.Error(err))
		return
	}
	rt.store = client
	rt.logger.Info("Connected to snapshot storage", zap.String("bucket", rt.cfg.Storage.Bucket))
}

func (rt *runtime) close() {
	_ = rt.logger.Sync()
}
