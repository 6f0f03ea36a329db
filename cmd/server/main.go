// cmd/server/main.go
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/unclebandit/influencer-admin/internal/cache"
	"github.com/unclebandit/influencer-admin/internal/config"
	"github.com/unclebandit/influencer-admin/internal/db"
	"github.com/unclebandit/influencer-admin/internal/handler"
	"github.com/unclebandit/influencer-admin/internal/logger"
	"github.com/unclebandit/influencer-admin/internal/queue"
	"github.com/unclebandit/influencer-admin/internal/repository"
	"github.com/unclebandit/influencer-admin/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	zl, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, zl); err != nil {
		zl.Fatal("Server stopped with error", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, zl *zap.Logger) error {
	store, conn, err := openStore(ctx, cfg, zl)
	if err != nil {
		return err
	}
	if conn != nil {
		defer conn.Close()
	}

	snapshotCache := cache.SnapshotCache(cache.Nop{})
	rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
		snapshotCache = cache.NewRedisSnapshotCache(rdb, cfg.Redis.TTL)
		zl.Info("Snapshot cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	var q queue.Queue
	if cfg.Queue.AMQPURL != "" {
		aq, err := queue.NewAMQPQueue(cfg.Queue.AMQPURL, zl)
		if err != nil {
			return err
		}
		defer aq.Close()
		q = aq
		zl.Info("Publishing change events to RabbitMQ", zap.String("queue", cfg.Queue.Name))
	} else {
		mq := queue.NewInMemoryQueue(zl)
		worker := service.NewActivityWorker(store.Activity, zl)
		if err := queue.StartActivitySubscriber(ctx, mq, cfg.Queue.Name, worker, zl); err != nil {
			return err
		}
		defer mq.Wait()
		q = mq
	}

	svc := service.NewRecordService(store, snapshotCache, q, zl)
	svc.Topic = cfg.Queue.Name

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.NewRouter(svc, zl),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zl.Info("🚀 Server running", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		zl.Info("Shutting down server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// openStore returns the configured store and, for Postgres, the connection
// to close on exit.
func openStore(ctx context.Context, cfg *config.Config, zl *zap.Logger) (repository.Store, *sql.DB, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		zl.Warn("Using in-memory store; data is lost on restart")
		return repository.NewMemoryStore().Store(), nil, nil
	}
	conn, err := db.Open(ctx, cfg.Database, zl)
	if err != nil {
		return repository.Store{}, nil, err
	}
	if err := db.RunMigrations(conn, zl); err != nil {
		conn.Close()
		return repository.Store{}, nil, err
	}
	return repository.NewPostgresStore(conn), conn, nil
}
