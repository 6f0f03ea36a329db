// cmd/worker/main.go consumes change events from RabbitMQ and records them
// in the activity log.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/unclebandit/influencer-admin/internal/config"
	"github.com/unclebandit/influencer-admin/internal/db"
	"github.com/unclebandit/influencer-admin/internal/logger"
	"github.com/unclebandit/influencer-admin/internal/queue"
	"github.com/unclebandit/influencer-admin/internal/repository"
	"github.com/unclebandit/influencer-admin/internal/service"
)

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

	if cfg.Queue.AMQPURL == "" {
		zl.Fatal("AMQP_URL is required for the worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(ctx, cfg.Database, zl)
	if err != nil {
		zl.Fatal("Failed to connect to DB", zap.Error(err))
	}
	defer conn.Close()

	q, err := queue.NewAMQPQueue(cfg.Queue.AMQPURL, zl)
	if err != nil {
		zl.Fatal("Failed to connect to RabbitMQ", zap.Error(err))
	}
	defer q.Close()

	if err := subscribe(ctx, q, cfg.Queue.Name, &repository.ActivityRepository{DB: conn}, zl); err != nil {
		zl.Fatal("Failed to register consumer", zap.Error(err))
	}

	zl.Info("Worker running, waiting for messages...", zap.String("queue", cfg.Queue.Name))
	<-ctx.Done()
	zl.Info("Worker stopping")
}

// subscribe wires the activity recorder to topic on q.
func subscribe(ctx context.Context, q queue.Queue, topic string, repo repository.ActivityRepositoryInterface, zl *zap.Logger) error {
	return queue.StartActivitySubscriber(ctx, q, topic, service.NewActivityWorker(repo, zl), zl)
}
