// cmd/seeder/main.go restores the sample dataset in Postgres.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/unclebandit/influencer-admin/internal/config"
	"github.com/unclebandit/influencer-admin/internal/db"
	"github.com/unclebandit/influencer-admin/internal/logger"
	"github.com/unclebandit/influencer-admin/internal/model"
	"github.com/unclebandit/influencer-admin/internal/repository"
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

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := db.Open(ctx, cfg.Database, zl)
	if err != nil {
		zl.Fatal("Failed to connect to DB", zap.Error(err))
	}
	defer conn.Close()

	if err := db.RunMigrations(conn, zl); err != nil {
		zl.Fatal("Failed to run migrations", zap.Error(err))
	}

	repo := &repository.SnapshotRepository{DB: conn}
	if err := repo.Reset(ctx); err != nil {
		zl.Fatal("Failed to seed", zap.Error(err))
	}

	snap, err := repo.Load(ctx)
	if err != nil {
		zl.Fatal("Failed to read back seeded data", zap.Error(err))
	}
	for _, e := range model.Entities {
		fmt.Printf("Seeded: %s (%d)\n", e.Path(), snap.Count(e))
	}
	fmt.Println("Database seeding completed successfully!")
}
