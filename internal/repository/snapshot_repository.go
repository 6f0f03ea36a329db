package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/unclebandit/influencer-admin/internal/model"
	"github.com/unclebandit/influencer-admin/internal/seed"
)

type SnapshotRepository struct {
	DB *sql.DB
}

// Load reads all six tables inside one read-only transaction so the result
// reflects a single point in time.
func (r *SnapshotRepository) Load(ctx context.Context) (*model.Snapshot, error) {
	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("begin snapshot: %w", err)
	}
	defer tx.Rollback()

	s := &model.Snapshot{}
	if s.Brands, err = (&BrandRepository{DB: tx}).ListAll(ctx); err != nil {
		return nil, fmt.Errorf("load brands: %w", err)
	}
	if s.Influencers, err = (&InfluencerRepository{DB: tx}).ListAll(ctx); err != nil {
		return nil, fmt.Errorf("load influencers: %w", err)
	}
	if s.Campaigns, err = (&CampaignRepository{DB: tx}).ListAll(ctx); err != nil {
		return nil, fmt.Errorf("load campaigns: %w", err)
	}
	if s.Collaborations, err = (&CollaborationRepository{DB: tx}).ListAll(ctx); err != nil {
		return nil, fmt.Errorf("load collaborations: %w", err)
	}
	if s.Payments, err = (&PaymentRepository{DB: tx}).ListAll(ctx); err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}
	if s.Posts, err = (&PostRepository{DB: tx}).ListAll(ctx); err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit snapshot: %w", err)
	}
	return s.Normalize(), nil
}

// Reset empties every table, restarts the id sequences and inserts the
// sample dataset. Either all of it applies or none of it does.
func (r *SnapshotRepository) Reset(ctx context.Context) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
        TRUNCATE posts, payments, collaborations, campaigns, influencers, brands
        RESTART IDENTITY CASCADE
    `); err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}

	repos := recordRepositories(tx)
	for _, item := range seedRecords(seed.Dataset()) {
		id, err := repos[item.rec.Entity()].Insert(ctx, item.rec)
		if err != nil {
			return fmt.Errorf("insert sample %s %d: %w", item.rec.Entity(), item.id, err)
		}
		if id != item.id {
			return fmt.Errorf("sample %s inserted as id %d, expected %d", item.rec.Entity(), id, item.id)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return nil
}

type seedRecord struct {
	id  int64
	rec model.Record
}

// seedRecords flattens a dataset into insert order.
func seedRecords(s *model.Snapshot) []seedRecord {
	var out []seedRecord
	for i := range s.Brands {
		out = append(out, seedRecord{s.Brands[i].ID, &s.Brands[i]})
	}
	for i := range s.Influencers {
		out = append(out, seedRecord{s.Influencers[i].ID, &s.Influencers[i]})
	}
	for i := range s.Campaigns {
		out = append(out, seedRecord{s.Campaigns[i].ID, &s.Campaigns[i]})
	}
	for i := range s.Collaborations {
		out = append(out, seedRecord{s.Collaborations[i].ID, &s.Collaborations[i]})
	}
	for i := range s.Payments {
		out = append(out, seedRecord{s.Payments[i].ID, &s.Payments[i]})
	}
	for i := range s.Posts {
		out = append(out, seedRecord{s.Posts[i].ID, &s.Posts[i]})
	}
	return out
}

var _ SnapshotRepositoryInterface = (*SnapshotRepository)(nil)
