package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	appErrors "github.com/unclebandit/influencer-admin/internal/errors"
	"github.com/unclebandit/influencer-admin/internal/model"
)

// DBTX is satisfied by *sql.DB and *sql.Tx so repositories run inside
// transactions unchanged.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// RecordRepository persists one entity type. Replace is a full-record update.
type RecordRepository interface {
	Insert(ctx context.Context, rec model.Record) (int64, error)
	Replace(ctx context.Context, id int64, rec model.Record) error
	Delete(ctx context.Context, id int64) error
}

// SnapshotRepositoryInterface reads all six tables consistently and restores
// the sample dataset as one unit.
type SnapshotRepositoryInterface interface {
	Load(ctx context.Context) (*model.Snapshot, error)
	Reset(ctx context.Context) error
}

type ActivityRepositoryInterface interface {
	Append(ctx context.Context, a model.Activity) error
	Recent(ctx context.Context, limit int) ([]model.Activity, error)
}

// Store bundles the repositories a record service needs.
type Store struct {
	Records   map[model.Entity]RecordRepository
	Snapshots SnapshotRepositoryInterface
	Activity  ActivityRepositoryInterface
}

// NewPostgresStore wires the Postgres repositories over one connection pool.
func NewPostgresStore(db *sql.DB) Store {
	return Store{
		Records:   recordRepositories(db),
		Snapshots: &SnapshotRepository{DB: db},
		Activity:  &ActivityRepository{DB: db},
	}
}

func recordRepositories(db DBTX) map[model.Entity]RecordRepository {
	return map[model.Entity]RecordRepository{
		model.EntityBrand:         &BrandRepository{DB: db},
		model.EntityInfluencer:    &InfluencerRepository{DB: db},
		model.EntityCampaign:      &CampaignRepository{DB: db},
		model.EntityCollaboration: &CollaborationRepository{DB: db},
		model.EntityPayment:       &PaymentRepository{DB: db},
		model.EntityPost:          &PostRepository{DB: db},
	}
}

func recordAs[T any](rec model.Record) (*T, error) {
	v, ok := any(rec).(*T)
	if !ok {
		return nil, fmt.Errorf("unexpected record type %T", rec)
	}
	return v, nil
}

// checkAffected turns a zero-row update or delete into a not-found error.
func checkAffected(res sql.Result, err error, entity model.Entity, id int64) error {
	if err != nil {
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return appErrors.NewNotFound(entity.Singular(), id)
	}
	return nil
}

// mapError converts constraint violations into validation errors the API
// reports as 400.
func mapError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case "23503":
		return appErrors.NewValidation("referenced record does not exist (%s)", pqErr.Constraint)
	case "23514":
		return appErrors.NewValidation("value violates constraint %s", pqErr.Constraint)
	case "23502":
		return appErrors.NewValidation("%s is required", pqErr.Column)
	case "22P02", "22007", "22008", "22003":
		return appErrors.NewValidation("invalid value: %s", pqErr.Message)
	}
	return err
}
