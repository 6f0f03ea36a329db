package repository

import (
	"context"

	"github.com/unclebandit/influencer-admin/internal/model"
)

type BrandRepository struct {
	DB DBTX
}

func (r *BrandRepository) ListAll(ctx context.Context) ([]model.Brand, error) {
	rows, err := r.DB.QueryContext(ctx, `
        SELECT brand_id, brand_name, industry, contact_person, contact_email, website, created_at
        FROM brands
        ORDER BY brand_id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := []model.Brand{}
	for rows.Next() {
		var b model.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Industry, &b.ContactPerson, &b.ContactEmail, &b.Website, &b.CreatedAt); err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

// Insert leaves created_at to the database default.
func (r *BrandRepository) Insert(ctx context.Context, rec model.Record) (int64, error) {
	b, err := recordAs[model.Brand](rec)
	if err != nil {
		return 0, err
	}
	query := `
        INSERT INTO brands (brand_name, industry, contact_person, contact_email, website)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING brand_id
    `
	var id int64
	err = r.DB.QueryRowContext(ctx, query, b.Name, b.Industry, b.ContactPerson, b.ContactEmail, b.Website).Scan(&id)
	return id, mapError(err)
}

func (r *BrandRepository) Replace(ctx context.Context, id int64, rec model.Record) error {
	b, err := recordAs[model.Brand](rec)
	if err != nil {
		return err
	}
	query := `
        UPDATE brands
        SET brand_name=$1, industry=$2, contact_person=$3, contact_email=$4, website=$5
        WHERE brand_id=$6
    `
	res, err := r.DB.ExecContext(ctx, query, b.Name, b.Industry, b.ContactPerson, b.ContactEmail, b.Website, id)
	return checkAffected(res, err, model.EntityBrand, id)
}

func (r *BrandRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM brands WHERE brand_id=$1`, id)
	return checkAffected(res, err, model.EntityBrand, id)
}

var _ RecordRepository = (*BrandRepository)(nil)
