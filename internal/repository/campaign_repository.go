package repository

import (
	"context"

	"github.com/unclebandit/influencer-admin/internal/model"
)

type CampaignRepository struct {
	DB DBTX
}

func (r *CampaignRepository) ListAll(ctx context.Context) ([]model.Campaign, error) {
	rows, err := r.DB.QueryContext(ctx, `
        SELECT campaign_id, brand_id, budget, status, start_date, end_date, objective
        FROM campaigns
        ORDER BY campaign_id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []model.Campaign{}
	for rows.Next() {
		var c model.Campaign
		if err := rows.Scan(&c.ID, &c.BrandID, &c.Budget, &c.Status, &c.StartDate, &c.EndDate, &c.Objective); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *CampaignRepository) Insert(ctx context.Context, rec model.Record) (int64, error) {
	c, err := recordAs[model.Campaign](rec)
	if err != nil {
		return 0, err
	}
	query := `
        INSERT INTO campaigns (brand_id, budget, status, start_date, end_date, objective)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING campaign_id
    `
	var id int64
	err = r.DB.QueryRowContext(ctx, query, c.BrandID, c.Budget, string(c.Status), c.StartDate, c.EndDate, c.Objective).Scan(&id)
	return id, mapError(err)
}

func (r *CampaignRepository) Replace(ctx context.Context, id int64, rec model.Record) error {
	c, err := recordAs[model.Campaign](rec)
	if err != nil {
		return err
	}
	query := `
        UPDATE campaigns
        SET brand_id=$1, budget=$2, status=$3, start_date=$4, end_date=$5, objective=$6
        WHERE campaign_id=$7
    `
	res, err := r.DB.ExecContext(ctx, query, c.BrandID, c.Budget, string(c.Status), c.StartDate, c.EndDate, c.Objective, id)
	return checkAffected(res, err, model.EntityCampaign, id)
}

func (r *CampaignRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM campaigns WHERE campaign_id=$1`, id)
	return checkAffected(res, err, model.EntityCampaign, id)
}

var _ RecordRepository = (*CampaignRepository)(nil)
