package repository

import (
	"context"

	"github.com/unclebandit/influencer-admin/internal/model"
)

type InfluencerRepository struct {
	DB DBTX
}

func (r *InfluencerRepository) ListAll(ctx context.Context) ([]model.Influencer, error) {
	rows, err := r.DB.QueryContext(ctx, `
        SELECT influencer_id, first_name, last_name, email, phone, niche, social_platform, follower_count
        FROM influencers
        ORDER BY influencer_id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	influencers := []model.Influencer{}
	for rows.Next() {
		var i model.Influencer
		if err := rows.Scan(&i.ID, &i.FirstName, &i.LastName, &i.Email, &i.Phone, &i.Niche, &i.SocialPlatform, &i.FollowerCount); err != nil {
			return nil, err
		}
		influencers = append(influencers, i)
	}
	return influencers, rows.Err()
}

func (r *InfluencerRepository) Insert(ctx context.Context, rec model.Record) (int64, error) {
	i, err := recordAs[model.Influencer](rec)
	if err != nil {
		return 0, err
	}
	query := `
        INSERT INTO influencers (first_name, last_name, email, phone, niche, social_platform, follower_count)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING influencer_id
    `
	var id int64
	err = r.DB.QueryRowContext(ctx, query, i.FirstName, i.LastName, i.Email, i.Phone, i.Niche, i.SocialPlatform, i.FollowerCount).Scan(&id)
	return id, mapError(err)
}

func (r *InfluencerRepository) Replace(ctx context.Context, id int64, rec model.Record) error {
	i, err := recordAs[model.Influencer](rec)
	if err != nil {
		return err
	}
	query := `
        UPDATE influencers
        SET first_name=$1, last_name=$2, email=$3, phone=$4, niche=$5, social_platform=$6, follower_count=$7
        WHERE influencer_id=$8
    `
	res, err := r.DB.ExecContext(ctx, query, i.FirstName, i.LastName, i.Email, i.Phone, i.Niche, i.SocialPlatform, i.FollowerCount, id)
	return checkAffected(res, err, model.EntityInfluencer, id)
}

func (r *InfluencerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM influencers WHERE influencer_id=$1`, id)
	return checkAffected(res, err, model.EntityInfluencer, id)
}

var _ RecordRepository = (*InfluencerRepository)(nil)
