package repository

import (
	"context"

	"github.com/unclebandit/influencer-admin/internal/model"
)

type PostRepository struct {
	DB DBTX
}

func (r *PostRepository) ListAll(ctx context.Context) ([]model.Post, error) {
	rows, err := r.DB.QueryContext(ctx, `
        SELECT post_id, influencer_id, collab_id, post_date, post_type, likes, shares, comments, reach, engagement_rate
        FROM posts
        ORDER BY post_id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.InfluencerID, &p.CollabID, &p.PostDate, &p.PostType, &p.Likes, &p.Shares, &p.Comments, &p.Reach, &p.EngagementRate); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Insert(ctx context.Context, rec model.Record) (int64, error) {
	p, err := recordAs[model.Post](rec)
	if err != nil {
		return 0, err
	}
	query := `
        INSERT INTO posts (influencer_id, collab_id, post_date, post_type, likes, shares, comments, reach, engagement_rate)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING post_id
    `
	var id int64
	err = r.DB.QueryRowContext(ctx, query, p.InfluencerID, p.CollabID, p.PostDate, p.PostType, p.Likes, p.Shares, p.Comments, p.Reach, p.EngagementRate).Scan(&id)
	return id, mapError(err)
}

func (r *PostRepository) Replace(ctx context.Context, id int64, rec model.Record) error {
	p, err := recordAs[model.Post](rec)
	if err != nil {
		return err
	}
	query := `
        UPDATE posts
        SET influencer_id=$1, collab_id=$2, post_date=$3, post_type=$4, likes=$5, shares=$6, comments=$7, reach=$8, engagement_rate=$9
        WHERE post_id=$10
    `
	res, err := r.DB.ExecContext(ctx, query, p.InfluencerID, p.CollabID, p.PostDate, p.PostType, p.Likes, p.Shares, p.Comments, p.Reach, p.EngagementRate, id)
	return checkAffected(res, err, model.EntityPost, id)
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM posts WHERE post_id=$1`, id)
	return checkAffected(res, err, model.EntityPost, id)
}

var _ RecordRepository = (*PostRepository)(nil)
