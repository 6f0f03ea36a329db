package repository

import (
	"context"

	"github.com/unclebandit/influencer-admin/internal/model"
)

type CollaborationRepository struct {
	DB DBTX
}

func (r *CollaborationRepository) ListAll(ctx context.Context) ([]model.Collaboration, error) {
	rows, err := r.DB.QueryContext(ctx, `
        SELECT collab_id, influencer_id, campaign_id, agreed_amount, approval_status, dead_line, deliverables
        FROM collaborations
        ORDER BY collab_id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	collabs := []model.Collaboration{}
	for rows.Next() {
		var c model.Collaboration
		if err := rows.Scan(&c.ID, &c.InfluencerID, &c.CampaignID, &c.AgreedAmount, &c.ApprovalStatus, &c.DeadLine, &c.Deliverables); err != nil {
			return nil, err
		}
		collabs = append(collabs, c)
	}
	return collabs, rows.Err()
}

func (r *CollaborationRepository) Insert(ctx context.Context, rec model.Record) (int64, error) {
	c, err := recordAs[model.Collaboration](rec)
	if err != nil {
		return 0, err
	}
	query := `
        INSERT INTO collaborations (influencer_id, campaign_id, agreed_amount, approval_status, dead_line, deliverables)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING collab_id
    `
	var id int64
	err = r.DB.QueryRowContext(ctx, query, c.InfluencerID, c.CampaignID, c.AgreedAmount, string(c.ApprovalStatus), c.DeadLine, c.Deliverables).Scan(&id)
	return id, mapError(err)
}

func (r *CollaborationRepository) Replace(ctx context.Context, id int64, rec model.Record) error {
	c, err := recordAs[model.Collaboration](rec)
	if err != nil {
		return err
	}
	query := `
        UPDATE collaborations
        SET influencer_id=$1, campaign_id=$2, agreed_amount=$3, approval_status=$4, dead_line=$5, deliverables=$6
        WHERE collab_id=$7
    `
	res, err := r.DB.ExecContext(ctx, query, c.InfluencerID, c.CampaignID, c.AgreedAmount, string(c.ApprovalStatus), c.DeadLine, c.Deliverables, id)
	return checkAffected(res, err, model.EntityCollaboration, id)
}

func (r *CollaborationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM collaborations WHERE collab_id=$1`, id)
	return checkAffected(res, err, model.EntityCollaboration, id)
}

var _ RecordRepository = (*CollaborationRepository)(nil)
