// internal/model/post.go
package model

import appErrors "github.com/unclebandit/influencer-admin/internal/errors"

type Post struct {
	ID           int64  `json:"post_id"`
	InfluencerID int64  `json:"influencer_id"`
	CollabID     int64  `json:"collab_id"`
	PostDate     Date   `json:"post_date"`
	PostType     string `json:"post_type"`
	Likes        int64  `json:"likes"`
	Shares       int64  `json:"shares"`
	Comments     int64  `json:"comments"`
	Reach        int64  `json:"reach"`
	// EngagementRate is a fraction in [0,1], not a percentage.
	EngagementRate float64 `json:"engagement_rate"`
}

func (p *Post) Entity() Entity { return EntityPost }

func (p *Post) Validate() error {
	if err := firstError(
		requireRef("influencer_id", p.InfluencerID),
		requireRef("collab_id", p.CollabID),
		requireDate("post_date", p.PostDate),
		nonNegativeCount("likes", p.Likes),
		nonNegativeCount("shares", p.Shares),
		nonNegativeCount("comments", p.Comments),
		nonNegativeCount("reach", p.Reach),
	); err != nil {
		return err
	}
	if p.EngagementRate < 0 || p.EngagementRate > 1 {
		return appErrors.NewValidation("engagement_rate must be between 0 and 1")
	}
	return nil
}
