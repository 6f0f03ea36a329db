package dashboard

import (
	"strconv"

	"github.com/unclebandit/influencer-admin/internal/model"
)

func brandRows(s *model.Snapshot) []BrandRow {
	rows := make([]BrandRow, 0, len(s.Brands))
	for _, b := range s.Brands {
		rows = append(rows, BrandRow{
			ID:            b.ID,
			Name:          b.Name,
			Industry:      b.Industry,
			ContactPerson: b.ContactPerson,
			ContactEmail:  b.ContactEmail,
			Website:       b.Website,
			CreatedAt:     b.CreatedAt,
		})
	}
	return rows
}

func influencerRows(s *model.Snapshot) []InfluencerRow {
	rows := make([]InfluencerRow, 0, len(s.Influencers))
	for _, i := range s.Influencers {
		rows = append(rows, InfluencerRow{
			ID:        i.ID,
			Name:      i.FullName(),
			Email:     i.Email,
			Platform:  i.SocialPlatform,
			Followers: i.FollowerCount,
			Niche:     i.Niche,
			Phone:     i.Phone,
		})
	}
	return rows
}

func campaignRows(s *model.Snapshot, idx *index) []CampaignRow {
	rows := make([]CampaignRow, 0, len(s.Campaigns))
	for _, c := range s.Campaigns {
		rows = append(rows, CampaignRow{
			ID:        c.ID,
			Brand:     idx.brandName(c.BrandID),
			Budget:    c.Budget.Decimal,
			Status:    c.Status,
			Start:     c.StartDate,
			End:       c.EndDate,
			Objective: truncate(c.Objective, CampaignObjective),
		})
	}
	return rows
}

func collaborationRows(s *model.Snapshot, idx *index) []CollaborationRow {
	rows := make([]CollaborationRow, 0, len(s.Collaborations))
	for _, c := range s.Collaborations {
		rows = append(rows, CollaborationRow{
			ID:          c.ID,
			Influencer:  idx.influencerName(c.InfluencerID),
			CampaignRef: idx.campaignRef(c.CampaignID),
			Amount:      c.AgreedAmount.Decimal,
			Status:      c.ApprovalStatus,
			Deadline:    c.DeadLine,
		})
	}
	return rows
}

func paymentRows(s *model.Snapshot, idx *index) []PaymentRow {
	rows := make([]PaymentRow, 0, len(s.Payments))
	for _, p := range s.Payments {
		collab := MissingCollab
		if c, ok := idx.collaborations[p.CollabID]; ok {
			collab = strconv.FormatInt(c.ID, 10)
		}
		rows = append(rows, PaymentRow{
			ID:     p.ID,
			Collab: collab,
			Date:   p.PaymentDate,
			Amount: p.AmountPaid.Decimal,
			Status: p.Status,
			Mode:   p.Mode,
		})
	}
	return rows
}

func postRows(s *model.Snapshot, idx *index) []PostRow {
	rows := make([]PostRow, 0, len(s.Posts))
	for _, p := range s.Posts {
		rows = append(rows, PostRow{
			ID:             p.ID,
			Influencer:     idx.influencerName(p.InfluencerID),
			CollabID:       p.CollabID,
			Date:           p.PostDate,
			Type:           p.PostType,
			Likes:          p.Likes,
			Reach:          p.Reach,
			EngagementRate: p.EngagementRate,
		})
	}
	return rows
}
