package dashboard

import (
	"fmt"

	"github.com/unclebandit/influencer-admin/internal/model"
)

// index maps ids to records for one snapshot. Duplicate ids keep the first
// record, matching a front-to-back scan.
type index struct {
	brands         map[int64]*model.Brand
	influencers    map[int64]*model.Influencer
	campaigns      map[int64]*model.Campaign
	collaborations map[int64]*model.Collaboration
}

func newIndex(s *model.Snapshot) *index {
	idx := &index{
		brands:         make(map[int64]*model.Brand, len(s.Brands)),
		influencers:    make(map[int64]*model.Influencer, len(s.Influencers)),
		campaigns:      make(map[int64]*model.Campaign, len(s.Campaigns)),
		collaborations: make(map[int64]*model.Collaboration, len(s.Collaborations)),
	}
	for i := range s.Brands {
		if _, ok := idx.brands[s.Brands[i].ID]; !ok {
			idx.brands[s.Brands[i].ID] = &s.Brands[i]
		}
	}
	for i := range s.Influencers {
		if _, ok := idx.influencers[s.Influencers[i].ID]; !ok {
			idx.influencers[s.Influencers[i].ID] = &s.Influencers[i]
		}
	}
	for i := range s.Campaigns {
		if _, ok := idx.campaigns[s.Campaigns[i].ID]; !ok {
			idx.campaigns[s.Campaigns[i].ID] = &s.Campaigns[i]
		}
	}
	for i := range s.Collaborations {
		if _, ok := idx.collaborations[s.Collaborations[i].ID]; !ok {
			idx.collaborations[s.Collaborations[i].ID] = &s.Collaborations[i]
		}
	}
	return idx
}

func (idx *index) influencerName(id int64) string {
	if inf, ok := idx.influencers[id]; ok {
		return inf.FullName()
	}
	return UnknownName
}

func (idx *index) brandName(id int64) string {
	if b, ok := idx.brands[id]; ok {
		return b.Name
	}
	return UnknownName
}

// campaignRef renders "Campaign #<id>", or "Campaign #?" when unresolved.
func (idx *index) campaignRef(id int64) string {
	if c, ok := idx.campaigns[id]; ok {
		return fmt.Sprintf("Campaign #%d", c.ID)
	}
	return "Campaign #" + UnknownCampaign
}

// paymentInfluencer follows payment → collaboration → influencer.
func (idx *index) paymentInfluencer(collabID int64) string {
	c, ok := idx.collaborations[collabID]
	if !ok {
		return UnknownName
	}
	return idx.influencerName(c.InfluencerID)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
