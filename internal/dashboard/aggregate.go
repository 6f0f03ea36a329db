package dashboard

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/unclebandit/influencer-admin/internal/model"
)

func BrandCount(s *model.Snapshot) int {
	return len(s.Brands)
}

// ActiveCampaignCount counts campaigns whose status is exactly "Active".
func ActiveCampaignCount(s *model.Snapshot) int {
	n := 0
	for _, c := range s.Campaigns {
		if c.Status == model.CampaignActive {
			n++
		}
	}
	return n
}

// TotalSpend sums the agreed amount of every collaboration. Spend is what
// has been committed, not what has been paid.
func TotalSpend(s *model.Snapshot) decimal.Decimal {
	total := decimal.Zero
	for _, c := range s.Collaborations {
		total = total.Add(c.AgreedAmount.Decimal)
	}
	return total
}

// TopInfluencer returns the influencer with the most followers. The first
// one wins a tie. ok is false when there are no influencers.
func TopInfluencer(s *model.Snapshot) (top model.Influencer, ok bool) {
	for i, inf := range s.Influencers {
		if i == 0 || inf.FollowerCount > top.FollowerCount {
			top = inf
		}
	}
	return top, len(s.Influencers) > 0
}

// UpcomingDeadlines lists collaborations due at or after now, soonest first,
// at most five. Collaborations without a deadline are skipped.
func UpcomingDeadlines(s *model.Snapshot, now time.Time) []Deadline {
	return upcomingDeadlines(s, newIndex(s), now)
}

func upcomingDeadlines(s *model.Snapshot, idx *index, now time.Time) []Deadline {
	var due []model.Collaboration
	for _, c := range s.Collaborations {
		if c.DeadLine != nil && !c.DeadLine.IsZero() && !c.DeadLine.Before(now) {
			due = append(due, c)
		}
	}
	slices.SortStableFunc(due, func(a, b model.Collaboration) int {
		return a.DeadLine.Compare(b.DeadLine.Time)
	})
	if len(due) > ListLimit {
		due = due[:ListLimit]
	}

	out := make([]Deadline, 0, len(due))
	for _, c := range due {
		d := Deadline{
			CollabID:    c.ID,
			Influencer:  idx.influencerName(c.InfluencerID),
			CampaignRef: UnknownCampaign,
			Due:         *c.DeadLine,
		}
		if camp, ok := idx.campaigns[c.CampaignID]; ok {
			d.CampaignRef = fmt.Sprintf("%d", camp.ID)
			d.Objective = truncate(camp.Objective, DeadlineObjective)
		}
		out = append(out, d)
	}
	return out
}

// DeadlineLabel is the header shown above the deadline list.
func DeadlineLabel(n int) string {
	if n == 0 {
		return "No deadlines"
	}
	return fmt.Sprintf("%d upcoming", n)
}

// RecentPosts returns the five newest posts with their influencer resolved.
func RecentPosts(s *model.Snapshot) []PostItem {
	return recentPosts(s, newIndex(s))
}

func recentPosts(s *model.Snapshot, idx *index) []PostItem {
	posts := slices.Clone(s.Posts)
	slices.SortStableFunc(posts, func(a, b model.Post) int {
		return b.PostDate.Compare(a.PostDate.Time)
	})
	if len(posts) > ListLimit {
		posts = posts[:ListLimit]
	}

	out := make([]PostItem, 0, len(posts))
	for _, p := range posts {
		out = append(out, PostItem{
			PostID:     p.ID,
			PostType:   p.PostType,
			Influencer: idx.influencerName(p.InfluencerID),
			PostDate:   p.PostDate,
			Likes:      p.Likes,
			Reach:      p.Reach,
		})
	}
	return out
}

// RecentPayments returns the five newest payments, each traced through its
// collaboration to the influencer paid.
func RecentPayments(s *model.Snapshot) []PaymentItem {
	return recentPayments(s, newIndex(s))
}

func recentPayments(s *model.Snapshot, idx *index) []PaymentItem {
	payments := slices.Clone(s.Payments)
	slices.SortStableFunc(payments, func(a, b model.Payment) int {
		return b.PaymentDate.Compare(a.PaymentDate.Time)
	})
	if len(payments) > ListLimit {
		payments = payments[:ListLimit]
	}

	out := make([]PaymentItem, 0, len(payments))
	for _, p := range payments {
		out = append(out, PaymentItem{
			PaymentID:  p.ID,
			Influencer: idx.paymentInfluencer(p.CollabID),
			Date:       p.PaymentDate,
			Amount:     p.AmountPaid.Decimal,
			Mode:       p.Mode,
		})
	}
	return out
}

// TopInfluencers returns up to five influencers by follower count, highest
// first. Equal counts keep collection order.
func TopInfluencers(s *model.Snapshot) []InfluencerItem {
	infs := slices.Clone(s.Influencers)
	slices.SortStableFunc(infs, func(a, b model.Influencer) int {
		switch {
		case a.FollowerCount > b.FollowerCount:
			return -1
		case a.FollowerCount < b.FollowerCount:
			return 1
		}
		return 0
	})
	if len(infs) > ListLimit {
		infs = infs[:ListLimit]
	}

	out := make([]InfluencerItem, 0, len(infs))
	for _, i := range infs {
		out = append(out, InfluencerItem{
			InfluencerID: i.ID,
			Name:         i.FullName(),
			Niche:        i.Niche,
			Platform:     i.SocialPlatform,
			Followers:    i.FollowerCount,
		})
	}
	return out
}

// CampaignBudgetSeries yields one bar per campaign in collection order.
func CampaignBudgetSeries(s *model.Snapshot) []BudgetPoint {
	out := make([]BudgetPoint, 0, len(s.Campaigns))
	for _, c := range s.Campaigns {
		out = append(out, BudgetPoint{
			Label:  fmt.Sprintf("C#%d", c.ID),
			Budget: c.Budget.Decimal,
		})
	}
	return out
}

// Build composes the full display model. The snapshot is only read.
func Build(s *model.Snapshot, now time.Time) View {
	if s == nil {
		s = model.EmptySnapshot()
	}
	idx := newIndex(s)

	kpis := KPIs{
		Brands:          BrandCount(s),
		ActiveCampaigns: ActiveCampaignCount(s),
		TotalSpend:      TotalSpend(s),
		TopInfluencer:   NoInfluencer,
	}
	if top, ok := TopInfluencer(s); ok {
		kpis.TopInfluencer = top.FullName()
	}

	deadlines := upcomingDeadlines(s, idx, now)
	return View{
		KPIs:           kpis,
		Deadlines:      deadlines,
		DeadlineLabel:  DeadlineLabel(len(deadlines)),
		BudgetSeries:   CampaignBudgetSeries(s),
		RecentPosts:    recentPosts(s, idx),
		TopInfluencers: TopInfluencers(s),
		RecentPayments: recentPayments(s, idx),
		Brands:         brandRows(s),
		Influencers:    influencerRows(s),
		Campaigns:      campaignRows(s, idx),
		Collaborations: collaborationRows(s, idx),
		Payments:       paymentRows(s, idx),
		Posts:          postRows(s, idx),
	}
}
