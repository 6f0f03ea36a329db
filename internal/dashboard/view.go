// Package dashboard derives every displayed aggregate, ranked list and
// joined table row from a snapshot. All functions are pure; callers pass
// the current time where it matters.
package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/unclebandit/influencer-admin/internal/model"
)

// Placeholders substituted when a reference does not resolve.
const (
	UnknownName     = "Unknown"
	UnknownCampaign = "?"
	MissingCollab   = "—"
	NoInfluencer    = "—"
)

// Caps on the ranked lists.
const (
	ListLimit         = 5
	DeadlineObjective = 40
	CampaignObjective = 50
)

type KPIs struct {
	Brands          int
	ActiveCampaigns int
	TotalSpend      decimal.Decimal
	// TopInfluencer is the display name, or NoInfluencer when there are none.
	TopInfluencer string
}

type Deadline struct {
	CollabID    int64
	Influencer  string
	CampaignRef string
	Objective   string
	Due         model.Date
}

type BudgetPoint struct {
	Label  string
	Budget decimal.Decimal
}

type PostItem struct {
	PostID     int64
	PostType   string
	Influencer string
	PostDate   model.Date
	Likes      int64
	Reach      int64
}

type PaymentItem struct {
	PaymentID  int64
	Influencer string
	Date       model.Date
	Amount     decimal.Decimal
	Mode       string
}

type InfluencerItem struct {
	InfluencerID int64
	Name         string
	Niche        string
	Platform     string
	Followers    int64
}

type BrandRow struct {
	ID            int64
	Name          string
	Industry      string
	ContactPerson string
	ContactEmail  string
	Website       string
	CreatedAt     time.Time
}

type InfluencerRow struct {
	ID        int64
	Name      string
	Email     string
	Platform  string
	Followers int64
	Niche     string
	Phone     string
}

type CampaignRow struct {
	ID        int64
	Brand     string
	Budget    decimal.Decimal
	Status    model.CampaignStatus
	Start     model.Date
	End       model.Date
	Objective string
}

type CollaborationRow struct {
	ID          int64
	Influencer  string
	CampaignRef string
	Amount      decimal.Decimal
	Status      model.ApprovalStatus
	Deadline    *model.Date
}

type PaymentRow struct {
	ID     int64
	Collab string
	Date   model.Date
	Amount decimal.Decimal
	Status model.PaymentStatus
	Mode   string
}

type PostRow struct {
	ID             int64
	Influencer     string
	CollabID       int64
	Date           model.Date
	Type           string
	Likes          int64
	Reach          int64
	EngagementRate float64
}

// View is the complete display model for one render pass.
type View struct {
	KPIs           KPIs
	Deadlines      []Deadline
	DeadlineLabel  string
	BudgetSeries   []BudgetPoint
	RecentPosts    []PostItem
	TopInfluencers []InfluencerItem
	RecentPayments []PaymentItem

	Brands         []BrandRow
	Influencers    []InfluencerRow
	Campaigns      []CampaignRow
	Collaborations []CollaborationRow
	Payments       []PaymentRow
	Posts          []PostRow
}
