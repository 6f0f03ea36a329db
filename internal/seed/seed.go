// Package seed holds the fixed sample dataset restored by reset-to-sample.
package seed

import (
	"time"

	"github.com/unclebandit/influencer-admin/internal/model"
)

func datePtr(d model.Date) *model.Date { return &d }

// Dataset returns a fresh copy of the sample data. IDs are the values the
// record store assigns when the rows are inserted in order into empty tables.
func Dataset() *model.Snapshot {
	created := time.Date(2025, time.January, 6, 9, 0, 0, 0, time.UTC)

	return &model.Snapshot{
		Brands: []model.Brand{
			{ID: 1, Name: "TechNova", Industry: "Technology", ContactPerson: "Priya Raman", ContactEmail: "priya@technova.io", Website: "https://technova.io", CreatedAt: created},
			{ID: 2, Name: "GreenLeaf Organics", Industry: "Food & Beverage", ContactPerson: "Marco Silva", ContactEmail: "marco@greenleaf.com", Website: "https://greenleaf.com", CreatedAt: created},
			{ID: 3, Name: "UrbanStride", Industry: "Fashion", ContactPerson: "Dana Cole", ContactEmail: "dana@urbanstride.co", Website: "https://urbanstride.co", CreatedAt: created},
		},
		Influencers: []model.Influencer{
			{ID: 1, FirstName: "Aisha", LastName: "Khan", Email: "aisha.khan@example.com", Phone: "+1-555-0101", Niche: "Tech Reviews", SocialPlatform: "YouTube", FollowerCount: 250000},
			{ID: 2, FirstName: "Leo", LastName: "Martins", Email: "leo.martins@example.com", Phone: "+1-555-0102", Niche: "Healthy Living", SocialPlatform: "Instagram", FollowerCount: 98000},
			{ID: 3, FirstName: "Sofia", LastName: "Reyes", Email: "sofia.reyes@example.com", Phone: "+1-555-0103", Niche: "Streetwear", SocialPlatform: "TikTok", FollowerCount: 410000},
		},
		Campaigns: []model.Campaign{
			{ID: 1, BrandID: 1, Budget: model.NewMoney(15000), Status: model.CampaignActive, StartDate: model.NewDate(2025, time.February, 1), EndDate: model.NewDate(2025, time.April, 30), Objective: "Launch the NovaBook laptop line to student creators"},
			{ID: 2, BrandID: 2, Budget: model.NewMoney(8000), Status: model.CampaignPlanning, StartDate: model.NewDate(2025, time.May, 1), EndDate: model.NewDate(2025, time.June, 30), Objective: "Grow awareness of the organic smoothie range"},
			{ID: 3, BrandID: 3, Budget: model.NewMoney(12000), Status: model.CampaignCompleted, StartDate: model.NewDate(2024, time.September, 1), EndDate: model.NewDate(2024, time.November, 30), Objective: "Autumn sneaker drop with try-on videos"},
		},
		Collaborations: []model.Collaboration{
			{ID: 1, InfluencerID: 1, CampaignID: 1, AgreedAmount: model.NewMoney(5000), ApprovalStatus: model.ApprovalApproved, DeadLine: datePtr(model.NewDate(2025, time.March, 15)), Deliverables: "1 long-form review video, 2 shorts"},
			{ID: 2, InfluencerID: 2, CampaignID: 2, AgreedAmount: model.NewMoney(2500), ApprovalStatus: model.ApprovalPending, DeadLine: datePtr(model.NewDate(2025, time.June, 1)), Deliverables: "3 Instagram reels"},
			{ID: 3, InfluencerID: 3, CampaignID: 3, AgreedAmount: model.NewMoney(4000), ApprovalStatus: model.ApprovalApproved, DeadLine: datePtr(model.NewDate(2024, time.October, 20)), Deliverables: "4 TikTok try-on clips"},
		},
		Payments: []model.Payment{
			{ID: 1, CollabID: 1, AmountPaid: model.NewMoney(2500), PaymentDate: model.NewDate(2025, time.February, 10), Status: model.PaymentCompleted, Mode: "Bank Transfer"},
			{ID: 2, CollabID: 3, AmountPaid: model.NewMoney(4000), PaymentDate: model.NewDate(2024, time.November, 5), Status: model.PaymentCompleted, Mode: "PayPal"},
		},
		Posts: []model.Post{
			{ID: 1, InfluencerID: 1, CollabID: 1, PostDate: model.NewDate(2025, time.March, 1), PostType: "Video", Likes: 18200, Shares: 940, Comments: 1270, Reach: 310000, EngagementRate: 0.0654},
			{ID: 2, InfluencerID: 3, CollabID: 3, PostDate: model.NewDate(2024, time.October, 12), PostType: "Reel", Likes: 52300, Shares: 3100, Comments: 2840, Reach: 690000, EngagementRate: 0.0844},
		},
	}
}
