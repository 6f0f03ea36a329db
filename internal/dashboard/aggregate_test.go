package dashboard

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/influencer-admin/internal/model"
	"github.com/unclebandit/influencer-admin/internal/seed"
)

var now = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

func datePtr(d model.Date) *model.Date { return &d }

// randomSnapshot builds a snapshot with arbitrary sizes and dangling
// references.
func randomSnapshot(r *rand.Rand) *model.Snapshot {
	s := model.EmptySnapshot()
	for i, n := 0, r.Intn(8); i < n; i++ {
		s.Influencers = append(s.Influencers, model.Influencer{
			ID: int64(i + 1), FirstName: "F", LastName: "L", FollowerCount: int64(r.Intn(5) * 1000),
		})
	}
	for i, n := 0, r.Intn(5); i < n; i++ {
		s.Campaigns = append(s.Campaigns, model.Campaign{ID: int64(i + 1), BrandID: int64(r.Intn(4)), Budget: model.NewMoney(int64(r.Intn(20000)))})
	}
	for i, n := 0, r.Intn(12); i < n; i++ {
		var deadline *model.Date
		if r.Intn(4) > 0 {
			deadline = datePtr(model.DateOf(now.AddDate(0, 0, r.Intn(60)-30)))
		}
		s.Collaborations = append(s.Collaborations, model.Collaboration{
			ID:           int64(i + 1),
			InfluencerID: int64(r.Intn(10)),
			CampaignID:   int64(r.Intn(7)),
			AgreedAmount: model.NewMoney(int64(r.Intn(5000))),
			DeadLine:     deadline,
		})
	}
	for i, n := 0, r.Intn(8); i < n; i++ {
		s.Payments = append(s.Payments, model.Payment{ID: int64(i + 1), CollabID: int64(r.Intn(14)), PaymentDate: model.DateOf(now.AddDate(0, 0, -r.Intn(90)))})
	}
	for i, n := 0, r.Intn(8); i < n; i++ {
		s.Posts = append(s.Posts, model.Post{ID: int64(i + 1), InfluencerID: int64(r.Intn(10)), PostDate: model.DateOf(now.AddDate(0, 0, -r.Intn(90)))})
	}
	return s
}

func TestTotalSpend(t *testing.T) {
	assert.True(t, TotalSpend(model.EmptySnapshot()).IsZero())
	assert.Equal(t, "11500", TotalSpend(seed.Dataset()).String())

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		s := randomSnapshot(r)
		want := decimal.Zero
		for _, c := range s.Collaborations {
			want = want.Add(c.AgreedAmount.Decimal)
		}
		assert.True(t, want.Equal(TotalSpend(s)))
	}
}

func TestTotalSpend_FractionalAmounts(t *testing.T) {
	s := model.EmptySnapshot()
	s.Collaborations = []model.Collaboration{
		{AgreedAmount: model.MoneyFromDecimal(decimal.RequireFromString("0.10"))},
		{AgreedAmount: model.MoneyFromDecimal(decimal.RequireFromString("0.20"))},
		{},
	}
	assert.Equal(t, "0.3", TotalSpend(s).String())
}

func TestTopInfluencer(t *testing.T) {
	_, ok := TopInfluencer(model.EmptySnapshot())
	assert.False(t, ok)

	top, ok := TopInfluencer(seed.Dataset())
	require.True(t, ok)
	assert.Equal(t, "Sofia Reyes", top.FullName())

	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		s := randomSnapshot(r)
		top, ok := TopInfluencer(s)
		assert.Equal(t, len(s.Influencers) > 0, ok)
		for _, inf := range s.Influencers {
			assert.GreaterOrEqual(t, top.FollowerCount, inf.FollowerCount)
		}
	}
}

func TestTopInfluencer_FirstWinsTie(t *testing.T) {
	s := model.EmptySnapshot()
	s.Influencers = []model.Influencer{
		{ID: 1, FirstName: "A", FollowerCount: 10},
		{ID: 2, FirstName: "B", FollowerCount: 50},
		{ID: 3, FirstName: "C", FollowerCount: 50},
	}
	top, ok := TopInfluencer(s)
	require.True(t, ok)
	assert.Equal(t, int64(2), top.ID)
}

func TestActiveCampaignCount(t *testing.T) {
	s := seed.Dataset()
	assert.Equal(t, 1, ActiveCampaignCount(s))

	s.Campaigns = append(s.Campaigns, model.Campaign{ID: 9, Status: "active"})
	assert.Equal(t, 1, ActiveCampaignCount(s), "match is case-sensitive")
}

func TestUpcomingDeadlines_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 300; i++ {
		s := randomSnapshot(r)
		got := UpcomingDeadlines(s, now)

		assert.LessOrEqual(t, len(got), ListLimit)
		for j, d := range got {
			assert.False(t, d.Due.Before(now), "deadline %s before now", d.Due)
			if j > 0 {
				assert.False(t, d.Due.Before(got[j-1].Due.Time), "not ascending")
			}
		}
	}
}

func TestUpcomingDeadlines_Seed(t *testing.T) {
	got := UpcomingDeadlines(seed.Dataset(), now)

	require.Len(t, got, 2)
	assert.Equal(t, "2025-03-15", got[0].Due.String())
	assert.Equal(t, "Aisha Khan", got[0].Influencer)
	assert.Equal(t, "1", got[0].CampaignRef)
	assert.Equal(t, "Launch the NovaBook laptop line to stude...", got[0].Objective)
	assert.Equal(t, "2025-06-01", got[1].Due.String())
}

func TestUpcomingDeadlines_DueTodayBeforeNow(t *testing.T) {
	s := model.EmptySnapshot()
	s.Collaborations = []model.Collaboration{{ID: 1, DeadLine: datePtr(model.DateOf(now))}}

	// a date is midnight UTC, so a deadline of today has passed once the day has started
	assert.Empty(t, UpcomingDeadlines(s, now))
	assert.Len(t, UpcomingDeadlines(s, model.DateOf(now).Time), 1)
}

func TestUpcomingDeadlines_Cap(t *testing.T) {
	s := model.EmptySnapshot()
	for i := 7; i >= 1; i-- {
		s.Collaborations = append(s.Collaborations, model.Collaboration{
			ID: int64(i), DeadLine: datePtr(model.DateOf(now.AddDate(0, 0, i))),
		})
	}
	got := UpcomingDeadlines(s, now)
	require.Len(t, got, 5)
	assert.Equal(t, int64(1), got[0].CollabID)
	assert.Equal(t, int64(5), got[4].CollabID)
}

func TestDanglingReferencesUsePlaceholders(t *testing.T) {
	s := model.EmptySnapshot()
	s.Campaigns = []model.Campaign{{ID: 1, BrandID: 42}}
	s.Collaborations = []model.Collaboration{{ID: 1, InfluencerID: 9, CampaignID: 9, DeadLine: datePtr(model.NewDate(2025, time.April, 1))}}
	s.Payments = []model.Payment{{ID: 1, CollabID: 77, PaymentDate: model.NewDate(2025, time.January, 1)}}
	s.Posts = []model.Post{{ID: 1, InfluencerID: 9, CollabID: 77}}

	v := Build(s, now)

	require.Len(t, v.Deadlines, 1)
	assert.Equal(t, UnknownName, v.Deadlines[0].Influencer)
	assert.Equal(t, UnknownCampaign, v.Deadlines[0].CampaignRef)
	assert.Empty(t, v.Deadlines[0].Objective)
	assert.Equal(t, UnknownName, v.Campaigns[0].Brand)
	assert.Equal(t, "Campaign #?", v.Collaborations[0].CampaignRef)
	assert.Equal(t, UnknownName, v.Collaborations[0].Influencer)
	assert.Equal(t, MissingCollab, v.Payments[0].Collab)
	assert.Equal(t, UnknownName, v.RecentPayments[0].Influencer)
	assert.Equal(t, UnknownName, v.Posts[0].Influencer)
	assert.Equal(t, NoInfluencer, v.KPIs.TopInfluencer)
}

func TestBuild_NeverPanicsOnRandomSnapshots(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 300; i++ {
		s := randomSnapshot(r)
		assert.NotPanics(t, func() { Build(s, now) })
	}
	assert.NotPanics(t, func() { Build(nil, now) })
}

func TestRecentListsSortDescendingWithoutMutating(t *testing.T) {
	s := model.EmptySnapshot()
	for i := 1; i <= 7; i++ {
		s.Posts = append(s.Posts, model.Post{ID: int64(i), PostDate: model.NewDate(2025, time.January, i)})
		s.Payments = append(s.Payments, model.Payment{ID: int64(i), PaymentDate: model.NewDate(2025, time.February, i)})
	}

	posts := RecentPosts(s)
	require.Len(t, posts, 5)
	assert.Equal(t, int64(7), posts[0].PostID)
	assert.Equal(t, int64(3), posts[4].PostID)

	payments := RecentPayments(s)
	require.Len(t, payments, 5)
	assert.Equal(t, int64(7), payments[0].PaymentID)

	assert.Equal(t, int64(1), s.Posts[0].ID, "snapshot order is untouched")
	assert.Equal(t, int64(1), s.Payments[0].ID)
}

func TestTopInfluencers(t *testing.T) {
	got := TopInfluencers(seed.Dataset())
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Sofia Reyes", "Aisha Khan", "Leo Martins"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestCampaignBudgetSeries(t *testing.T) {
	got := CampaignBudgetSeries(seed.Dataset())
	require.Len(t, got, 3)
	assert.Equal(t, "C#1", got[0].Label)
	assert.Equal(t, "15000", got[0].Budget.String())
	assert.Equal(t, "C#3", got[2].Label)
}

func TestBuild_Seed(t *testing.T) {
	v := Build(seed.Dataset(), now)

	assert.Equal(t, 3, v.KPIs.Brands)
	assert.Equal(t, 1, v.KPIs.ActiveCampaigns)
	assert.Equal(t, "11500", v.KPIs.TotalSpend.String())
	assert.Equal(t, "Sofia Reyes", v.KPIs.TopInfluencer)
	assert.Equal(t, "2 upcoming", v.DeadlineLabel)
	assert.Equal(t, "TechNova", v.Campaigns[0].Brand)
	assert.Equal(t, "Campaign #1", v.Collaborations[0].CampaignRef)
	assert.Equal(t, "1", v.Payments[0].Collab)
	assert.Equal(t, "Aisha Khan", v.RecentPayments[0].Influencer)
	assert.Len(t, v.Brands, 3)
	assert.Len(t, v.Posts, 2)
}

func TestDeadlineLabel(t *testing.T) {
	assert.Equal(t, "No deadlines", DeadlineLabel(0))
	assert.Equal(t, "3 upcoming", DeadlineLabel(3))
}
