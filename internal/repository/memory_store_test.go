package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/influencer-admin/internal/errors"
	"github.com/unclebandit/influencer-admin/internal/model"
)

func TestMemoryStore_StartsSeeded(t *testing.T) {
	store := NewMemoryStore()

	snap, err := store.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, snap.Brands, 3)
	assert.Len(t, snap.Influencers, 3)
	assert.Len(t, snap.Campaigns, 3)
	assert.Len(t, snap.Collaborations, 3)
	assert.Len(t, snap.Payments, 2)
	assert.Len(t, snap.Posts, 2)
	assert.Equal(t, "TechNova", snap.Brands[0].Name)
	assert.False(t, snap.Brands[0].CreatedAt.IsZero())
}

func TestMemoryStore_InsertAssignsNextID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore().Store()

	id, err := s.Records[model.EntityBrand].Insert(ctx, &model.Brand{Name: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)

	snap, _ := s.Snapshots.Load(ctx)
	require.Len(t, snap.Brands, 4)
	assert.Equal(t, "Acme", snap.Brands[3].Name)
	assert.Equal(t, int64(4), snap.Brands[3].ID)
}

func TestMemoryStore_InsertRejectsMissingReference(t *testing.T) {
	s := NewMemoryStore().Store()

	_, err := s.Records[model.EntityCampaign].Insert(context.Background(), &model.Campaign{
		BrandID:   99,
		Status:    model.CampaignPlanning,
		StartDate: model.NewDate(2025, time.January, 1),
		EndDate:   model.NewDate(2025, time.February, 1),
	})

	require.Error(t, err)
	assert.True(t, appErrors.IsValidation(err))
	assert.Contains(t, err.Error(), "brand_id 99")
}

func TestMemoryStore_ReplaceKeepsIDAndCreatedAt(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	s := m.Store()

	before, _ := m.Load(ctx)
	err := s.Records[model.EntityBrand].Replace(ctx, 2, &model.Brand{ID: 77, Name: "GreenLeaf"})
	require.NoError(t, err)

	after, _ := m.Load(ctx)
	assert.Equal(t, int64(2), after.Brands[1].ID)
	assert.Equal(t, "GreenLeaf", after.Brands[1].Name)
	assert.Equal(t, before.Brands[1].CreatedAt, after.Brands[1].CreatedAt)
	assert.Empty(t, after.Brands[1].Industry)
}

func TestMemoryStore_ReplaceAndDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore().Store()

	err := s.Records[model.EntityInfluencer].Replace(ctx, 42, &model.Influencer{FirstName: "A", LastName: "B", Email: "a@b.c"})
	assert.True(t, appErrors.IsNotFound(err))

	err = s.Records[model.EntityPost].Delete(ctx, 42)
	assert.True(t, appErrors.IsNotFound(err))
}

func TestMemoryStore_DeleteCampaignCascades(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	require.NoError(t, m.Store().Records[model.EntityCampaign].Delete(ctx, 1))

	snap, _ := m.Load(ctx)
	assert.Len(t, snap.Campaigns, 2)
	assert.Len(t, snap.Collaborations, 2)
	for _, c := range snap.Collaborations {
		assert.NotEqual(t, int64(1), c.CampaignID)
	}
	// collaboration 1 carried payment 1 and post 1
	assert.Len(t, snap.Payments, 1)
	assert.Len(t, snap.Posts, 1)
	assert.Equal(t, int64(3), snap.Payments[0].CollabID)
}

func TestMemoryStore_DeleteBrandCascadesThroughCampaigns(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	require.NoError(t, m.Store().Records[model.EntityBrand].Delete(ctx, 3))

	snap, _ := m.Load(ctx)
	assert.Len(t, snap.Brands, 2)
	assert.Len(t, snap.Campaigns, 2)
	assert.Len(t, snap.Collaborations, 2)
	assert.Len(t, snap.Payments, 1)
	assert.Len(t, snap.Posts, 1)
}

func TestMemoryStore_LoadReturnsIndependentCopy(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	first, _ := m.Load(ctx)
	first.Brands[0].Name = "mutated"
	*first.Collaborations[0].DeadLine = model.NewDate(2000, time.January, 1)

	second, _ := m.Load(ctx)
	assert.Equal(t, "TechNova", second.Brands[0].Name)
	assert.Equal(t, "2025-03-15", second.Collaborations[0].DeadLine.String())
}

func TestMemoryStore_ResetIsIdempotent(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	s := m.Store()

	_, err := s.Records[model.EntityBrand].Insert(ctx, &model.Brand{Name: "Extra"})
	require.NoError(t, err)
	require.NoError(t, s.Records[model.EntityCampaign].Delete(ctx, 1))

	for i := 0; i < 2; i++ {
		require.NoError(t, m.Reset(ctx))
		snap, _ := m.Load(ctx)
		assert.Len(t, snap.Brands, 3)
		assert.Len(t, snap.Influencers, 3)
		assert.Len(t, snap.Campaigns, 3)
		assert.Len(t, snap.Collaborations, 3)
		assert.Len(t, snap.Payments, 2)
		assert.Len(t, snap.Posts, 2)
	}

	id, err := s.Records[model.EntityBrand].Insert(ctx, &model.Brand{Name: "After reset"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
}

func TestMemoryStore_ActivityDedupAndOrder(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, m.Append(ctx, model.Activity{EventID: "a", Action: model.ActionCreate, OccurredAt: base}))
	require.NoError(t, m.Append(ctx, model.Activity{EventID: "b", Action: model.ActionDelete, OccurredAt: base.Add(time.Minute)}))
	require.NoError(t, m.Append(ctx, model.Activity{EventID: "a", Action: model.ActionCreate, OccurredAt: base}))

	items, err := m.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].EventID)
	assert.Equal(t, "a", items[1].EventID)

	items, _ = m.Recent(ctx, 1)
	assert.Len(t, items, 1)
}
