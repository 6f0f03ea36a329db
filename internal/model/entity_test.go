package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/influencer-admin/internal/errors"
)

func TestParseEntity(t *testing.T) {
	for _, name := range []string{"post", "posts", " Posts "} {
		e, err := ParseEntity(name)
		require.NoError(t, err, name)
		assert.Equal(t, EntityPost, e)
	}
	_, err := ParseEntity("widgets")
	assert.Error(t, err)
}

func TestEntityNames(t *testing.T) {
	assert.Equal(t, "collaborations", EntityCollaboration.Path())
	assert.Equal(t, "collab_id", EntityCollaboration.IDField())
	assert.Equal(t, "brand_id", EntityBrand.IDField())
	assert.Equal(t, "posts", EntityPost.Table())
}

func TestFieldsNeverIncludeID(t *testing.T) {
	for _, e := range Entities {
		require.NotEmpty(t, e.Fields(), e)
		for _, f := range e.Fields() {
			assert.NotEqual(t, e.IDField(), f.Name, e)
		}
	}
}

func TestNewRecordDecodesEveryEntity(t *testing.T) {
	for _, e := range Entities {
		rec, err := NewRecord(e)
		require.NoError(t, err)
		assert.Equal(t, e, rec.Entity())
	}
	_, err := NewRecord("widget")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		rec     Record
		body    string
		wantErr string
	}{
		{"brand ok", &Brand{}, `{"brand_name":"Zest","contact_email":"hi@zest.io"}`, ""},
		{"brand name required", &Brand{}, `{"brand_name":"  "}`, "brand_name is required"},
		{"brand bad email", &Brand{}, `{"brand_name":"Zest","contact_email":"nope"}`, "contact_email is not a valid email address"},
		{"influencer negative followers", &Influencer{}, `{"first_name":"A","last_name":"B","email":"a@b.co","follower_count":-1}`, "follower_count must not be negative"},
		{"campaign bad status", &Campaign{}, `{"brand_id":1,"status":"Paused","start_date":"2025-01-01","end_date":"2025-02-01"}`, `status "Paused" is not one of Planning, Active, Completed, Cancelled`},
		{"campaign end before start", &Campaign{}, `{"brand_id":1,"start_date":"2025-02-01","end_date":"2025-01-01"}`, "end_date must not be before start_date"},
		{"collaboration ok without deadline", &Collaboration{}, `{"influencer_id":1,"campaign_id":1,"agreed_amount":100}`, ""},
		{"payment needs date", &Payment{}, `{"collab_id":1,"amount_paid":10}`, "payment_date is required"},
		{"post rate out of range", &Post{}, `{"influencer_id":1,"collab_id":1,"post_date":"2025-01-01","engagement_rate":1.5}`, "engagement_rate must be between 0 and 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, json.Unmarshal([]byte(tt.body), tt.rec))
			err := tt.rec.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, appErrors.IsValidation(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidateAppliesStatusDefaults(t *testing.T) {
	c := &Campaign{BrandID: 1, StartDate: NewDate(2025, 1, 1), EndDate: NewDate(2025, 1, 1)}
	require.NoError(t, c.Validate())
	assert.Equal(t, CampaignPlanning, c.Status)

	col := &Collaboration{InfluencerID: 1, CampaignID: 1, DeadLine: &Date{}}
	require.NoError(t, col.Validate())
	assert.Equal(t, ApprovalPending, col.ApprovalStatus)
	assert.Nil(t, col.DeadLine)

	p := &Payment{CollabID: 1, PaymentDate: NewDate(2025, 1, 1)}
	require.NoError(t, p.Validate())
	assert.Equal(t, PaymentPending, p.Status)
}

func TestSnapshotNormalizeAndCount(t *testing.T) {
	s := (&Snapshot{}).Normalize()
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"brands":[],"influencers":[],"campaigns":[],"collaborations":[],"payments":[],"posts":[]}`, string(b))

	s.Posts = append(s.Posts, Post{ID: 1})
	assert.Equal(t, 1, s.Count(EntityPost))
	assert.Equal(t, 0, s.Count("widget"))
}
