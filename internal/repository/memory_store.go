package repository

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	appErrors "github.com/unclebandit/influencer-admin/internal/errors"
	"github.com/unclebandit/influencer-admin/internal/model"
	"github.com/unclebandit/influencer-admin/internal/seed"
)

// MemoryStore keeps every table in process memory with the same reference
// checks and cascading deletes as the Postgres schema. It starts seeded.
type MemoryStore struct {
	mu       sync.RWMutex
	data     *model.Snapshot
	nextID   map[model.Entity]int64
	activity []model.Activity
	lastAct  int64
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	m := &MemoryStore{now: time.Now}
	m.reset()
	return m
}

// Store exposes the memory store through the repository interfaces.
func (m *MemoryStore) Store() Store {
	records := make(map[model.Entity]RecordRepository, len(model.Entities))
	for _, e := range model.Entities {
		records[e] = &memoryRecords{store: m, entity: e}
	}
	return Store{Records: records, Snapshots: m, Activity: m}
}

func (m *MemoryStore) Load(ctx context.Context) (*model.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneSnapshot(m.data), nil
}

func (m *MemoryStore) Reset(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
	return nil
}

func (m *MemoryStore) reset() {
	m.data = seed.Dataset()
	created := m.now().UTC()
	for i := range m.data.Brands {
		m.data.Brands[i].CreatedAt = created
	}
	m.nextID = make(map[model.Entity]int64, len(model.Entities))
	for _, e := range model.Entities {
		m.nextID[e] = int64(m.data.Count(e)) + 1
	}
}

func (m *MemoryStore) Append(ctx context.Context, a model.Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.activity {
		if existing.EventID == a.EventID {
			return nil
		}
	}
	m.lastAct++
	a.ID = m.lastAct
	m.activity = append(m.activity, a)
	return nil
}

func (m *MemoryStore) Recent(ctx context.Context, limit int) ([]model.Activity, error) {
	m.mu.RLock()
	items := slices.Clone(m.activity)
	m.mu.RUnlock()

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].OccurredAt.Equal(items[j].OccurredAt) {
			return items[i].OccurredAt.After(items[j].OccurredAt)
		}
		return items[i].ID > items[j].ID
	})
	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}
	if items == nil {
		items = []model.Activity{}
	}
	return items, nil
}

type memoryRecords struct {
	store  *MemoryStore
	entity model.Entity
}

func (r *memoryRecords) Insert(ctx context.Context, rec model.Record) (int64, error) {
	m := r.store
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkReferences(rec); err != nil {
		return 0, err
	}
	id := m.nextID[r.entity]
	switch v := rec.(type) {
	case *model.Brand:
		b := *v
		b.ID, b.CreatedAt = id, m.now().UTC()
		m.data.Brands = append(m.data.Brands, b)
	case *model.Influencer:
		i := *v
		i.ID = id
		m.data.Influencers = append(m.data.Influencers, i)
	case *model.Campaign:
		c := *v
		c.ID = id
		m.data.Campaigns = append(m.data.Campaigns, c)
	case *model.Collaboration:
		c := *v
		c.ID, c.DeadLine = id, cloneDate(v.DeadLine)
		m.data.Collaborations = append(m.data.Collaborations, c)
	case *model.Payment:
		p := *v
		p.ID = id
		m.data.Payments = append(m.data.Payments, p)
	case *model.Post:
		p := *v
		p.ID = id
		m.data.Posts = append(m.data.Posts, p)
	}
	m.nextID[r.entity] = id + 1
	return id, nil
}

func (r *memoryRecords) Replace(ctx context.Context, id int64, rec model.Record) error {
	m := r.store
	m.mu.Lock()
	defer m.mu.Unlock()

	notFound := appErrors.NewNotFound(r.entity.Singular(), id)
	if err := m.checkReferences(rec); err != nil {
		return err
	}
	switch v := rec.(type) {
	case *model.Brand:
		i := slices.IndexFunc(m.data.Brands, func(b model.Brand) bool { return b.ID == id })
		if i < 0 {
			return notFound
		}
		b := *v
		b.ID, b.CreatedAt = id, m.data.Brands[i].CreatedAt
		m.data.Brands[i] = b
	case *model.Influencer:
		i := slices.IndexFunc(m.data.Influencers, func(x model.Influencer) bool { return x.ID == id })
		if i < 0 {
			return notFound
		}
		x := *v
		x.ID = id
		m.data.Influencers[i] = x
	case *model.Campaign:
		i := slices.IndexFunc(m.data.Campaigns, func(c model.Campaign) bool { return c.ID == id })
		if i < 0 {
			return notFound
		}
		c := *v
		c.ID = id
		m.data.Campaigns[i] = c
	case *model.Collaboration:
		i := slices.IndexFunc(m.data.Collaborations, func(c model.Collaboration) bool { return c.ID == id })
		if i < 0 {
			return notFound
		}
		c := *v
		c.ID, c.DeadLine = id, cloneDate(v.DeadLine)
		m.data.Collaborations[i] = c
	case *model.Payment:
		i := slices.IndexFunc(m.data.Payments, func(p model.Payment) bool { return p.ID == id })
		if i < 0 {
			return notFound
		}
		p := *v
		p.ID = id
		m.data.Payments[i] = p
	case *model.Post:
		i := slices.IndexFunc(m.data.Posts, func(p model.Post) bool { return p.ID == id })
		if i < 0 {
			return notFound
		}
		p := *v
		p.ID = id
		m.data.Posts[i] = p
	}
	return nil
}

func (r *memoryRecords) Delete(ctx context.Context, id int64) error {
	m := r.store
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.exists(r.entity, id) {
		return appErrors.NewNotFound(r.entity.Singular(), id)
	}
	switch r.entity {
	case model.EntityBrand:
		m.deleteBrand(id)
	case model.EntityInfluencer:
		m.deleteInfluencer(id)
	case model.EntityCampaign:
		m.deleteCampaign(id)
	case model.EntityCollaboration:
		m.deleteCollaboration(id)
	case model.EntityPayment:
		m.data.Payments = slices.DeleteFunc(m.data.Payments, func(p model.Payment) bool { return p.ID == id })
	case model.EntityPost:
		m.data.Posts = slices.DeleteFunc(m.data.Posts, func(p model.Post) bool { return p.ID == id })
	}
	return nil
}

func (m *MemoryStore) exists(e model.Entity, id int64) bool {
	switch e {
	case model.EntityBrand:
		return slices.ContainsFunc(m.data.Brands, func(b model.Brand) bool { return b.ID == id })
	case model.EntityInfluencer:
		return slices.ContainsFunc(m.data.Influencers, func(i model.Influencer) bool { return i.ID == id })
	case model.EntityCampaign:
		return slices.ContainsFunc(m.data.Campaigns, func(c model.Campaign) bool { return c.ID == id })
	case model.EntityCollaboration:
		return slices.ContainsFunc(m.data.Collaborations, func(c model.Collaboration) bool { return c.ID == id })
	case model.EntityPayment:
		return slices.ContainsFunc(m.data.Payments, func(p model.Payment) bool { return p.ID == id })
	case model.EntityPost:
		return slices.ContainsFunc(m.data.Posts, func(p model.Post) bool { return p.ID == id })
	}
	return false
}

type reference struct {
	field  string
	entity model.Entity
	id     int64
}

// checkReferences mirrors the foreign keys of the relational schema.
func (m *MemoryStore) checkReferences(rec model.Record) error {
	var refs []reference
	switch v := rec.(type) {
	case *model.Campaign:
		refs = []reference{{"brand_id", model.EntityBrand, v.BrandID}}
	case *model.Collaboration:
		refs = []reference{
			{"influencer_id", model.EntityInfluencer, v.InfluencerID},
			{"campaign_id", model.EntityCampaign, v.CampaignID},
		}
	case *model.Payment:
		refs = []reference{{"collab_id", model.EntityCollaboration, v.CollabID}}
	case *model.Post:
		refs = []reference{
			{"influencer_id", model.EntityInfluencer, v.InfluencerID},
			{"collab_id", model.EntityCollaboration, v.CollabID},
		}
	}
	for _, ref := range refs {
		if !m.exists(ref.entity, ref.id) {
			return appErrors.NewValidation("%s %d does not reference an existing %s", ref.field, ref.id, ref.entity.Singular())
		}
	}
	return nil
}

func (m *MemoryStore) deleteBrand(id int64) {
	m.data.Brands = slices.DeleteFunc(m.data.Brands, func(b model.Brand) bool { return b.ID == id })
	for _, c := range slices.Clone(m.data.Campaigns) {
		if c.BrandID == id {
			m.deleteCampaign(c.ID)
		}
	}
}

func (m *MemoryStore) deleteInfluencer(id int64) {
	m.data.Influencers = slices.DeleteFunc(m.data.Influencers, func(i model.Influencer) bool { return i.ID == id })
	for _, c := range slices.Clone(m.data.Collaborations) {
		if c.InfluencerID == id {
			m.deleteCollaboration(c.ID)
		}
	}
	m.data.Posts = slices.DeleteFunc(m.data.Posts, func(p model.Post) bool { return p.InfluencerID == id })
}

func (m *MemoryStore) deleteCampaign(id int64) {
	m.data.Campaigns = slices.DeleteFunc(m.data.Campaigns, func(c model.Campaign) bool { return c.ID == id })
	for _, c := range slices.Clone(m.data.Collaborations) {
		if c.CampaignID == id {
			m.deleteCollaboration(c.ID)
		}
	}
}

func (m *MemoryStore) deleteCollaboration(id int64) {
	m.data.Collaborations = slices.DeleteFunc(m.data.Collaborations, func(c model.Collaboration) bool { return c.ID == id })
	m.data.Payments = slices.DeleteFunc(m.data.Payments, func(p model.Payment) bool { return p.CollabID == id })
	m.data.Posts = slices.DeleteFunc(m.data.Posts, func(p model.Post) bool { return p.CollabID == id })
}

func cloneDate(d *model.Date) *model.Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

// cloneSnapshot copies every collection so callers never share backing
// arrays with the store.
func cloneSnapshot(s *model.Snapshot) *model.Snapshot {
	out := &model.Snapshot{
		Brands:         slices.Clone(s.Brands),
		Influencers:    slices.Clone(s.Influencers),
		Campaigns:      slices.Clone(s.Campaigns),
		Collaborations: slices.Clone(s.Collaborations),
		Payments:       slices.Clone(s.Payments),
		Posts:          slices.Clone(s.Posts),
	}
	for i := range out.Collaborations {
		out.Collaborations[i].DeadLine = cloneDate(out.Collaborations[i].DeadLine)
	}
	return out.Normalize()
}

var (
	_ RecordRepository            = (*memoryRecords)(nil)
	_ SnapshotRepositoryInterface = (*MemoryStore)(nil)
	_ ActivityRepositoryInterface = (*MemoryStore)(nil)
)
