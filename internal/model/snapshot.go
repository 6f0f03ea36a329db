// internal/model/snapshot.go
package model

// Snapshot is a full copy of all six tables taken at one point in time.
// It is treated as immutable once published; edits replace whole records
// on the server and arrive in the next snapshot.
type Snapshot struct {
	Brands         []Brand         `json:"brands"`
	Influencers    []Influencer    `json:"influencers"`
	Campaigns      []Campaign      `json:"campaigns"`
	Collaborations []Collaboration `json:"collaborations"`
	Payments       []Payment       `json:"payments"`
	Posts          []Post          `json:"posts"`
}

// EmptySnapshot has all six collections present and empty.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Brands:         []Brand{},
		Influencers:    []Influencer{},
		Campaigns:      []Campaign{},
		Collaborations: []Collaboration{},
		Payments:       []Payment{},
		Posts:          []Post{},
	}
}

// Normalize replaces nil collections with empty ones so JSON always carries arrays.
func (s *Snapshot) Normalize() *Snapshot {
	if s.Brands == nil {
		s.Brands = []Brand{}
	}
	if s.Influencers == nil {
		s.Influencers = []Influencer{}
	}
	if s.Campaigns == nil {
		s.Campaigns = []Campaign{}
	}
	if s.Collaborations == nil {
		s.Collaborations = []Collaboration{}
	}
	if s.Payments == nil {
		s.Payments = []Payment{}
	}
	if s.Posts == nil {
		s.Posts = []Post{}
	}
	return s
}

// Count returns the number of records held for an entity.
func (s *Snapshot) Count(e Entity) int {
	switch e {
	case EntityBrand:
		return len(s.Brands)
	case EntityInfluencer:
		return len(s.Influencers)
	case EntityCampaign:
		return len(s.Campaigns)
	case EntityCollaboration:
		return len(s.Collaborations)
	case EntityPayment:
		return len(s.Payments)
	case EntityPost:
		return len(s.Posts)
	}
	return 0
}
