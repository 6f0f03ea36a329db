// internal/model/entity.go
package model

import (
	"fmt"
	"strings"
)

// Entity identifies one of the six tables.
type Entity string

const (
	EntityBrand         Entity = "brand"
	EntityInfluencer    Entity = "influencer"
	EntityCampaign      Entity = "campaign"
	EntityCollaboration Entity = "collaboration"
	EntityPayment       Entity = "payment"
	EntityPost          Entity = "post"
)

// Entities lists every entity in foreign-key dependency order.
var Entities = []Entity{
	EntityBrand,
	EntityInfluencer,
	EntityCampaign,
	EntityCollaboration,
	EntityPayment,
	EntityPost,
}

// FieldKind tells form coercion how to convert a submitted string.
type FieldKind int

const (
	KindText FieldKind = iota
	KindInt
	KindRef
	KindMoney
	KindRate
	KindDate
)

type Field struct {
	Name string
	Kind FieldKind
}

var editableFields = map[Entity][]Field{
	EntityBrand: {
		{"brand_name", KindText},
		{"industry", KindText},
		{"contact_person", KindText},
		{"contact_email", KindText},
		{"website", KindText},
	},
	EntityInfluencer: {
		{"first_name", KindText},
		{"last_name", KindText},
		{"email", KindText},
		{"phone", KindText},
		{"niche", KindText},
		{"social_platform", KindText},
		{"follower_count", KindInt},
	},
	EntityCampaign: {
		{"brand_id", KindRef},
		{"budget", KindMoney},
		{"status", KindText},
		{"start_date", KindDate},
		{"end_date", KindDate},
		{"objective", KindText},
	},
	EntityCollaboration: {
		{"influencer_id", KindRef},
		{"campaign_id", KindRef},
		{"agreed_amount", KindMoney},
		{"approval_status", KindText},
		{"dead_line", KindDate},
		{"deliverables", KindText},
	},
	EntityPayment: {
		{"collab_id", KindRef},
		{"amount_paid", KindMoney},
		{"payment_date", KindDate},
		{"status", KindText},
		{"mode", KindText},
	},
	EntityPost: {
		{"influencer_id", KindRef},
		{"collab_id", KindRef},
		{"post_date", KindDate},
		{"post_type", KindText},
		{"likes", KindInt},
		{"shares", KindInt},
		{"comments", KindInt},
		{"reach", KindInt},
		{"engagement_rate", KindRate},
	},
}

// ParseEntity accepts the singular or plural name ("post", "posts").
func ParseEntity(name string) (Entity, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range Entities {
		if name == string(e) || name == e.Path() {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown entity %q", name)
}

func (e Entity) Singular() string { return string(e) }

// Path is the plural URL segment and table name.
func (e Entity) Path() string { return string(e) + "s" }

func (e Entity) Table() string { return e.Path() }

// IDField is the identifier column. Collaborations use collab_id.
func (e Entity) IDField() string {
	if e == EntityCollaboration {
		return "collab_id"
	}
	return string(e) + "_id"
}

// Fields returns the editable field set, which is resent in full on update.
func (e Entity) Fields() []Field {
	return editableFields[e]
}

// NewRecord returns a zero record of the entity, ready for JSON decoding.
func NewRecord(e Entity) (Record, error) {
	switch e {
	case EntityBrand:
		return &Brand{}, nil
	case EntityInfluencer:
		return &Influencer{}, nil
	case EntityCampaign:
		return &Campaign{}, nil
	case EntityCollaboration:
		return &Collaboration{}, nil
	case EntityPayment:
		return &Payment{}, nil
	case EntityPost:
		return &Post{}, nil
	}
	return nil, fmt.Errorf("unknown entity %q", e)
}

// Record is implemented by the six entity structs.
type Record interface {
	Entity() Entity
	Validate() error
}
