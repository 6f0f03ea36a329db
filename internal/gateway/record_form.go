package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"

	appErrors "github.com/unclebandit/influencer-admin/internal/errors"
	"github.com/unclebandit/influencer-admin/internal/model"
)

// RecordForm returns the editable fields of an existing record as a form,
// the way an edit dialog is prefilled. Absent values are empty strings.
func RecordForm(s *model.Snapshot, entity model.Entity, id int64) (Form, error) {
	rec, ok := findRecord(s, entity, id)
	if !ok {
		return nil, appErrors.NewNotFound(entity.Singular(), id)
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode %s %d: %w", entity.Singular(), id, err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var values map[string]any
	if err := dec.Decode(&values); err != nil {
		return nil, fmt.Errorf("decode %s %d: %w", entity.Singular(), id, err)
	}

	form := make(Form, len(entity.Fields()))
	for _, f := range entity.Fields() {
		switch v := values[f.Name].(type) {
		case nil:
			form[f.Name] = ""
		case string:
			form[f.Name] = v
		case json.Number:
			form[f.Name] = v.String()
		default:
			form[f.Name] = fmt.Sprint(v)
		}
	}
	return form, nil
}

func findRecord(s *model.Snapshot, entity model.Entity, id int64) (any, bool) {
	if s == nil {
		return nil, false
	}
	switch entity {
	case model.EntityBrand:
		for i := range s.Brands {
			if s.Brands[i].ID == id {
				return s.Brands[i], true
			}
		}
	case model.EntityInfluencer:
		for i := range s.Influencers {
			if s.Influencers[i].ID == id {
				return s.Influencers[i], true
			}
		}
	case model.EntityCampaign:
		for i := range s.Campaigns {
			if s.Campaigns[i].ID == id {
				return s.Campaigns[i], true
			}
		}
	case model.EntityCollaboration:
		for i := range s.Collaborations {
			if s.Collaborations[i].ID == id {
				return s.Collaborations[i], true
			}
		}
	case model.EntityPayment:
		for i := range s.Payments {
			if s.Payments[i].ID == id {
				return s.Payments[i], true
			}
		}
	case model.EntityPost:
		for i := range s.Posts {
			if s.Posts[i].ID == id {
				return s.Posts[i], true
			}
		}
	}
	return nil, false
}
