// internal/model/brand.go
package model

import "time"

type Brand struct {
	ID            int64     `json:"brand_id"`
	Name          string    `json:"brand_name"`
	Industry      string    `json:"industry"`
	ContactPerson string    `json:"contact_person"`
	ContactEmail  string    `json:"contact_email"`
	Website       string    `json:"website"`
	CreatedAt     time.Time `json:"created_at"`
}

func (b *Brand) Entity() Entity { return EntityBrand }

func (b *Brand) Validate() error {
	return firstError(
		requireText("brand_name", b.Name),
		optionalEmail("contact_email", b.ContactEmail),
	)
}
