// internal/model/influencer.go
package model

import "strings"

type Influencer struct {
	ID             int64  `json:"influencer_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Niche          string `json:"niche"`
	SocialPlatform string `json:"social_platform"`
	FollowerCount  int64  `json:"follower_count"`
}

func (i *Influencer) Entity() Entity { return EntityInfluencer }

// FullName joins first and last name the way every view displays it.
func (i Influencer) FullName() string {
	return strings.TrimSpace(i.FirstName + " " + i.LastName)
}

func (i *Influencer) Validate() error {
	return firstError(
		requireText("first_name", i.FirstName),
		requireText("last_name", i.LastName),
		requireText("email", i.Email),
		optionalEmail("email", i.Email),
		nonNegativeCount("follower_count", i.FollowerCount),
	)
}
