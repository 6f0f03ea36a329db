// internal/model/collaboration.go
package model

import appErrors "github.com/unclebandit/influencer-admin/internal/errors"

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

type Collaboration struct {
	ID             int64          `json:"collab_id"`
	InfluencerID   int64          `json:"influencer_id"`
	CampaignID     int64          `json:"campaign_id"`
	AgreedAmount   Money          `json:"agreed_amount"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	// DeadLine is optional; nil when no deadline was agreed.
	DeadLine     *Date  `json:"dead_line"`
	Deliverables string `json:"deliverables"`
}

func (c *Collaboration) Entity() Entity { return EntityCollaboration }

func (c *Collaboration) Validate() error {
	if c.ApprovalStatus == "" {
		c.ApprovalStatus = ApprovalPending
	}
	if !c.ApprovalStatus.Valid() {
		return appErrors.NewValidation("approval_status %q is not one of Pending, Approved, Rejected", c.ApprovalStatus)
	}
	if c.DeadLine != nil && c.DeadLine.IsZero() {
		c.DeadLine = nil
	}
	return firstError(
		requireRef("influencer_id", c.InfluencerID),
		requireRef("campaign_id", c.CampaignID),
		nonNegativeMoney("agreed_amount", c.AgreedAmount),
	)
}
