// internal/model/campaign.go
package model

import appErrors "github.com/unclebandit/influencer-admin/internal/errors"

type CampaignStatus string

const (
	CampaignPlanning  CampaignStatus = "Planning"
	CampaignActive    CampaignStatus = "Active"
	CampaignCompleted CampaignStatus = "Completed"
	CampaignCancelled CampaignStatus = "Cancelled"
)

func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignPlanning, CampaignActive, CampaignCompleted, CampaignCancelled:
		return true
	}
	return false
}

type Campaign struct {
	ID        int64          `json:"campaign_id"`
	BrandID   int64          `json:"brand_id"`
	Budget    Money          `json:"budget"`
	Status    CampaignStatus `json:"status"`
	StartDate Date           `json:"start_date"`
	EndDate   Date           `json:"end_date"`
	Objective string         `json:"objective"`
}

func (c *Campaign) Entity() Entity { return EntityCampaign }

func (c *Campaign) Validate() error {
	if c.Status == "" {
		c.Status = CampaignPlanning
	}
	if !c.Status.Valid() {
		return appErrors.NewValidation("status %q is not one of Planning, Active, Completed, Cancelled", c.Status)
	}
	if err := firstError(
		requireRef("brand_id", c.BrandID),
		nonNegativeMoney("budget", c.Budget),
		requireDate("start_date", c.StartDate),
		requireDate("end_date", c.EndDate),
	); err != nil {
		return err
	}
	if c.EndDate.Before(c.StartDate.Time) {
		return appErrors.NewValidation("end_date must not be before start_date")
	}
	return nil
}
