package models

import (
	"gorm.io/datatypes"
	"time"
)

type Campaign struct {
	BaseModel
	CompanyID         string         `gorm:"not null;index" json:"company_id"`
	Title             string         `gorm:"not null" json:"title"`
	Description       string         `gorm:"type:text" json:"description"`
	Categories        datatypes.JSON `gorm:"type:jsonb" json:"categories"`
	BudgetMin         *float64       `json:"budget_min"`
	BudgetMax         *float64       `json:"budget_max"`
	RequiredFollowers *int           `json:"required_followers"`
	City              string         `json:"city"`
	ImageURL          string         `json:"image_url"`
	Deadline          *time.Time     `json:"deadline"`
	Status            CampaignStatus `gorm:"default:'draft';index" json:"status"`
	Views             int            `gorm:"default:0" json:"views"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

// RewardAmount is the payment amount recorded when an application reaches
// payment_pending: budget_max, falling back to budget_min, then zero.
func (c *Campaign) RewardAmount() float64 {
	if c.BudgetMax != nil {
		return *c.BudgetMax
	}
	if c.BudgetMin != nil {
		return *c.BudgetMin
	}
	return 0
}
