package models

import "time"

// Application is one influencer's candidacy for one campaign. The
// (campaign, influencer) pair is unique at the storage level; a violation
// surfaces as the duplicate-application error.
type Application struct {
	BaseModel
	CampaignID   string            `gorm:"not null;uniqueIndex:idx_app_campaign_influencer" json:"campaign_id"`
	CompanyID    string            `gorm:"not null;index" json:"company_id"`
	InfluencerID string            `gorm:"not null;uniqueIndex:idx_app_campaign_influencer" json:"influencer_id"`
	Status       ApplicationStatus `gorm:"default:'applied';index" json:"status"`
	Motivation   string            `gorm:"type:text" json:"motivation"`
	AppliedAt    time.Time         `gorm:"default:now()" json:"applied_at"`

	Campaign   *Campaign          `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`
	Company    *Company           `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Influencer *InfluencerProfile `gorm:"foreignKey:InfluencerID" json:"influencer,omitempty"`
}
