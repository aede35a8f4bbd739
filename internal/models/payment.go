package models

import (
	"time"
)

// Payment is one reward disbursement record. Created once when the
// application enters payment_pending, marked paid when it completes.
type Payment struct {
	BaseModel
	ApplicationID    string        `gorm:"not null;index" json:"application_id"`
	CampaignID       string        `gorm:"not null" json:"campaign_id"`
	CompanyID        string        `gorm:"not null;index" json:"company_id"`
	InfluencerUserID string        `gorm:"not null;index" json:"influencer_user_id"`
	Amount           float64       `json:"amount"`
	Status           PaymentStatus `gorm:"default:'pending'" json:"status"`
	PaidAt           *time.Time    `json:"paid_at"`
}
