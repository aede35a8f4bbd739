package models

type Favorite struct {
	BaseModel
	InfluencerID string `gorm:"not null;uniqueIndex:idx_fav_influencer_campaign" json:"influencer_id"`
	CampaignID   string `gorm:"not null;uniqueIndex:idx_fav_influencer_campaign" json:"campaign_id"`

	Campaign *Campaign `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`
}
