package models

import (
	"gorm.io/datatypes"
)

// InfluencerProfile is an influencer's public profile. UserID is nullable:
// influencers onboarded through an external login may not have a linked
// account, in which case the profile ID itself stands in as their
// messaging/notification identity.
type InfluencerProfile struct {
	BaseModel
	UserID       *string        `gorm:"uniqueIndex" json:"user_id"`
	DisplayName  string         `gorm:"not null" json:"display_name"`
	Bio          string         `gorm:"type:text" json:"bio"`
	InstagramURL string         `json:"instagram_url"`
	Followers    int            `gorm:"default:0" json:"followers"`
	Categories   datatypes.JSON `gorm:"type:jsonb" json:"categories"`
	City         string         `json:"city"`
	AvatarURL    string         `json:"avatar_url"`
	IsPublic     bool           `gorm:"default:true" json:"is_public"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// RecipientID resolves the identity messages and notifications for this
// influencer should be addressed to: the linked account when one exists,
// otherwise the profile itself.
func (p *InfluencerProfile) RecipientID() string {
	if p.UserID != nil && *p.UserID != "" {
		return *p.UserID
	}
	return p.ID
}
