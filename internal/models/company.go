package models

// Company is a brand/client organization. UserID is the owning account
// used for authentication and as the company side of message threads.
type Company struct {
	BaseModel
	UserID      string `gorm:"uniqueIndex;not null" json:"user_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	WebsiteURL  string `json:"website_url"`
	LogoURL     string `json:"logo_url"`
	City        string `json:"city"`
	IsVerified  bool   `gorm:"default:false" json:"is_verified"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
