package dto

// --- Requests ---

type UpdateCompanyRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	WebsiteURL  *string `json:"website_url,omitempty" validate:"omitempty,max=500"`
	LogoURL     *string `json:"logo_url,omitempty" validate:"omitempty,max=500"`
	City        *string `json:"city,omitempty" validate:"omitempty,max=100"`
}

type UpdateInfluencerProfileRequest struct {
	DisplayName  *string  `json:"display_name,omitempty" validate:"omitempty,min=1,max=100"`
	Bio          *string  `json:"bio,omitempty" validate:"omitempty,max=5000"`
	InstagramURL *string  `json:"instagram_url,omitempty" validate:"omitempty,max=500"`
	Followers    *int     `json:"followers,omitempty" validate:"omitempty,min=0"`
	Categories   []string `json:"categories,omitempty"`
	City         *string  `json:"city,omitempty" validate:"omitempty,max=100"`
	AvatarURL    *string  `json:"avatar_url,omitempty" validate:"omitempty,max=500"`
	IsPublic     *bool    `json:"is_public,omitempty"`
}
