package dto

import (
	"prizm_backend/internal/models"
)

// --- Requests ---

// SendMessageRequest appends to an application's thread.
// SenderProfileID is only honored for influencers authenticated outside the
// main account system; all other callers are resolved from their token.
type SendMessageRequest struct {
	SenderProfileID string                   `json:"sender_profile_id" validate:"omitempty,uuid"`
	Content         string                   `json:"content" validate:"omitempty,max=5000"`
	ImageURL        string                   `json:"image_url" validate:"omitempty,max=500"`
	ImageURLs       []string                 `json:"image_urls" validate:"omitempty,dive,max=500"`
	MessageType     models.MessageType       `json:"message_type" validate:"omitempty,oneof=text bank_info"`
	Visibility      models.MessageVisibility `json:"visibility" validate:"omitempty,is-message-visibility"`
	TargetType      string                   `json:"target_type" validate:"omitempty,oneof=company influencer"` // Admin only
}

// --- Responses ---

type ThreadResponse struct {
	ApplicationID string           `json:"application_id"`
	Messages      []models.Message `json:"messages"`
	Total         int              `json:"total"`
}
