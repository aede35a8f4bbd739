package dto

import (
	"prizm_backend/internal/models"
	"time"
)

// --- Requests ---

type ApplyRequest struct {
	InfluencerProfileID string `json:"influencer_profile_id" validate:"-"` // Set by server or supplied by external-login clients
	CampaignID          string `json:"campaign_id" validate:"-"`           // Set from URL
	Motivation          string `json:"motivation" validate:"omitempty,max=2000"`
}

// AdvanceStatusRequest drives the status transition service. The
// notification bundle is optional; type defaults to "info" and link to the
// influencer application list.
type AdvanceStatusRequest struct {
	NewStatus           models.ApplicationStatus `json:"new_status" validate:"required,is-application-status"`
	Message             string                   `json:"message" validate:"omitempty,max=2000"`
	NotificationTitle   string                   `json:"notification_title" validate:"omitempty,max=100"`
	NotificationMessage string                   `json:"notification_message" validate:"omitempty,max=1000"`
	NotificationType    string                   `json:"notification_type" validate:"omitempty,oneof=info success warning error"`
	NotificationLink    string                   `json:"notification_link" validate:"omitempty,max=500"`
	Override            bool                     `json:"override"` // Admin-only: bypass the transition chain
}

// --- Responses ---

type ApplicationResponse struct {
	ID           string                    `json:"id"`
	CampaignID   string                    `json:"campaign_id"`
	CompanyID    string                    `json:"company_id"`
	InfluencerID string                    `json:"influencer_id"`
	Status       models.ApplicationStatus  `json:"status"`
	StatusLabel  string                    `json:"status_label"`
	Motivation   string                    `json:"motivation"`
	AppliedAt    time.Time                 `json:"applied_at"`
	UpdatedAt    time.Time                 `json:"updated_at"`
	Campaign     *models.Campaign          `json:"campaign,omitempty"`
	Company      *models.Company           `json:"company,omitempty"`
	Influencer   *models.InfluencerProfile `json:"influencer,omitempty"`
}

// SideEffects reports which best-effort steps of a status transition ran.
// The primary status write is not listed: its failure fails the whole call.
type SideEffects struct {
	MessageSent        bool     `json:"message_sent"`
	NotificationSent   bool     `json:"notification_sent"`
	BankInfoForwarded  bool     `json:"bank_info_forwarded"`
	PaymentCreated     bool     `json:"payment_created"`
	PaymentsMarkedPaid bool     `json:"payments_marked_paid"`
	Errors             []string `json:"errors,omitempty"`
}

type AdvanceStatusResponse struct {
	Application *ApplicationResponse `json:"application"`
	SideEffects SideEffects          `json:"side_effects"`
}
