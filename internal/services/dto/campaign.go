package dto

import (
	"prizm_backend/internal/models"
	"time"
)

// --- Campaign Requests ---

type CreateCampaignRequest struct {
	CompanyID         string     `json:"company_id" validate:"-"` // Set by server
	Title             string     `json:"title" validate:"required,min=3,max=100"`
	Description       string     `json:"description" validate:"omitempty,max=5000"`
	Categories        []string   `json:"categories"`
	BudgetMin         *float64   `json:"budget_min" validate:"omitempty,min=0"`
	BudgetMax         *float64   `json:"budget_max" validate:"omitempty,min=0"`
	RequiredFollowers *int       `json:"required_followers" validate:"omitempty,min=0"`
	City              string     `json:"city"`
	ImageURL          string     `json:"image_url" validate:"omitempty,max=500"`
	Deadline          *time.Time `json:"deadline"`
}

type UpdateCampaignRequest struct {
	Title             *string    `json:"title,omitempty" validate:"omitempty,min=3,max=100"`
	Description       *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	Categories        []string   `json:"categories,omitempty"`
	BudgetMin         *float64   `json:"budget_min,omitempty" validate:"omitempty,min=0"`
	BudgetMax         *float64   `json:"budget_max,omitempty" validate:"omitempty,min=0"`
	RequiredFollowers *int       `json:"required_followers,omitempty" validate:"omitempty,min=0"`
	City              *string    `json:"city,omitempty"`
	ImageURL          *string    `json:"image_url,omitempty"`
	Deadline          *time.Time `json:"deadline,omitempty"`
}

type CampaignSearchCriteria struct {
	Query     string   `form:"q"`
	City      string   `form:"city"`
	Category  string   `form:"category"`
	MinBudget *float64 `form:"min_budget"`
	MaxBudget *float64 `form:"max_budget"`
	Page      int      `form:"page"`
	PageSize  int      `form:"page_size"`
	SortBy    string   `form:"sort_by"`
	SortOrder string   `form:"sort_order"`
}

// --- Campaign Responses ---

type CampaignResponse struct {
	ID                string                `json:"id"`
	CompanyID         string                `json:"company_id"`
	Title             string                `json:"title"`
	Description       string                `json:"description"`
	Categories        []string              `json:"categories"`
	BudgetMin         *float64              `json:"budget_min"`
	BudgetMax         *float64              `json:"budget_max"`
	RequiredFollowers *int                  `json:"required_followers"`
	City              string                `json:"city"`
	ImageURL          string                `json:"image_url"`
	Deadline          *time.Time            `json:"deadline"`
	Status            models.CampaignStatus `json:"status"`
	Views             int                   `json:"views"`
	Company           *models.Company       `json:"company,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

type ToggleFavoriteResponse struct {
	Action string `json:"action"` // "added" | "removed"
}
