package dto

import "prizm_backend/internal/models"

// --- Requests ---

type RegisterRequest struct {
	Email       string          `json:"email" validate:"required,email"`
	Password    string          `json:"password" validate:"required,min=8"`
	Name        string          `json:"name" validate:"required,max=100"`
	Role        models.UserRole `json:"role" validate:"required,oneof=influencer company"`
	CompanyName string          `json:"company_name" validate:"omitempty,max=100"` // Required for company accounts
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Responses ---

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        *UserSummary `json:"user"`
}

type UserSummary struct {
	ID    string          `json:"id"`
	Email string          `json:"email"`
	Name  string          `json:"name"`
	Role  models.UserRole `json:"role"`
}
