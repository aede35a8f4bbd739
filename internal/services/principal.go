package services

import "prizm_backend/internal/models"

// Principal is the authenticated identity passed explicitly into every
// service operation. Identity is never read from ambient state.
type Principal struct {
	UserID string
	Role   models.UserRole
}

func (p Principal) IsAdmin() bool {
	return p.Role == models.UserRoleAdmin
}

func (p Principal) IsCompany() bool {
	return p.Role == models.UserRoleCompany
}

func (p Principal) IsInfluencer() bool {
	return p.Role == models.UserRoleInfluencer
}
