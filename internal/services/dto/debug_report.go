package dto

type CreateDebugReportRequest struct {
	Page        string                 `json:"page" validate:"omitempty,max=200"`
	Description string                 `json:"description" validate:"required,max=5000"`
	Payload     map[string]interface{} `json:"payload"`
}
