package models

import (
	"gorm.io/datatypes"
	"time"
)

type Notification struct {
	BaseModel
	UserID  string         `gorm:"not null;index" json:"user_id"`
	Type    string         `gorm:"not null" json:"type"` // "info", "success", "warning", "error"
	Title   string         `gorm:"not null" json:"title"`
	Message string         `json:"message"`
	Link    string         `json:"link"`
	Data    datatypes.JSON `gorm:"type:jsonb" json:"data"` // {"application_id": "...", "campaign_id": "..."}
	IsRead  bool           `gorm:"default:false" json:"is_read"`
	ReadAt  *time.Time     `json:"read_at"`
}
