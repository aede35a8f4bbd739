package models

import (
	"gorm.io/datatypes"
	"time"
)

// DebugReport is a dispute/bug report filed from any client, reviewed in
// the admin console.
type DebugReport struct {
	BaseModel
	ReporterID  *string           `gorm:"index" json:"reporter_id"`
	Page        string            `json:"page"`
	Description string            `gorm:"type:text" json:"description"`
	Payload     datatypes.JSON    `gorm:"type:jsonb" json:"payload"` // client state captured at report time
	Status      DebugReportStatus `gorm:"default:'open';index" json:"status"`
	ResolvedAt  *time.Time        `json:"resolved_at"`
}
