package models

// Message is one chat entry in an application's thread. Threads are
// append-only: messages are never edited or deleted.
type Message struct {
	BaseModel
	ApplicationID string            `gorm:"not null;index" json:"application_id"`
	SenderID      string            `gorm:"not null;index" json:"sender_id"`
	ReceiverID    string            `gorm:"not null;index" json:"receiver_id"`
	Content       string            `gorm:"type:text" json:"content"`
	ImageURL      *string           `json:"image_url"`
	MessageType   MessageType       `gorm:"default:'text'" json:"message_type"`
	Visibility    MessageVisibility `gorm:"default:'all'" json:"visibility"`
	Read          bool              `gorm:"default:false" json:"read"`
}
