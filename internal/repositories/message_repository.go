package repositories

import (
	"prizm_backend/internal/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(message *models.Message) error
	// FindByApplication returns the thread ordered by creation time,
	// restricted to the given visibility scopes.
	FindByApplication(applicationID string, visibilities []models.MessageVisibility) ([]models.Message, error)
	MarkRead(applicationID, readerID string) error
	CountUnread(receiverID string) (int64, error)
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *MessageRepositoryImpl) FindByApplication(applicationID string, visibilities []models.MessageVisibility) ([]models.Message, error) {
	query := r.db.Where("application_id = ?", applicationID)
	if len(visibilities) > 0 {
		query = query.Where("visibility IN ?", visibilities)
	}

	var messages []models.Message
	err := query.Order("created_at ASC").Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) MarkRead(applicationID, readerID string) error {
	return r.db.Model(&models.Message{}).
		Where("application_id = ? AND receiver_id = ? AND read = false", applicationID, readerID).
		Update("read", true).Error
}

func (r *MessageRepositoryImpl) CountUnread(receiverID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND read = false", receiverID).
		Count(&count).Error
	return count, err
}
