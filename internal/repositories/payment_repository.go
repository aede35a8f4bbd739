package repositories

import (
	"time"

	"prizm_backend/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(payment *models.Payment) error
	FindByApplication(applicationID string) ([]models.Payment, error)
	// MarkPaidByApplication sets every payment row of the application to
	// paid with the given timestamp.
	MarkPaidByApplication(applicationID string, paidAt time.Time) error
	FindByInfluencerUser(userID string) ([]models.Payment, error)
	FindByCompany(companyID string) ([]models.Payment, error)
	FindAll(page, pageSize int) ([]models.Payment, int64, error)
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *PaymentRepositoryImpl) FindByApplication(applicationID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("application_id = ?", applicationID).
		Order("created_at ASC").
		Find(&payments).Error
	return payments, err
}

func (r *PaymentRepositoryImpl) MarkPaidByApplication(applicationID string, paidAt time.Time) error {
	return r.db.Model(&models.Payment{}).
		Where("application_id = ?", applicationID).
		Updates(map[string]interface{}{
			"status":  models.PaymentStatusPaid,
			"paid_at": paidAt,
		}).Error
}

func (r *PaymentRepositoryImpl) FindByInfluencerUser(userID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("influencer_user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

func (r *PaymentRepositoryImpl) FindByCompany(companyID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

func (r *PaymentRepositoryImpl) FindAll(page, pageSize int) ([]models.Payment, int64, error) {
	var total int64
	if err := r.db.Model(&models.Payment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	var payments []models.Payment
	err := r.db.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&payments).Error
	return payments, total, err
}
