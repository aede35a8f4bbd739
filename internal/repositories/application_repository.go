package repositories

import (
	"errors"

	"prizm_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	// ErrApplicationExists is returned when the (campaign, influencer)
	// unique index rejects a second application.
	ErrApplicationExists = errors.New("application already exists")
)

// AdminApplicationCriteria filters the admin console's application list.
type AdminApplicationCriteria struct {
	Status     models.ApplicationStatus
	CampaignID string
	CompanyID  string
	Page       int
	PageSize   int
}

type ApplicationRepository interface {
	Create(app *models.Application) error
	FindByID(id string) (*models.Application, error)
	UpdateStatus(id string, status models.ApplicationStatus) error
	FindByInfluencer(influencerID string) ([]models.Application, error)
	FindByCampaign(campaignID string) ([]models.Application, error)
	FindByCompany(companyID string) ([]models.Application, error)
	FindAll(criteria AdminApplicationCriteria) ([]models.Application, int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(app *models.Application) error {
	if err := r.db.Create(app).Error; err != nil {
		// Requires gorm.Config{TranslateError: true} on the connection.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrApplicationExists
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var app models.Application
	err := r.db.
		Preload("Campaign").
		Preload("Company").
		Preload("Influencer").
		First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByInfluencer(influencerID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.
		Preload("Campaign").
		Preload("Company").
		Where("influencer_id = ?", influencerID).
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindByCampaign(campaignID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.
		Preload("Influencer").
		Where("campaign_id = ?", campaignID).
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindByCompany(companyID string) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.
		Preload("Campaign").
		Preload("Influencer").
		Where("company_id = ?", companyID).
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindAll(criteria AdminApplicationCriteria) ([]models.Application, int64, error) {
	query := r.db.Model(&models.Application{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.CampaignID != "" {
		query = query.Where("campaign_id = ?", criteria.CampaignID)
	}
	if criteria.CompanyID != "" {
		query = query.Where("company_id = ?", criteria.CompanyID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var apps []models.Application
	err := query.
		Preload("Campaign").
		Preload("Company").
		Preload("Influencer").
		Order("applied_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&apps).Error
	return apps, total, err
}
