package repositories

import (
	"errors"

	"prizm_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignSearchCriteria filters the public campaign listing.
type CampaignSearchCriteria struct {
	Query     string
	City      string
	Category  string
	MinBudget *float64
	MaxBudget *float64
	CompanyID string
	Status    models.CampaignStatus
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type CampaignRepository interface {
	Create(campaign *models.Campaign) error
	FindByID(id string) (*models.Campaign, error)
	Update(campaign *models.Campaign) error
	Delete(id string) error
	Search(criteria CampaignSearchCriteria) ([]models.Campaign, int64, error)
	FindByCompany(companyID string) ([]models.Campaign, error)
	FindActive(limit int) ([]models.Campaign, error)
	IncrementViews(id string) error
}

type CampaignRepositoryImpl struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &CampaignRepositoryImpl{db: db}
}

func (r *CampaignRepositoryImpl) Create(campaign *models.Campaign) error {
	return r.db.Create(campaign).Error
}

func (r *CampaignRepositoryImpl) FindByID(id string) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := r.db.Preload("Company").First(&campaign, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	return &campaign, nil
}

func (r *CampaignRepositoryImpl) Update(campaign *models.Campaign) error {
	return r.db.Save(campaign).Error
}

func (r *CampaignRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Campaign{}, "id = ?", id).Error
}

func (r *CampaignRepositoryImpl) Search(criteria CampaignSearchCriteria) ([]models.Campaign, int64, error) {
	query := r.db.Model(&models.Campaign{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.Query != "" {
		pattern := "%" + criteria.Query + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if criteria.City != "" {
		query = query.Where("city = ?", criteria.City)
	}
	if criteria.Category != "" {
		query = query.Where("categories @> ?", `["`+criteria.Category+`"]`)
	}
	if criteria.MinBudget != nil {
		query = query.Where("budget_max >= ?", *criteria.MinBudget)
	}
	if criteria.MaxBudget != nil {
		query = query.Where("budget_min <= ? OR budget_min IS NULL", *criteria.MaxBudget)
	}
	if criteria.CompanyID != "" {
		query = query.Where("company_id = ?", criteria.CompanyID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := criteria.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	sortOrder := criteria.SortOrder
	if sortOrder != "asc" {
		sortOrder = "desc"
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var campaigns []models.Campaign
	err := query.Preload("Company").
		Order(sortBy + " " + sortOrder).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&campaigns).Error
	return campaigns, total, err
}

func (r *CampaignRepositoryImpl) FindByCompany(companyID string) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := r.db.Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&campaigns).Error
	return campaigns, err
}

func (r *CampaignRepositoryImpl) FindActive(limit int) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := r.db.Preload("Company").
		Where("status = ?", models.CampaignStatusActive).
		Order("created_at DESC").
		Limit(limit).
		Find(&campaigns).Error
	return campaigns, err
}

func (r *CampaignRepositoryImpl) IncrementViews(id string) error {
	return r.db.Model(&models.Campaign{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
