package repositories

import (
	"errors"

	"prizm_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCompanyNotFound = errors.New("company not found")

type CompanyRepository interface {
	Create(company *models.Company) error
	FindByID(id string) (*models.Company, error)
	FindByUserID(userID string) (*models.Company, error)
	Update(company *models.Company) error
	FindAll(page, pageSize int) ([]models.Company, int64, error)
}

type CompanyRepositoryImpl struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &CompanyRepositoryImpl{db: db}
}

func (r *CompanyRepositoryImpl) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

func (r *CompanyRepositoryImpl) FindByID(id string) (*models.Company, error) {
	var company models.Company
	if err := r.db.Preload("User").First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindByUserID(userID string) (*models.Company, error) {
	var company models.Company
	if err := r.db.First(&company, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) Update(company *models.Company) error {
	return r.db.Save(company).Error
}

func (r *CompanyRepositoryImpl) FindAll(page, pageSize int) ([]models.Company, int64, error) {
	var companies []models.Company
	var total int64

	if err := r.db.Model(&models.Company{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&companies).Error
	return companies, total, err
}
