package repositories

import (
	"errors"

	"prizm_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInfluencerNotFound = errors.New("influencer profile not found")

type InfluencerRepository interface {
	Create(profile *models.InfluencerProfile) error
	FindByID(id string) (*models.InfluencerProfile, error)
	FindByUserID(userID string) (*models.InfluencerProfile, error)
	Update(profile *models.InfluencerProfile) error
	FindAll(page, pageSize int) ([]models.InfluencerProfile, int64, error)
}

type InfluencerRepositoryImpl struct {
	db *gorm.DB
}

func NewInfluencerRepository(db *gorm.DB) InfluencerRepository {
	return &InfluencerRepositoryImpl{db: db}
}

func (r *InfluencerRepositoryImpl) Create(profile *models.InfluencerProfile) error {
	return r.db.Create(profile).Error
}

func (r *InfluencerRepositoryImpl) FindByID(id string) (*models.InfluencerProfile, error) {
	var profile models.InfluencerProfile
	if err := r.db.Preload("User").First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInfluencerNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *InfluencerRepositoryImpl) FindByUserID(userID string) (*models.InfluencerProfile, error) {
	var profile models.InfluencerProfile
	if err := r.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInfluencerNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *InfluencerRepositoryImpl) Update(profile *models.InfluencerProfile) error {
	return r.db.Save(profile).Error
}

func (r *InfluencerRepositoryImpl) FindAll(page, pageSize int) ([]models.InfluencerProfile, int64, error) {
	var profiles []models.InfluencerProfile
	var total int64

	if err := r.db.Model(&models.InfluencerProfile{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&profiles).Error
	return profiles, total, err
}
