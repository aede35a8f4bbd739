package repositories

import (
	"errors"

	"prizm_backend/internal/models"

	"gorm.io/gorm"
)

var ErrFavoriteNotFound = errors.New("favorite not found")

type FavoriteRepository interface {
	Create(favorite *models.Favorite) error
	Delete(influencerID, campaignID string) error
	FindByPair(influencerID, campaignID string) (*models.Favorite, error)
	FindByInfluencer(influencerID string) ([]models.Favorite, error)
}

type FavoriteRepositoryImpl struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &FavoriteRepositoryImpl{db: db}
}

func (r *FavoriteRepositoryImpl) Create(favorite *models.Favorite) error {
	return r.db.Create(favorite).Error
}

func (r *FavoriteRepositoryImpl) Delete(influencerID, campaignID string) error {
	return r.db.
		Where("influencer_id = ? AND campaign_id = ?", influencerID, campaignID).
		Delete(&models.Favorite{}).Error
}

func (r *FavoriteRepositoryImpl) FindByPair(influencerID, campaignID string) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.db.
		Where("influencer_id = ? AND campaign_id = ?", influencerID, campaignID).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFavoriteNotFound
		}
		return nil, err
	}
	return &favorite, nil
}

func (r *FavoriteRepositoryImpl) FindByInfluencer(influencerID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Preload("Campaign").
		Where("influencer_id = ?", influencerID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}
