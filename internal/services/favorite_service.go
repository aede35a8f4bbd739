package services

import (
	"prizm_backend/internal/models"
	"prizm_backend/internal/repositories"
	"prizm_backend/internal/services/dto"
	"prizm_backend/pkg/apperrors"
)

type FavoriteService struct {
	favoriteRepo   repositories.FavoriteRepository
	campaignRepo   repositories.CampaignRepository
	influencerRepo repositories.InfluencerRepository
}

func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	campaignRepo repositories.CampaignRepository,
	influencerRepo repositories.InfluencerRepository,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo:   favoriteRepo,
		campaignRepo:   campaignRepo,
		influencerRepo: influencerRepo,
	}
}

// Toggle flips the favorite mark on a campaign for the acting influencer.
// Reports which way it flipped.
func (s *FavoriteService) Toggle(principal Principal, profileID, campaignID string) (*dto.ToggleFavoriteResponse, error) {
	if _, err := s.campaignRepo.FindByID(campaignID); err != nil {
		if err == repositories.ErrCampaignNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	profile, err := s.resolveProfile(principal, profileID)
	if err != nil {
		return nil, err
	}

	existing, err := s.favoriteRepo.FindByPair(profile.ID, campaignID)
	if err != nil && err != repositories.ErrFavoriteNotFound {
		return nil, err
	}

	if existing != nil {
		if err := s.favoriteRepo.Delete(profile.ID, campaignID); err != nil {
			return nil, err
		}
		return &dto.ToggleFavoriteResponse{Action: "removed"}, nil
	}

	favorite := &models.Favorite{
		InfluencerID: profile.ID,
		CampaignID:   campaignID,
	}
	if err := s.favoriteRepo.Create(favorite); err != nil {
		return nil, err
	}
	return &dto.ToggleFavoriteResponse{Action: "added"}, nil
}

// List returns the influencer's favorited campaigns.
func (s *FavoriteService) List(principal Principal, profileID string) ([]dto.CampaignResponse, error) {
	profile, err := s.resolveProfile(principal, profileID)
	if err != nil {
		return nil, err
	}

	favorites, err := s.favoriteRepo.FindByInfluencer(profile.ID)
	if err != nil {
		return nil, err
	}

	campaigns := make([]dto.CampaignResponse, 0, len(favorites))
	for i := range favorites {
		if favorites[i].Campaign != nil {
			campaigns = append(campaigns, *buildCampaignResponse(favorites[i].Campaign))
		}
	}
	return campaigns, nil
}

func (s *FavoriteService) resolveProfile(principal Principal, profileID string) (*models.InfluencerProfile, error) {
	if profileID != "" {
		profile, err := s.influencerRepo.FindByID(profileID)
		if err != nil {
			if err == repositories.ErrInfluencerNotFound {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, err
		}
		return profile, nil
	}

	profile, err := s.influencerRepo.FindByUserID(principal.UserID)
	if err != nil {
		if err == repositories.ErrInfluencerNotFound {
			return nil, apperrors.NewBadRequestError("インフルエンサープロフィールが登録されていません")
		}
		return nil, err
	}
	return profile, nil
}
