package services

import (
	"prizm_backend/internal/models"
	"prizm_backend/internal/repositories"
	"prizm_backend/internal/services/dto"
	"prizm_backend/pkg/apperrors"
)

// ProfileService manages the role-specific profile attached to an account.
type ProfileService struct {
	companyRepo    repositories.CompanyRepository
	influencerRepo repositories.InfluencerRepository
}

func NewProfileService(
	companyRepo repositories.CompanyRepository,
	influencerRepo repositories.InfluencerRepository,
) *ProfileService {
	return &ProfileService{
		companyRepo:    companyRepo,
		influencerRepo: influencerRepo,
	}
}

func (s *ProfileService) GetMyCompany(principal Principal) (*models.Company, error) {
	company, err := s.companyRepo.FindByUserID(principal.UserID)
	if err != nil {
		if err == repositories.ErrCompanyNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	return company, nil
}

func (s *ProfileService) UpdateMyCompany(principal Principal, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	company, err := s.GetMyCompany(principal)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Description != nil {
		company.Description = *req.Description
	}
	if req.WebsiteURL != nil {
		company.WebsiteURL = *req.WebsiteURL
	}
	if req.LogoURL != nil {
		company.LogoURL = *req.LogoURL
	}
	if req.City != nil {
		company.City = *req.City
	}

	if err := s.companyRepo.Update(company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *ProfileService) GetMyInfluencerProfile(principal Principal) (*models.InfluencerProfile, error) {
	profile, err := s.influencerRepo.FindByUserID(principal.UserID)
	if err != nil {
		if err == repositories.ErrInfluencerNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) UpdateMyInfluencerProfile(principal Principal, req *dto.UpdateInfluencerProfileRequest) (*models.InfluencerProfile, error) {
	profile, err := s.GetMyInfluencerProfile(principal)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.InstagramURL != nil {
		profile.InstagramURL = *req.InstagramURL
	}
	if req.Followers != nil {
		profile.Followers = *req.Followers
	}
	if req.Categories != nil {
		profile.Categories = marshalCategories(req.Categories)
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = *req.AvatarURL
	}
	if req.IsPublic != nil {
		profile.IsPublic = *req.IsPublic
	}

	if err := s.influencerRepo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetInfluencer returns a public profile by id.
func (s *ProfileService) GetInfluencer(id string) (*models.InfluencerProfile, error) {
	profile, err := s.influencerRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrInfluencerNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	if !profile.IsPublic {
		return nil, apperrors.ErrNotFound(repositories.ErrInfluencerNotFound)
	}
	return profile, nil
}

func (s *ProfileService) ListInfluencers(page, pageSize int) ([]models.InfluencerProfile, int64, error) {
	return s.influencerRepo.FindAll(page, pageSize)
}

func (s *ProfileService) ListCompanies(page, pageSize int) ([]models.Company, int64, error) {
	return s.companyRepo.FindAll(page, pageSize)
}
