package services

import (
	"time"

	"prizm_backend/internal/logger"
	"prizm_backend/internal/models"
	"prizm_backend/internal/repositories"
	"prizm_backend/internal/services/dto"
	"prizm_backend/pkg/apperrors"
)

type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	campaignRepo    repositories.CampaignRepository
	influencerRepo  repositories.InfluencerRepository
	companyRepo     repositories.CompanyRepository
	notificationSvc *NotificationService
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	campaignRepo repositories.CampaignRepository,
	influencerRepo repositories.InfluencerRepository,
	companyRepo repositories.CompanyRepository,
	notificationSvc *NotificationService,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		campaignRepo:    campaignRepo,
		influencerRepo:  influencerRepo,
		companyRepo:     companyRepo,
		notificationSvc: notificationSvc,
	}
}

// Apply creates an application in status "applied". The (campaign,
// influencer) unique index is the duplicate guard: a second apply surfaces
// as the already-applied domain error no matter how the calls interleave.
func (s *ApplicationService) Apply(principal Principal, req *dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	campaign, err := s.campaignRepo.FindByID(req.CampaignID)
	if err != nil {
		if err == repositories.ErrCampaignNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	if campaign.Status != models.CampaignStatusActive {
		return nil, apperrors.ErrCampaignNotActive
	}

	profile, err := s.resolveProfile(principal, req.InfluencerProfileID)
	if err != nil {
		return nil, err
	}

	app := &models.Application{
		CampaignID:   campaign.ID,
		CompanyID:    campaign.CompanyID,
		InfluencerID: profile.ID,
		Status:       models.ApplicationStatusApplied,
		Motivation:   req.Motivation,
		AppliedAt:    time.Now(),
	}
	if err := s.applicationRepo.Create(app); err != nil {
		if err == repositories.ErrApplicationExists {
			return nil, apperrors.ErrApplicationAlreadyExists
		}
		return nil, err
	}
	app.Campaign = campaign
	app.Influencer = profile

	// Tell the company, best effort.
	if company, err := s.companyRepo.FindByID(campaign.CompanyID); err == nil {
		app.Company = company
		if err := s.notificationSvc.NotifyNewApplication(company.UserID, campaign.Title, app.ID); err != nil {
			logger.Warn("failed to notify company of new application", "application_id", app.ID, "error", err)
		}
	} else {
		logger.Warn("failed to resolve company for apply notification", "campaign_id", campaign.ID, "error", err)
	}

	return buildApplicationResponse(app), nil
}

// resolveProfile picks the acting influencer profile. An explicit profile id
// serves clients authenticated outside the main account system; everyone
// else is resolved from their token.
func (s *ApplicationService) resolveProfile(principal Principal, profileID string) (*models.InfluencerProfile, error) {
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

func (s *ApplicationService) GetByID(principal Principal, id string) (*dto.ApplicationResponse, error) {
	app, err := s.applicationRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrApplicationNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	if err := s.authorizeRead(principal, app); err != nil {
		return nil, err
	}
	return buildApplicationResponse(app), nil
}

func (s *ApplicationService) authorizeRead(principal Principal, app *models.Application) error {
	if principal.IsAdmin() {
		return nil
	}
	if principal.IsCompany() && app.Company != nil && app.Company.UserID == principal.UserID {
		return nil
	}
	if principal.IsInfluencer() && app.Influencer != nil &&
		(app.Influencer.UserID == nil || *app.Influencer.UserID == principal.UserID) {
		return nil
	}
	return apperrors.ErrInsufficientPermissions
}

// ListForInfluencer returns the caller's own applications, newest first.
func (s *ApplicationService) ListForInfluencer(principal Principal, profileID string) ([]dto.ApplicationResponse, error) {
	profile, err := s.resolveProfile(principal, profileID)
	if err != nil {
		return nil, err
	}

	apps, err := s.applicationRepo.FindByInfluencer(profile.ID)
	if err != nil {
		return nil, err
	}
	return buildApplicationResponses(apps), nil
}

// ListForCompany returns every application across the company's campaigns.
func (s *ApplicationService) ListForCompany(principal Principal) ([]dto.ApplicationResponse, error) {
	company, err := s.companyRepo.FindByUserID(principal.UserID)
	if err != nil {
		if err == repositories.ErrCompanyNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	apps, err := s.applicationRepo.FindByCompany(company.ID)
	if err != nil {
		return nil, err
	}
	return buildApplicationResponses(apps), nil
}

func (s *ApplicationService) ListByCampaign(principal Principal, campaignID string) ([]dto.ApplicationResponse, error) {
	campaign, err := s.campaignRepo.FindByID(campaignID)
	if err != nil {
		if err == repositories.ErrCampaignNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	if !principal.IsAdmin() {
		company, err := s.companyRepo.FindByUserID(principal.UserID)
		if err != nil || company.ID != campaign.CompanyID {
			return nil, apperrors.ErrInsufficientPermissions
		}
	}

	apps, err := s.applicationRepo.FindByCampaign(campaignID)
	if err != nil {
		return nil, err
	}
	return buildApplicationResponses(apps), nil
}

// ListAll serves the admin console.
func (s *ApplicationService) ListAll(criteria repositories.AdminApplicationCriteria) ([]dto.ApplicationResponse, int64, error) {
	apps, total, err := s.applicationRepo.FindAll(criteria)
	if err != nil {
		return nil, 0, err
	}
	return buildApplicationResponses(apps), total, nil
}

func buildApplicationResponses(apps []models.Application) []dto.ApplicationResponse {
	responses := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, *buildApplicationResponse(&apps[i]))
	}
	return responses
}
