package services

import (
	"encoding/json"

	"prizm_backend/internal/logger"
	"prizm_backend/internal/models"
	"prizm_backend/internal/repositories"
	"prizm_backend/internal/services/dto"
	"prizm_backend/pkg/apperrors"
)

type CampaignService struct {
	campaignRepo repositories.CampaignRepository
	companyRepo  repositories.CompanyRepository
}

func NewCampaignService(
	campaignRepo repositories.CampaignRepository,
	companyRepo repositories.CompanyRepository,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		companyRepo:  companyRepo,
	}
}

// Create registers a campaign in draft status under the caller's company.
func (s *CampaignService) Create(principal Principal, req *dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	company, err := s.ownCompany(principal)
	if err != nil {
		return nil, err
	}

	campaign := &models.Campaign{
		CompanyID:         company.ID,
		Title:             req.Title,
		Description:       req.Description,
		Categories:        marshalCategories(req.Categories),
		BudgetMin:         req.BudgetMin,
		BudgetMax:         req.BudgetMax,
		RequiredFollowers: req.RequiredFollowers,
		City:              req.City,
		ImageURL:          req.ImageURL,
		Deadline:          req.Deadline,
		Status:            models.CampaignStatusDraft,
	}
	if err := s.campaignRepo.Create(campaign); err != nil {
		return nil, err
	}
	campaign.Company = company

	return buildCampaignResponse(campaign), nil
}

func (s *CampaignService) Update(principal Principal, id string, req *dto.UpdateCampaignRequest) (*dto.CampaignResponse, error) {
	campaign, err := s.authorizedCampaign(principal, id)
	if err != nil {
		return nil, err
	}
	// Published campaigns are frozen; take them back to draft first.
	if campaign.Status != models.CampaignStatusDraft {
		return nil, apperrors.ErrInvalidOperation("campaign", "下書き以外のキャンペーンは編集できません")
	}

	if req.Title != nil {
		campaign.Title = *req.Title
	}
	if req.Description != nil {
		campaign.Description = *req.Description
	}
	if req.Categories != nil {
		campaign.Categories = marshalCategories(req.Categories)
	}
	if req.BudgetMin != nil {
		campaign.BudgetMin = req.BudgetMin
	}
	if req.BudgetMax != nil {
		campaign.BudgetMax = req.BudgetMax
	}
	if req.RequiredFollowers != nil {
		campaign.RequiredFollowers = req.RequiredFollowers
	}
	if req.City != nil {
		campaign.City = *req.City
	}
	if req.ImageURL != nil {
		campaign.ImageURL = *req.ImageURL
	}
	if req.Deadline != nil {
		campaign.Deadline = req.Deadline
	}

	if err := s.campaignRepo.Update(campaign); err != nil {
		return nil, err
	}
	return buildCampaignResponse(campaign), nil
}

// SetStatus moves a campaign between draft, active and closed.
func (s *CampaignService) SetStatus(principal Principal, id string, status models.CampaignStatus) (*dto.CampaignResponse, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidCampaignStatus
	}

	campaign, err := s.authorizedCampaign(principal, id)
	if err != nil {
		return nil, err
	}

	campaign.Status = status
	if err := s.campaignRepo.Update(campaign); err != nil {
		return nil, err
	}
	return buildCampaignResponse(campaign), nil
}

func (s *CampaignService) Delete(principal Principal, id string) error {
	campaign, err := s.authorizedCampaign(principal, id)
	if err != nil {
		return err
	}
	if campaign.Status != models.CampaignStatusDraft {
		return apperrors.ErrInvalidOperation("campaign", "下書き以外のキャンペーンは削除できません")
	}
	return s.campaignRepo.Delete(id)
}

// Get returns a campaign and counts the view.
func (s *CampaignService) Get(id string) (*dto.CampaignResponse, error) {
	campaign, err := s.campaignRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrCampaignNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	if err := s.campaignRepo.IncrementViews(id); err != nil {
		logger.Warn("failed to increment campaign views", "campaign_id", id, "error", err)
	}

	return buildCampaignResponse(campaign), nil
}

// Search lists active campaigns matching the criteria. Only the admin
// console may widen the status filter.
func (s *CampaignService) Search(criteria *dto.CampaignSearchCriteria) ([]dto.CampaignResponse, int64, error) {
	campaigns, total, err := s.campaignRepo.Search(repositories.CampaignSearchCriteria{
		Query:     criteria.Query,
		City:      criteria.City,
		Category:  criteria.Category,
		MinBudget: criteria.MinBudget,
		MaxBudget: criteria.MaxBudget,
		Status:    models.CampaignStatusActive,
		Page:      criteria.Page,
		PageSize:  criteria.PageSize,
		SortBy:    criteria.SortBy,
		SortOrder: criteria.SortOrder,
	})
	if err != nil {
		return nil, 0, err
	}
	return buildCampaignResponses(campaigns), total, nil
}

// Recommended returns the most recent active campaigns for the top page.
func (s *CampaignService) Recommended(limit int) ([]dto.CampaignResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	campaigns, err := s.campaignRepo.FindActive(limit)
	if err != nil {
		return nil, err
	}
	return buildCampaignResponses(campaigns), nil
}

func (s *CampaignService) ListForCompany(principal Principal) ([]dto.CampaignResponse, error) {
	company, err := s.ownCompany(principal)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.campaignRepo.FindByCompany(company.ID)
	if err != nil {
		return nil, err
	}
	return buildCampaignResponses(campaigns), nil
}

func (s *CampaignService) ListAll(criteria repositories.CampaignSearchCriteria) ([]dto.CampaignResponse, int64, error) {
	campaigns, total, err := s.campaignRepo.Search(criteria)
	if err != nil {
		return nil, 0, err
	}
	return buildCampaignResponses(campaigns), total, nil
}

// Helper Methods

func (s *CampaignService) ownCompany(principal Principal) (*models.Company, error) {
	company, err := s.companyRepo.FindByUserID(principal.UserID)
	if err != nil {
		if err == repositories.ErrCompanyNotFound {
			return nil, apperrors.NewBadRequestError("企業プロフィールが登録されていません")
		}
		return nil, err
	}
	return company, nil
}

func (s *CampaignService) authorizedCampaign(principal Principal, id string) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.FindByID(id)
	if err != nil {
		if err == repositories.ErrCampaignNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	if principal.IsAdmin() {
		return campaign, nil
	}
	company, err := s.companyRepo.FindByUserID(principal.UserID)
	if err != nil || company.ID != campaign.CompanyID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return campaign, nil
}

func marshalCategories(categories []string) []byte {
	if categories == nil {
		categories = []string{}
	}
	raw, err := json.Marshal(categories)
	if err != nil {
		return []byte("[]")
	}
	return raw
}

func buildCampaignResponse(campaign *models.Campaign) *dto.CampaignResponse {
	var categories []string
	if len(campaign.Categories) > 0 {
		if err := json.Unmarshal(campaign.Categories, &categories); err != nil {
			categories = nil
		}
	}

	return &dto.CampaignResponse{
		ID:                campaign.ID,
		CompanyID:         campaign.CompanyID,
		Title:             campaign.Title,
		Description:       campaign.Description,
		Categories:        categories,
		BudgetMin:         campaign.BudgetMin,
		BudgetMax:         campaign.BudgetMax,
		RequiredFollowers: campaign.RequiredFollowers,
		City:              campaign.City,
		ImageURL:          campaign.ImageURL,
		Deadline:          campaign.Deadline,
		Status:            campaign.Status,
		Views:             campaign.Views,
		Company:           campaign.Company,
		CreatedAt:         campaign.CreatedAt,
		UpdatedAt:         campaign.UpdatedAt,
	}
}

func buildCampaignResponses(campaigns []models.Campaign) []dto.CampaignResponse {
	responses := make([]dto.CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		responses = append(responses, *buildCampaignResponse(&campaigns[i]))
	}
	return responses
}
