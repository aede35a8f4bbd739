package services

import (
	"testing"

	"prizm_backend/internal/models"
	"prizm_backend/internal/repositories"
	"prizm_backend/internal/services/dto"
	"prizm_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applicationWorld struct {
	apps          *fakeApplicationRepo
	campaigns     *fakeCampaignRepo
	influencers   *fakeInfluencerRepo
	companies     *fakeCompanyRepo
	notifications *fakeNotificationRepo
	svc           *ApplicationService

	campaign   *models.Campaign
	profile    *models.InfluencerProfile
	company    Principal
	influencer Principal
}

func newApplicationWorld(t *testing.T) *applicationWorld {
	t.Helper()

	w := &applicationWorld{
		apps:          newFakeApplicationRepo(),
		campaigns:     newFakeCampaignRepo(),
		influencers:   newFakeInfluencerRepo(),
		companies:     newFakeCompanyRepo(),
		notifications: newFakeNotificationRepo(),
	}
	w.apps.campaigns = w.campaigns
	w.apps.companies = w.companies
	w.apps.influencers = w.influencers

	notificationSvc := NewNotificationService(w.notifications, newFakeUserRepo(), nil)
	w.svc = NewApplicationService(w.apps, w.campaigns, w.influencers, w.companies, notificationSvc)

	company := &models.Company{
		BaseModel: models.BaseModel{ID: "company-1"},
		UserID:    "user-company",
		Name:      "テスト株式会社",
	}
	require.NoError(t, w.companies.Create(company))

	influencerUserID := "user-influencer"
	w.profile = &models.InfluencerProfile{
		BaseModel:   models.BaseModel{ID: "profile-1"},
		UserID:      &influencerUserID,
		DisplayName: "テストインフルエンサー",
	}
	require.NoError(t, w.influencers.Create(w.profile))

	w.campaign = &models.Campaign{
		BaseModel: models.BaseModel{ID: "campaign-1"},
		CompanyID: company.ID,
		Title:     "新商品PR",
		Status:    models.CampaignStatusActive,
	}
	require.NoError(t, w.campaigns.Create(w.campaign))

	w.company = Principal{UserID: company.UserID, Role: models.UserRoleCompany}
	w.influencer = Principal{UserID: influencerUserID, Role: models.UserRoleInfluencer}
	return w
}

func TestApplyCreatesAppliedApplication(t *testing.T) {
	w := newApplicationWorld(t)

	resp, err := w.svc.Apply(w.influencer, &dto.ApplyRequest{
		CampaignID: w.campaign.ID,
		Motivation: "ぜひ参加させてください",
	})
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusApplied, resp.Status)
	assert.Equal(t, "応募済み", resp.StatusLabel)
	assert.Equal(t, w.campaign.ID, resp.CampaignID)
	assert.Equal(t, w.profile.ID, resp.InfluencerID)
	assert.False(t, resp.AppliedAt.IsZero())

	// The company is notified, best effort.
	require.Len(t, w.notifications.notifications, 1)
	assert.Equal(t, w.company.UserID, w.notifications.notifications[0].UserID)
}

func TestApplyDuplicateIsRejected(t *testing.T) {
	w := newApplicationWorld(t)

	_, err := w.svc.Apply(w.influencer, &dto.ApplyRequest{CampaignID: w.campaign.ID})
	require.NoError(t, err)

	_, err = w.svc.Apply(w.influencer, &dto.ApplyRequest{CampaignID: w.campaign.ID})
	assert.ErrorIs(t, err, apperrors.ErrApplicationAlreadyExists)
}

func TestApplyRejectsInactiveCampaign(t *testing.T) {
	w := newApplicationWorld(t)

	for _, status := range []models.CampaignStatus{models.CampaignStatusDraft, models.CampaignStatusClosed} {
		w.campaign.Status = status
		require.NoError(t, w.campaigns.Update(w.campaign))

		_, err := w.svc.Apply(w.influencer, &dto.ApplyRequest{CampaignID: w.campaign.ID})
		assert.ErrorIs(t, err, apperrors.ErrCampaignNotActive, string(status))
	}
}

func TestApplyUnknownCampaign(t *testing.T) {
	w := newApplicationWorld(t)

	_, err := w.svc.Apply(w.influencer, &dto.ApplyRequest{CampaignID: "no-such-campaign"})
	assert.Error(t, err)
}

func TestApplyWithoutProfileIsRejected(t *testing.T) {
	w := newApplicationWorld(t)

	noProfile := Principal{UserID: "user-without-profile", Role: models.UserRoleInfluencer}
	_, err := w.svc.Apply(noProfile, &dto.ApplyRequest{CampaignID: w.campaign.ID})
	require.Error(t, err)
}

func TestApplyWithExplicitProfileID(t *testing.T) {
	w := newApplicationWorld(t)

	// External-login clients pass the profile id directly.
	resp, err := w.svc.Apply(Principal{}, &dto.ApplyRequest{
		CampaignID:          w.campaign.ID,
		InfluencerProfileID: w.profile.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, w.profile.ID, resp.InfluencerID)
}

func TestApplySurvivesNotificationFailure(t *testing.T) {
	w := newApplicationWorld(t)
	w.notifications.failCreate = true

	resp, err := w.svc.Apply(w.influencer, &dto.ApplyRequest{CampaignID: w.campaign.ID})
	require.NoError(t, err, "notification failure must not fail the apply")
	assert.Equal(t, models.ApplicationStatusApplied, resp.Status)
}

func TestGetByIDAuthorization(t *testing.T) {
	w := newApplicationWorld(t)

	created, err := w.svc.Apply(w.influencer, &dto.ApplyRequest{CampaignID: w.campaign.ID})
	require.NoError(t, err)

	// Owner company and the applicant can read it.
	_, err = w.svc.GetByID(w.company, created.ID)
	require.NoError(t, err)
	_, err = w.svc.GetByID(w.influencer, created.ID)
	require.NoError(t, err)

	stranger := Principal{UserID: "user-stranger", Role: models.UserRoleCompany}
	_, err = w.svc.GetByID(stranger, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestListByCampaignRequiresOwnership(t *testing.T) {
	w := newApplicationWorld(t)

	_, err := w.svc.Apply(w.influencer, &dto.ApplyRequest{CampaignID: w.campaign.ID})
	require.NoError(t, err)

	apps, err := w.svc.ListByCampaign(w.company, w.campaign.ID)
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	otherCompany := &models.Company{
		BaseModel: models.BaseModel{ID: "company-2"},
		UserID:    "user-other-company",
	}
	require.NoError(t, w.companies.Create(otherCompany))

	_, err = w.svc.ListByCampaign(Principal{UserID: otherCompany.UserID, Role: models.UserRoleCompany}, w.campaign.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	admin := Principal{UserID: "user-admin", Role: models.UserRoleAdmin}
	apps, err = w.svc.ListByCampaign(admin, w.campaign.ID)
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}

func TestListAllFilters(t *testing.T) {
	w := newApplicationWorld(t)

	_, err := w.svc.Apply(w.influencer, &dto.ApplyRequest{CampaignID: w.campaign.ID})
	require.NoError(t, err)

	apps, total, err := w.svc.ListAll(repositories.AdminApplicationCriteria{
		Status: models.ApplicationStatusApplied,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, apps, 1)

	apps, total, err = w.svc.ListAll(repositories.AdminApplicationCriteria{
		Status: models.ApplicationStatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, apps)
}
