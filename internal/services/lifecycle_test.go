package services

import (
	"testing"

	"prizm_backend/internal/models"
	"prizm_backend/internal/services/dto"
	"prizm_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Walks one application from apply to completed across the real service
// wiring (application, status and message services over shared stores) and
// checks the cross-cutting outcomes of the whole flow.
func TestApplicationLifecycle(t *testing.T) {
	apps := newFakeApplicationRepo()
	messages := newFakeMessageRepo()
	payments := newFakePaymentRepo()
	bankAccounts := newFakeBankAccountRepo()
	notifications := newFakeNotificationRepo()
	campaigns := newFakeCampaignRepo()
	companies := newFakeCompanyRepo()
	influencers := newFakeInfluencerRepo()

	apps.campaigns = campaigns
	apps.companies = companies
	apps.influencers = influencers

	notificationSvc := NewNotificationService(notifications, newFakeUserRepo(), nil)
	applicationSvc := NewApplicationService(apps, campaigns, influencers, companies, notificationSvc)
	statusSvc := NewStatusService(apps, messages, payments, bankAccounts, notificationSvc)
	messageSvc := NewMessageService(messages, apps, influencers)

	company := &models.Company{
		BaseModel: models.BaseModel{ID: "company-1"},
		UserID:    "user-company",
		Name:      "テスト株式会社",
	}
	require.NoError(t, companies.Create(company))

	influencerUserID := "user-influencer"
	profile := &models.InfluencerProfile{
		BaseModel:   models.BaseModel{ID: "profile-1"},
		UserID:      &influencerUserID,
		DisplayName: "テストインフルエンサー",
	}
	require.NoError(t, influencers.Create(profile))

	reward := 80000.0
	campaign := &models.Campaign{
		BaseModel: models.BaseModel{ID: "campaign-1"},
		CompanyID: company.ID,
		Title:     "秋の新作コスメPR",
		Status:    models.CampaignStatusActive,
		BudgetMax: &reward,
	}
	require.NoError(t, campaigns.Create(campaign))

	require.NoError(t, bankAccounts.Upsert(&models.BankAccount{
		UserID:        influencerUserID,
		BankName:      "三井住友銀行",
		AccountType:   models.BankAccountTypeChecking,
		AccountNumber: "7654321",
		HolderName:    "サトウ ユイ",
	}))

	companyP := Principal{UserID: company.UserID, Role: models.UserRoleCompany}
	influencerP := Principal{UserID: influencerUserID, Role: models.UserRoleInfluencer}

	applied, err := applicationSvc.Apply(influencerP, &dto.ApplyRequest{
		CampaignID: campaign.ID,
		Motivation: "新作コスメのレビューが得意です",
	})
	require.NoError(t, err)

	steps := []struct {
		actor  Principal
		status models.ApplicationStatus
	}{
		{companyP, models.ApplicationStatusReviewing},
		{companyP, models.ApplicationStatusApproved},
		{companyP, models.ApplicationStatusInProgress},
		{influencerP, models.ApplicationStatusPostSubmitted},
		{companyP, models.ApplicationStatusPostConfirmed},
		{companyP, models.ApplicationStatusPaymentPending},
		{companyP, models.ApplicationStatusCompleted},
	}
	for _, step := range steps {
		resp, err := statusSvc.AdvanceStatus(step.actor, applied.ID, &dto.AdvanceStatusRequest{
			NewStatus: step.status,
		})
		require.NoError(t, err, string(step.status))
		assert.Empty(t, resp.SideEffects.Errors, string(step.status))
	}

	// Exactly one payment, created at payment_pending, settled on completion.
	require.Len(t, payments.payments, 1)
	payment := payments.payments[0]
	assert.Equal(t, reward, payment.Amount)
	assert.Equal(t, influencerUserID, payment.InfluencerUserID)
	assert.Equal(t, models.PaymentStatusPaid, payment.Status)
	require.NotNil(t, payment.PaidAt)

	// The payout details were forwarded to the company at post_confirmed.
	var bankInfoCount int
	for _, m := range messages.messages {
		if m.MessageType == models.MessageTypeBankInfo {
			bankInfoCount++
			assert.Equal(t, company.UserID, m.ReceiverID)
			assert.Contains(t, m.Content, "三井住友銀行")
			assert.Contains(t, m.Content, "当座")
		}
	}
	assert.Equal(t, 1, bankInfoCount)

	// The thread is closed once the application completes.
	_, err = messageSvc.SendMessage(companyP, applied.ID, &dto.SendMessageRequest{
		Content: "ありがとうございました",
	})
	assert.ErrorIs(t, err, apperrors.ErrThreadClosed)

	final, err := applicationSvc.GetByID(influencerP, applied.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusCompleted, final.Status)
	assert.Equal(t, "完了", final.StatusLabel)
}
