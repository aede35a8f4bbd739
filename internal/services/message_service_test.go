package services

import (
	"testing"

	"prizm_backend/internal/models"
	"prizm_backend/internal/services/dto"
	"prizm_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type messageWorld struct {
	apps        *fakeApplicationRepo
	messages    *fakeMessageRepo
	influencers *fakeInfluencerRepo
	svc         *MessageService

	app        *models.Application
	company    Principal
	influencer Principal
	admin      Principal
}

func newMessageWorld(t *testing.T) *messageWorld {
	t.Helper()

	w := &messageWorld{
		apps:        newFakeApplicationRepo(),
		messages:    newFakeMessageRepo(),
		influencers: newFakeInfluencerRepo(),
	}
	w.svc = NewMessageService(w.messages, w.apps, w.influencers)

	influencerUserID := "user-influencer"
	company := &models.Company{
		BaseModel: models.BaseModel{ID: "company-1"},
		UserID:    "user-company",
		Name:      "テスト株式会社",
	}
	profile := &models.InfluencerProfile{
		BaseModel:   models.BaseModel{ID: "profile-1"},
		UserID:      &influencerUserID,
		DisplayName: "テストインフルエンサー",
	}
	require.NoError(t, w.influencers.Create(profile))

	w.app = &models.Application{
		BaseModel:    models.BaseModel{ID: "application-1"},
		CampaignID:   "campaign-1",
		CompanyID:    company.ID,
		InfluencerID: profile.ID,
		Status:       models.ApplicationStatusInProgress,
		Company:      company,
		Influencer:   profile,
	}
	require.NoError(t, w.apps.Create(w.app))

	w.company = Principal{UserID: company.UserID, Role: models.UserRoleCompany}
	w.influencer = Principal{UserID: influencerUserID, Role: models.UserRoleInfluencer}
	w.admin = Principal{UserID: "user-admin", Role: models.UserRoleAdmin}
	return w
}

func TestSendMessageCompanyToInfluencer(t *testing.T) {
	w := newMessageWorld(t)

	written, err := w.svc.SendMessage(w.company, w.app.ID, &dto.SendMessageRequest{
		Content: "進捗はいかがでしょうか。",
	})
	require.NoError(t, err)
	require.Len(t, written, 1)

	msg := written[0]
	assert.Equal(t, w.company.UserID, msg.SenderID)
	assert.Equal(t, w.influencer.UserID, msg.ReceiverID)
	assert.Equal(t, models.MessageTypeText, msg.MessageType)
	assert.Equal(t, models.VisibilityAll, msg.Visibility)
	assert.False(t, msg.Read)
}

func TestSendMessageInfluencerToCompany(t *testing.T) {
	w := newMessageWorld(t)

	written, err := w.svc.SendMessage(w.influencer, w.app.ID, &dto.SendMessageRequest{
		Content: "本日投稿しました。",
	})
	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Equal(t, w.influencer.UserID, written[0].SenderID)
	assert.Equal(t, w.company.UserID, written[0].ReceiverID)
	assert.Equal(t, models.VisibilityAll, written[0].Visibility)
}

func TestSendMessageThreadClosedOnCompleted(t *testing.T) {
	w := newMessageWorld(t)
	require.NoError(t, w.apps.UpdateStatus(w.app.ID, models.ApplicationStatusCompleted))

	_, err := w.svc.SendMessage(w.company, w.app.ID, &dto.SendMessageRequest{
		Content: "お疲れ様でした",
	})
	assert.ErrorIs(t, err, apperrors.ErrThreadClosed)
	assert.Empty(t, w.messages.messages)
}

func TestSendMessageRejectsEmptySend(t *testing.T) {
	w := newMessageWorld(t)

	_, err := w.svc.SendMessage(w.company, w.app.ID, &dto.SendMessageRequest{})
	assert.ErrorIs(t, err, apperrors.ErrEmptyMessage)
}

func TestSendMessageImageOnlyIsAllowed(t *testing.T) {
	w := newMessageWorld(t)

	written, err := w.svc.SendMessage(w.influencer, w.app.ID, &dto.SendMessageRequest{
		ImageURL: "images/u/2026-08/shot.png",
	})
	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Empty(t, written[0].Content)
	require.NotNil(t, written[0].ImageURL)
	assert.Equal(t, "images/u/2026-08/shot.png", *written[0].ImageURL)
}

func TestSendMessageMultiImageFanOut(t *testing.T) {
	w := newMessageWorld(t)

	images := []string{"images/a.png", "images/b.png", "images/c.png"}
	written, err := w.svc.SendMessage(w.influencer, w.app.ID, &dto.SendMessageRequest{
		Content:   "投稿のスクリーンショットです",
		ImageURLs: images,
	})
	require.NoError(t, err)
	require.Len(t, written, 3, "one row per image")

	// First row carries the text and the first image.
	assert.Equal(t, "投稿のスクリーンショットです", written[0].Content)
	require.NotNil(t, written[0].ImageURL)
	assert.Equal(t, images[0], *written[0].ImageURL)

	for i := 1; i < len(written); i++ {
		assert.Empty(t, written[i].Content)
		require.NotNil(t, written[i].ImageURL)
		assert.Equal(t, images[i], *written[i].ImageURL)
		assert.Equal(t, written[0].SenderID, written[i].SenderID)
		assert.Equal(t, written[0].ReceiverID, written[i].ReceiverID)
		assert.Equal(t, written[0].Visibility, written[i].Visibility)
	}
}

func TestSendMessageVisibilityCoercion(t *testing.T) {
	w := newMessageWorld(t)

	// A company asking for a restricted scope lands on its own admin channel.
	written, err := w.svc.SendMessage(w.company, w.app.ID, &dto.SendMessageRequest{
		Content:    "管理者への相談です",
		Visibility: models.VisibilityAdminInfluencer,
	})
	require.NoError(t, err)
	assert.Equal(t, models.VisibilityAdminCompany, written[0].Visibility)

	// Same for an influencer.
	written, err = w.svc.SendMessage(w.influencer, w.app.ID, &dto.SendMessageRequest{
		Content:    "管理者への相談です",
		Visibility: models.VisibilityAdminCompany,
	})
	require.NoError(t, err)
	assert.Equal(t, models.VisibilityAdminInfluencer, written[0].Visibility)
}

func TestSendMessageAdminTargeting(t *testing.T) {
	w := newMessageWorld(t)

	written, err := w.svc.SendMessage(w.admin, w.app.ID, &dto.SendMessageRequest{
		Content:    "企業への個別連絡",
		TargetType: "company",
	})
	require.NoError(t, err)
	assert.Equal(t, w.company.UserID, written[0].ReceiverID)
	assert.Equal(t, models.VisibilityAdminCompany, written[0].Visibility)

	written, err = w.svc.SendMessage(w.admin, w.app.ID, &dto.SendMessageRequest{
		Content:    "インフルエンサーへの個別連絡",
		TargetType: "influencer",
	})
	require.NoError(t, err)
	assert.Equal(t, w.influencer.UserID, written[0].ReceiverID)
	assert.Equal(t, models.VisibilityAdminInfluencer, written[0].Visibility)

	// No target: public announcement into the thread.
	written, err = w.svc.SendMessage(w.admin, w.app.ID, &dto.SendMessageRequest{
		Content: "運営からのお知らせ",
	})
	require.NoError(t, err)
	assert.Equal(t, models.VisibilityAll, written[0].Visibility)
}

func TestSendMessageExplicitProfileSender(t *testing.T) {
	w := newMessageWorld(t)

	written, err := w.svc.SendMessage(Principal{}, w.app.ID, &dto.SendMessageRequest{
		SenderProfileID: w.app.InfluencerID,
		Content:         "外部ログインからの送信",
	})
	require.NoError(t, err)
	assert.Equal(t, w.app.InfluencerID, written[0].SenderID)
	assert.Equal(t, w.company.UserID, written[0].ReceiverID)
	assert.Equal(t, models.VisibilityAll, written[0].Visibility)

	// A profile from another application cannot write into this thread.
	otherUserID := "user-other"
	other := &models.InfluencerProfile{
		BaseModel: models.BaseModel{ID: "profile-2"},
		UserID:    &otherUserID,
	}
	require.NoError(t, w.influencers.Create(other))

	_, err = w.svc.SendMessage(Principal{}, w.app.ID, &dto.SendMessageRequest{
		SenderProfileID: other.ID,
		Content:         "x",
	})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestSendMessageRejectsForeignParticipants(t *testing.T) {
	w := newMessageWorld(t)

	otherCompany := Principal{UserID: "user-other-company", Role: models.UserRoleCompany}
	_, err := w.svc.SendMessage(otherCompany, w.app.ID, &dto.SendMessageRequest{Content: "x"})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	otherInfluencer := Principal{UserID: "user-other-influencer", Role: models.UserRoleInfluencer}
	_, err = w.svc.SendMessage(otherInfluencer, w.app.ID, &dto.SendMessageRequest{Content: "x"})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestGetThreadFiltersByReaderScope(t *testing.T) {
	w := newMessageWorld(t)

	// all / admin_company / admin_influencer, one message each.
	_, err := w.svc.SendMessage(w.company, w.app.ID, &dto.SendMessageRequest{Content: "public"})
	require.NoError(t, err)
	_, err = w.svc.SendMessage(w.admin, w.app.ID, &dto.SendMessageRequest{Content: "to company", TargetType: "company"})
	require.NoError(t, err)
	_, err = w.svc.SendMessage(w.admin, w.app.ID, &dto.SendMessageRequest{Content: "to influencer", TargetType: "influencer"})
	require.NoError(t, err)

	adminThread, err := w.svc.GetThread(w.admin, w.app.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, adminThread.Total)

	companyThread, err := w.svc.GetThread(w.company, w.app.ID)
	require.NoError(t, err)
	require.Equal(t, 2, companyThread.Total)
	for _, m := range companyThread.Messages {
		assert.NotEqual(t, models.VisibilityAdminInfluencer, m.Visibility)
	}

	influencerThread, err := w.svc.GetThread(w.influencer, w.app.ID)
	require.NoError(t, err)
	require.Equal(t, 2, influencerThread.Total)
	for _, m := range influencerThread.Messages {
		assert.NotEqual(t, models.VisibilityAdminCompany, m.Visibility)
	}
}

func TestGetThreadMarksIncomingRead(t *testing.T) {
	w := newMessageWorld(t)

	_, err := w.svc.SendMessage(w.company, w.app.ID, &dto.SendMessageRequest{Content: "よろしくお願いします"})
	require.NoError(t, err)

	unread, err := w.svc.UnreadCount(w.influencer.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	_, err = w.svc.GetThread(w.influencer, w.app.ID)
	require.NoError(t, err)

	unread, err = w.svc.UnreadCount(w.influencer.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)
}

func TestGetThreadRejectsStrangers(t *testing.T) {
	w := newMessageWorld(t)

	stranger := Principal{UserID: "user-stranger", Role: models.UserRoleInfluencer}
	_, err := w.svc.GetThread(stranger, w.app.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}
