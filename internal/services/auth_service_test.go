package services

import (
	"testing"

	"prizm_backend/internal/config"
	"prizm_backend/internal/models"
	"prizm_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo, *fakeCompanyRepo, *fakeInfluencerRepo) {
	t.Helper()

	// Token signing reads the global config; give it a fixed test secret.
	prev := config.AppConfig
	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = "test-secret"
	config.AppConfig.JWT.TTL = 60
	t.Cleanup(func() { config.AppConfig = prev })

	users := newFakeUserRepo()
	companies := newFakeCompanyRepo()
	influencers := newFakeInfluencerRepo()
	return NewAuthService(users, companies, influencers), users, companies, influencers
}

func TestRegisterInfluencerCreatesProfile(t *testing.T) {
	svc, _, _, influencers := newAuthFixture(t)

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:    "hana@example.com",
		Password: "correct-horse-1",
		Name:     "ハナ",
		Role:     models.UserRoleInfluencer,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, models.UserRoleInfluencer, resp.User.Role)

	profile, err := influencers.FindByUserID(resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "ハナ", profile.DisplayName)
}

func TestRegisterCompanyRequiresCompanyName(t *testing.T) {
	svc, _, companies, _ := newAuthFixture(t)

	_, err := svc.Register(&dto.RegisterRequest{
		Email:    "corp@example.com",
		Password: "correct-horse-1",
		Name:     "担当者",
		Role:     models.UserRoleCompany,
	})
	require.Error(t, err)

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:       "corp@example.com",
		Password:    "correct-horse-1",
		Name:        "担当者",
		Role:        models.UserRoleCompany,
		CompanyName: "テスト株式会社",
	})
	require.NoError(t, err)

	company, err := companies.FindByUserID(resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "テスト株式会社", company.Name)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	req := &dto.RegisterRequest{
		Email:    "hana@example.com",
		Password: "correct-horse-1",
		Name:     "ハナ",
		Role:     models.UserRoleInfluencer,
	}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	assert.Error(t, err)
}

func TestLoginChecksCredentialsAndStatus(t *testing.T) {
	svc, users, _, _ := newAuthFixture(t)

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:    "hana@example.com",
		Password: "correct-horse-1",
		Name:     "ハナ",
		Role:     models.UserRoleInfluencer,
	})
	require.NoError(t, err)

	login, err := svc.Login(&dto.LoginRequest{Email: "hana@example.com", Password: "correct-horse-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)

	_, err = svc.Login(&dto.LoginRequest{Email: "hana@example.com", Password: "wrong"})
	assert.Error(t, err)
	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "correct-horse-1"})
	assert.Error(t, err)

	user, err := users.FindByID(resp.User.ID)
	require.NoError(t, err)
	user.Status = models.UserStatusSuspended
	require.NoError(t, users.Update(user))

	_, err = svc.Login(&dto.LoginRequest{Email: "hana@example.com", Password: "correct-horse-1"})
	assert.Error(t, err, "suspended accounts cannot log in")
}
