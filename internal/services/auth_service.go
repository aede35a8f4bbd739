package services

import (
	"prizm_backend/internal/auth"
	"prizm_backend/internal/logger"
	"prizm_backend/internal/models"
	"prizm_backend/internal/repositories"
	"prizm_backend/internal/services/dto"
	"prizm_backend/pkg/apperrors"
)

type AuthService struct {
	userRepo       repositories.UserRepository
	companyRepo    repositories.CompanyRepository
	influencerRepo repositories.InfluencerRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	companyRepo repositories.CompanyRepository,
	influencerRepo repositories.InfluencerRepository,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		companyRepo:    companyRepo,
		influencerRepo: influencerRepo,
	}
}

// Register creates an account plus the role-matching profile record and
// returns a signed token.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Role == models.UserRoleCompany && req.CompanyName == "" {
		return nil, apperrors.NewBadRequestError("企業名を入力してください")
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(err)
	}

	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.NewBadRequestError("このメールアドレスは既に登録されています")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         req.Role,
		Status:       models.UserStatusActive,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	switch req.Role {
	case models.UserRoleCompany:
		company := &models.Company{UserID: user.ID, Name: req.CompanyName}
		if err := s.companyRepo.Create(company); err != nil {
			logger.Error("failed to create company profile on registration", "user_id", user.ID, "error", err)
			return nil, err
		}
	case models.UserRoleInfluencer:
		profile := &models.InfluencerProfile{UserID: &user.ID, DisplayName: req.Name}
		if err := s.influencerRepo.Create(profile); err != nil {
			logger.Error("failed to create influencer profile on registration", "user_id", user.ID, "error", err)
			return nil, err
		}
	}

	return s.issue(user)
}

// Login verifies credentials and returns a signed token. Invalid email and
// invalid password produce the same error.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("メールアドレスまたはパスワードが正しくありません")
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError("メールアドレスまたはパスワードが正しくありません")
	}

	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.NewForbiddenError("このアカウントは停止されています")
	}

	return s.issue(user)
}

// Me returns the account behind a token.
func (s *AuthService) Me(principal Principal) (*dto.UserSummary, error) {
	user, err := s.userRepo.FindByID(principal.UserID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	return summarize(user), nil
}

func (s *AuthService) issue(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		AccessToken: token,
		User:        summarize(user),
	}, nil
}

func summarize(user *models.User) *dto.UserSummary {
	return &dto.UserSummary{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}
