package services

import (
	"prizm_backend/internal/models"
	"prizm_backend/internal/repositories"
	"prizm_backend/pkg/apperrors"
)

// PaymentService reads payment records. Writes happen only inside the
// status transition service.
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	companyRepo repositories.CompanyRepository
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	companyRepo repositories.CompanyRepository,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		companyRepo: companyRepo,
	}
}

// ListForInfluencer returns the caller's incoming payments.
func (s *PaymentService) ListForInfluencer(principal Principal) ([]models.Payment, error) {
	return s.paymentRepo.FindByInfluencerUser(principal.UserID)
}

// ListForCompany returns the payments owed by the caller's company.
func (s *PaymentService) ListForCompany(principal Principal) ([]models.Payment, error) {
	company, err := s.companyRepo.FindByUserID(principal.UserID)
	if err != nil {
		if err == repositories.ErrCompanyNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	return s.paymentRepo.FindByCompany(company.ID)
}

func (s *PaymentService) ListByApplication(applicationID string) ([]models.Payment, error) {
	return s.paymentRepo.FindByApplication(applicationID)
}

// ListAll serves the admin console.
func (s *PaymentService) ListAll(page, pageSize int) ([]models.Payment, int64, error) {
	return s.paymentRepo.FindAll(page, pageSize)
}
