package services

import (
	"prizm_backend/internal/models"
	"prizm_backend/internal/repositories"
	"prizm_backend/internal/services/dto"
	"prizm_backend/pkg/apperrors"
)

// BankAccountService manages the influencer's single payout destination.
type BankAccountService struct {
	bankAccountRepo repositories.BankAccountRepository
}

func NewBankAccountService(bankAccountRepo repositories.BankAccountRepository) *BankAccountService {
	return &BankAccountService{bankAccountRepo: bankAccountRepo}
}

// Upsert creates or replaces the caller's payout destination.
func (s *BankAccountService) Upsert(principal Principal, req *dto.UpsertBankAccountRequest) (*dto.BankAccountResponse, error) {
	account := &models.BankAccount{
		UserID:        principal.UserID,
		BankName:      req.BankName,
		BranchName:    req.BranchName,
		AccountType:   req.AccountType,
		AccountNumber: req.AccountNumber,
		HolderName:    req.HolderName,
	}
	if err := s.bankAccountRepo.Upsert(account); err != nil {
		return nil, err
	}
	return buildBankAccountResponse(account), nil
}

func (s *BankAccountService) Get(principal Principal) (*dto.BankAccountResponse, error) {
	account, err := s.bankAccountRepo.FindByUserID(principal.UserID)
	if err != nil {
		if err == repositories.ErrBankAccountNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	return buildBankAccountResponse(account), nil
}

func buildBankAccountResponse(account *models.BankAccount) *dto.BankAccountResponse {
	return &dto.BankAccountResponse{
		BankName:         account.BankName,
		BranchName:       account.BranchName,
		AccountType:      account.AccountType,
		AccountTypeLabel: account.AccountType.Label(),
		AccountNumber:    account.AccountNumber,
		HolderName:       account.HolderName,
	}
}
