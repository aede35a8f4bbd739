package dto

import "prizm_backend/internal/models"

type UpsertBankAccountRequest struct {
	BankName      string                 `json:"bank_name" validate:"required,max=100"`
	BranchName    string                 `json:"branch_name" validate:"omitempty,max=100"`
	AccountType   models.BankAccountType `json:"account_type" validate:"required,is-account-type"`
	AccountNumber string                 `json:"account_number" validate:"required,max=20"`
	HolderName    string                 `json:"holder_name" validate:"required,max=100"`
}

type BankAccountResponse struct {
	BankName         string                 `json:"bank_name"`
	BranchName       string                 `json:"branch_name"`
	AccountType      models.BankAccountType `json:"account_type"`
	AccountTypeLabel string                 `json:"account_type_label"`
	AccountNumber    string                 `json:"account_number"`
	HolderName       string                 `json:"holder_name"`
}
