package repositories

import (
	"errors"

	"prizm_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrBankAccountNotFound = errors.New("bank account not found")

type BankAccountRepository interface {
	// Upsert creates or replaces the user's single payout destination.
	Upsert(account *models.BankAccount) error
	FindByUserID(userID string) (*models.BankAccount, error)
}

type BankAccountRepositoryImpl struct {
	db *gorm.DB
}

func NewBankAccountRepository(db *gorm.DB) BankAccountRepository {
	return &BankAccountRepositoryImpl{db: db}
}

func (r *BankAccountRepositoryImpl) Upsert(account *models.BankAccount) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"bank_name", "branch_name", "account_type", "account_number", "holder_name", "updated_at",
		}),
	}).Create(account).Error
}

func (r *BankAccountRepositoryImpl) FindByUserID(userID string) (*models.BankAccount, error) {
	var account models.BankAccount
	if err := r.db.First(&account, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBankAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}
