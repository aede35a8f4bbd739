package models

// BankAccount is an influencer's payout destination, one per user.
// Read by the status transition service when a post is confirmed to
// forward transfer details to the company.
type BankAccount struct {
	BaseModel
	UserID        string          `gorm:"uniqueIndex;not null" json:"user_id"`
	BankName      string          `gorm:"not null" json:"bank_name"`
	BranchName    string          `json:"branch_name"`
	AccountType   BankAccountType `gorm:"default:'ordinary'" json:"account_type"`
	AccountNumber string          `gorm:"not null" json:"account_number"`
	HolderName    string          `gorm:"not null" json:"holder_name"`
}
