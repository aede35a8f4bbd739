package models

type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Name         string     `json:"name"`
	Role         UserRole   `gorm:"not null;index" json:"role"`
	Status       UserStatus `gorm:"default:'active'" json:"status"`
}
