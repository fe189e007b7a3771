package models

// AdminUser holds a bcrypt hash in PasswordHash; the column keeps the legacy
// name "password".
type AdminUser struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password;size:255;not null" json:"-"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
