package repository

import (
	"context"

	"github.com/autorental/car-rental-api/internal/models"
	"gorm.io/gorm"
)

type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
