package service

import (
	"context"
	"errors"

	"github.com/autorental/car-rental-api/internal/models"
	"github.com/autorental/car-rental-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.AdminUser, error)
}

type authService struct {
	adminRepo repository.AdminRepository
}

func NewAuthService(adminRepo repository.AdminRepository) AuthService {
	return &authService{adminRepo: adminRepo}
}

// Login verifies the password against the stored bcrypt hash. Email lookup is
// an exact match, so case differences fail like any other mismatch.
func (s *authService) Login(ctx context.Context, email, password string) (*models.AdminUser, error) {
	user, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
