package service

import (
	"context"
	"errors"

	"github.com/autorental/car-rental-api/internal/models"
	"github.com/autorental/car-rental-api/internal/repository"
	"gorm.io/gorm"
)

var ErrCarNotFound = errors.New("car not found")

// CatalogService serves the public car catalog. Cars flagged unavailable are
// invisible to every operation here.
type CatalogService interface {
	ListAvailableCars(ctx context.Context) ([]models.Car, error)
	ListCarTypes(ctx context.Context) ([]string, error)
	GetCar(ctx context.Context, id uint) (*models.Car, error)
}

type catalogService struct {
	carRepo repository.CarRepository
}

func NewCatalogService(carRepo repository.CarRepository) CatalogService {
	return &catalogService{carRepo: carRepo}
}

func (s *catalogService) ListAvailableCars(ctx context.Context) ([]models.Car, error) {
	return s.carRepo.FindAvailable(ctx)
}

// ListCarTypes returns the distinct types of available cars with the
// synthetic "All" value prepended for the frontend filter bar.
func (s *catalogService) ListCarTypes(ctx context.Context) ([]string, error) {
	types, err := s.carRepo.DistinctTypes(ctx)
	if err != nil {
		return nil, err
	}
	return append([]string{"All"}, types...), nil
}

func (s *catalogService) GetCar(ctx context.Context, id uint) (*models.Car, error) {
	car, err := s.carRepo.FindAvailableByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, err
	}
	return car, nil
}
