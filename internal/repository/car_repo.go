package repository

import (
	"context"

	"github.com/autorental/car-rental-api/internal/models"
	"gorm.io/gorm"
)

type CarRepository interface {
	FindAvailable(ctx context.Context) ([]models.Car, error)
	FindAvailableByID(ctx context.Context, id uint) (*models.Car, error)
	FindAvailableByIDTx(ctx context.Context, tx *gorm.DB, id uint) (*models.Car, error)
	DistinctTypes(ctx context.Context) ([]string, error)
}

type carRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) FindAvailable(ctx context.Context) ([]models.Car, error) {
	var cars []models.Car
	err := r.db.WithContext(ctx).
		Where("available = ?", true).
		Order("name ASC").
		Find(&cars).Error
	if err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *carRepository) FindAvailableByID(ctx context.Context, id uint) (*models.Car, error) {
	return r.findAvailableByID(ctx, r.db, id)
}

// FindAvailableByIDTx re-checks the car inside the booking transaction so the
// insert cannot race a concurrent delete.
func (r *carRepository) FindAvailableByIDTx(ctx context.Context, tx *gorm.DB, id uint) (*models.Car, error) {
	return r.findAvailableByID(ctx, tx, id)
}

func (r *carRepository) findAvailableByID(ctx context.Context, db *gorm.DB, id uint) (*models.Car, error) {
	var car models.Car
	err := db.WithContext(ctx).
		Where("available = ?", true).
		First(&car, id).Error
	if err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *carRepository) DistinctTypes(ctx context.Context) ([]string, error) {
	var types []string
	err := r.db.WithContext(ctx).
		Model(&models.Car{}).
		Where("available = ?", true).
		Distinct("type").
		Order("type ASC").
		Pluck("type", &types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}
