package service

import (
	"context"
	"errors"

	"github.com/autorental/car-rental-api/internal/models"
	"github.com/autorental/car-rental-api/internal/repository"
	"github.com/autorental/car-rental-api/pkg/rabbitmq"
	"gorm.io/gorm"
)

type BookingService interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, *models.Car, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	carRepo     repository.CarRepository
	publisher   *rabbitmq.Publisher
}

func NewBookingService(bookingRepo repository.BookingRepository, carRepo repository.CarRepository, publisher *rabbitmq.Publisher) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		publisher:   publisher,
	}
}

// CreateBooking inserts a pending booking for an available car. TotalDays and
// TotalPrice on the input are stored verbatim; only field presence is
// validated upstream.
func (s *bookingService) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, *models.Car, error) {
	var car *models.Car

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. The car must still exist and be available at insert time
		found, err := s.carRepo.FindAvailableByIDTx(ctx, tx, booking.CarID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCarNotFound
			}
			return err
		}
		car = found

		// 2. Every new booking starts out pending
		booking.Status = models.StatusPending
		return s.bookingRepo.Create(ctx, tx, booking)
	})
	if err != nil {
		return nil, nil, err
	}

	// Best-effort notification; the booking stands either way
	if s.publisher != nil {
		_ = s.publisher.Publish("booking.created", booking)
	}

	return booking, car, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.bookingRepo.FindAll(ctx)
}

func (s *bookingService) ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return s.bookingRepo.FindByUserEmail(ctx, email)
}
