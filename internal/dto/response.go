package dto

import (
	"time"

	"github.com/autorental/car-rental-api/internal/models"
)

type CarListResponse struct {
	Success bool         `json:"success"`
	Cars    []models.Car `json:"cars"`
}

type CarTypesResponse struct {
	Success bool     `json:"success"`
	Types   []string `json:"types"`
}

type CarResponse struct {
	Success bool        `json:"success"`
	Car     *models.Car `json:"car"`
}

type CreateBookingResponse struct {
	Success    bool    `json:"success"`
	BookingID  uint    `json:"bookingId"`
	CarName    string  `json:"carName"`
	TotalPrice float64 `json:"totalPrice"`
}

// BookingItem flattens the joined car display fields into the booking row,
// matching the shape the admin dashboard and "my bookings" views expect.
type BookingItem struct {
	ID              uint                 `json:"id"`
	CarID           uint                 `json:"car_id"`
	UserName        string               `json:"user_name"`
	UserEmail       string               `json:"user_email"`
	UserPhone       string               `json:"user_phone"`
	DriverLicense   string               `json:"driver_license"`
	PickupDate      string               `json:"pickup_date"`
	ReturnDate      string               `json:"return_date"`
	TotalDays       int                  `json:"total_days"`
	TotalPrice      float64              `json:"total_price"`
	SpecialRequests string               `json:"special_requests"`
	Status          models.BookingStatus `json:"status"`
	CreatedAt       time.Time            `json:"created_at"`
	CarName         string               `json:"car_name"`
	CarImage        string               `json:"car_image"`
	CarType         string               `json:"car_type"`
}

type BookingListResponse struct {
	Success  bool          `json:"success"`
	Bookings []BookingItem `json:"bookings"`
}

type ContactSubmitResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID uint   `json:"messageId"`
}

type MessageListResponse struct {
	Success  bool                    `json:"success"`
	Messages []models.ContactMessage `json:"messages"`
}

type LoginResponse struct {
	Success bool `json:"success"`
	UserID  uint `json:"userId"`
}

type LoginFailedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func ToBookingItem(b *models.Booking) BookingItem {
	item := BookingItem{
		ID:              b.ID,
		CarID:           b.CarID,
		UserName:        b.UserName,
		UserEmail:       b.UserEmail,
		UserPhone:       b.UserPhone,
		DriverLicense:   b.DriverLicense,
		PickupDate:      b.PickupDate,
		ReturnDate:      b.ReturnDate,
		TotalDays:       b.TotalDays,
		TotalPrice:      b.TotalPrice,
		SpecialRequests: b.SpecialRequests,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
	}
	if b.Car != nil {
		item.CarName = b.Car.Name
		item.CarImage = b.Car.ImageURL
		item.CarType = b.Car.Type
	}
	return item
}
