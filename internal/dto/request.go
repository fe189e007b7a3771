package dto

import "github.com/autorental/car-rental-api/internal/models"

// Validation is presence-only across all requests: no format rules, no date
// ordering check, no check that the totals match the price table.

type CreateBookingRequest struct {
	CarID           uint    `json:"car_id" validate:"required"`
	UserName        string  `json:"user_name" validate:"required"`
	UserEmail       string  `json:"user_email" validate:"required"`
	UserPhone       string  `json:"user_phone" validate:"required"`
	DriverLicense   string  `json:"driver_license" validate:"required"`
	PickupDate      string  `json:"pickup_date" validate:"required"`
	ReturnDate      string  `json:"return_date" validate:"required"`
	TotalDays       int     `json:"total_days" validate:"required"`
	TotalPrice      float64 `json:"total_price" validate:"required"`
	SpecialRequests string  `json:"special_requests"`
}

func (r *CreateBookingRequest) ToModel() *models.Booking {
	return &models.Booking{
		CarID:           r.CarID,
		UserName:        r.UserName,
		UserEmail:       r.UserEmail,
		UserPhone:       r.UserPhone,
		DriverLicense:   r.DriverLicense,
		PickupDate:      r.PickupDate,
		ReturnDate:      r.ReturnDate,
		TotalDays:       r.TotalDays,
		TotalPrice:      r.TotalPrice,
		SpecialRequests: r.SpecialRequests,
	}
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func (r *ContactRequest) ToModel() *models.ContactMessage {
	return &models.ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
