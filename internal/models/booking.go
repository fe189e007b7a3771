package models

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking stores total_days and total_price exactly as supplied by the
// client; the server does not recompute them from the date range.
type Booking struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	CarID           uint          `gorm:"not null" json:"car_id"`
	UserName        string        `gorm:"size:100;not null" json:"user_name"`
	UserEmail       string        `gorm:"size:100;not null" json:"user_email"`
	UserPhone       string        `gorm:"size:20;not null" json:"user_phone"`
	DriverLicense   string        `gorm:"size:50;not null" json:"driver_license"`
	PickupDate      string        `gorm:"type:date;not null" json:"pickup_date"`
	ReturnDate      string        `gorm:"type:date;not null" json:"return_date"`
	TotalDays       int           `gorm:"not null" json:"total_days"`
	TotalPrice      float64       `gorm:"not null" json:"total_price"`
	SpecialRequests string        `json:"special_requests"`
	Status          BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt       time.Time     `json:"created_at"`

	Car *Car `gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE" json:"car,omitempty"`
}
