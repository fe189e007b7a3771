package models

import "time"

type Car struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Brand        string    `gorm:"size:50" json:"brand"`
	Model        string    `gorm:"size:50" json:"model"`
	Type         string    `gorm:"size:50;not null" json:"type"`
	Year         int       `json:"year"`
	PricePerDay  float64   `gorm:"not null" json:"price_per_day"`
	Seats        int       `json:"seats"`
	Transmission string    `gorm:"size:20" json:"transmission"`
	FuelType     string    `gorm:"size:20" json:"fuel_type"`
	Features     string    `json:"features"` // comma-joined list
	Description  string    `json:"description"`
	ImageURL     string    `gorm:"size:255" json:"image_url"`
	Available    bool      `gorm:"default:true" json:"available"`
	CreatedAt    time.Time `json:"created_at"`
}
