package database

import (
	"log"

	"github.com/autorental/car-rental-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SampleCars is the fixed seven-car catalog inserted on first boot.
var SampleCars = []models.Car{
	{Name: "Toyota Camry", Brand: "Toyota", Model: "Camry", Type: "Sedan", Year: 2023, PricePerDay: 50.00, Seats: 5, Transmission: "Automatic", FuelType: "Gasoline", Features: "AC,Bluetooth,Navigation,Backup Camera", Description: "Comfortable and reliable sedan perfect for city driving.", ImageURL: "toyota-camry.jpg", Available: true},
	{Name: "Honda Civic", Brand: "Honda", Model: "Civic", Type: "Sedan", Year: 2024, PricePerDay: 45.00, Seats: 5, Transmission: "Automatic", FuelType: "Gasoline", Features: "AC,Apple CarPlay,Android Auto,Safety Features", Description: "Stylish and fuel-efficient compact car.", ImageURL: "honda-civic.jpg", Available: true},
	{Name: "BMW X5", Brand: "BMW", Model: "X5", Type: "SUV", Year: 2023, PricePerDay: 120.00, Seats: 7, Transmission: "Automatic", FuelType: "Gasoline", Features: "AC,Leather Seats,Sunroof,GPS,Parking Sensors", Description: "Luxury SUV with premium features and comfort.", ImageURL: "bmw-x5.jpg", Available: true},
	{Name: "Mercedes C-Class", Brand: "Mercedes", Model: "C-Class", Type: "Luxury", Year: 2024, PricePerDay: 100.00, Seats: 5, Transmission: "Automatic", FuelType: "Gasoline", Features: "AC,Premium Sound,Heated Seats,Adaptive Cruise", Description: "Elegant and powerful luxury sedan.", ImageURL: "mercedes-cclass.jpg", Available: true},
	{Name: "Ford Mustang", Brand: "Ford", Model: "Mustang", Type: "Sports", Year: 2023, PricePerDay: 150.00, Seats: 4, Transmission: "Manual", FuelType: "Gasoline", Features: "AC,Sports Mode,Performance Tires,Racing Seats", Description: "Iconic American muscle car for thrill seekers.", ImageURL: "ford-mustang.jpg", Available: true},
	{Name: "Toyota RAV4", Brand: "Toyota", Model: "RAV4", Type: "SUV", Year: 2024, PricePerDay: 70.00, Seats: 5, Transmission: "Automatic", FuelType: "Hybrid", Features: "AC,All-Wheel Drive,Spacious Cargo,Safety Suite", Description: "Reliable SUV perfect for family trips.", ImageURL: "toyota-rav4.jpg", Available: true},
	{Name: "Hyundai Elantra", Brand: "Hyundai", Model: "Elantra", Type: "Economy", Year: 2024, PricePerDay: 35.00, Seats: 5, Transmission: "Automatic", FuelType: "Gasoline", Features: "AC,Basic Features,Fuel Efficient", Description: "Affordable and practical daily driver.", ImageURL: "hyundai-elantra.jpg", Available: true},
}

// Seed inserts the sample catalog and the admin credential. Both inserts are
// guarded by emptiness checks so a restart never duplicates rows.
func Seed(db *gorm.DB, adminEmail, adminPassword string) error {
	var carCount int64
	if err := db.Model(&models.Car{}).Count(&carCount).Error; err != nil {
		return err
	}
	if carCount == 0 {
		cars := make([]models.Car, len(SampleCars))
		copy(cars, SampleCars)
		if err := db.Create(&cars).Error; err != nil {
			return err
		}
		log.Printf("seeded %d sample cars", len(cars))
	}

	var adminCount int64
	if err := db.Model(&models.AdminUser{}).Where("email = ?", adminEmail).Count(&adminCount).Error; err != nil {
		return err
	}
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.AdminUser{Email: adminEmail, PasswordHash: string(hash)}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Printf("seeded admin user %s", adminEmail)
	}

	return nil
}
