package database

import (
	"path/filepath"
	"testing"

	"github.com/autorental/car-rental-api/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestSeed_FirstBoot(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db, "admin@autorental.com", "admin123"))

	var cars []models.Car
	require.NoError(t, db.Order("id ASC").Find(&cars).Error)
	require.Len(t, cars, 7)
	assert.Equal(t, "Toyota Camry", cars[0].Name)
	assert.True(t, cars[0].Available)

	var admin models.AdminUser
	require.NoError(t, db.Where("email = ?", "admin@autorental.com").First(&admin).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))
}

func TestSeed_Idempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db, "admin@autorental.com", "admin123"))
	require.NoError(t, Seed(db, "admin@autorental.com", "admin123"))

	var carCount, adminCount int64
	db.Model(&models.Car{}).Count(&carCount)
	db.Model(&models.AdminUser{}).Count(&adminCount)
	assert.Equal(t, int64(7), carCount)
	assert.Equal(t, int64(1), adminCount)
}

func TestSeed_KeepsExistingCatalog(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.Car{Name: "Custom Car", Type: "Sedan", PricePerDay: 10, Available: true}).Error)

	require.NoError(t, Seed(db, "admin@autorental.com", "admin123"))

	var carCount int64
	db.Model(&models.Car{}).Count(&carCount)
	assert.Equal(t, int64(1), carCount, "non-empty catalog must not be reseeded")
}
