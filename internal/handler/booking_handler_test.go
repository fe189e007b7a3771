package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/autorental/car-rental-api/internal/dto"
	"github.com/autorental/car-rental-api/internal/models"
	"github.com/autorental/car-rental-api/internal/service"
	"github.com/autorental/car-rental-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock BookingService ---

type mockBookingService struct {
	createFn      func(ctx context.Context, booking *models.Booking) (*models.Booking, *models.Car, error)
	listFn        func(ctx context.Context) ([]models.Booking, error)
	listByEmailFn func(ctx context.Context, email string) ([]models.Booking, error)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, *models.Car, error) {
	return m.createFn(ctx, booking)
}
func (m *mockBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return m.listFn(ctx)
}
func (m *mockBookingService) ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return m.listByEmailFn(ctx, email)
}

func newContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = validation.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// --- Tests ---

func TestCreateBooking_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, booking *models.Booking) (*models.Booking, *models.Car, error) {
			booking.ID = 1
			booking.Status = models.StatusPending
			return booking, &models.Car{ID: booking.CarID, Name: "Toyota Camry"}, nil
		},
	}

	body := `{"car_id":1,"user_name":"A","user_email":"a@b.com","user_phone":"123","driver_license":"L1","pickup_date":"2024-01-01","return_date":"2024-01-03","total_days":2,"total_price":100}`
	c, rec := newContext(t, http.MethodPost, "/api/bookings", body)

	h := NewBookingHandler(svc)
	err := h.CreateBooking(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, uint(1), resp.BookingID)
	assert.Equal(t, "Toyota Camry", resp.CarName)
	assert.Equal(t, 100.0, resp.TotalPrice)
}

func TestCreateBooking_Handler_MissingFields(t *testing.T) {
	called := false
	svc := &mockBookingService{
		createFn: func(ctx context.Context, booking *models.Booking) (*models.Booking, *models.Car, error) {
			called = true
			return nil, nil, nil
		},
	}

	body := `{"car_id":1,"user_email":"a@b.com"}`
	c, _ := newContext(t, http.MethodPost, "/api/bookings", body)

	h := NewBookingHandler(svc)
	err := h.CreateBooking(c)

	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.False(t, called, "service must not be reached on validation failure")
}

func TestCreateBooking_Handler_CarNotFound(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, booking *models.Booking) (*models.Booking, *models.Car, error) {
			return nil, nil, service.ErrCarNotFound
		},
	}

	body := `{"car_id":999,"user_name":"A","user_email":"a@b.com","user_phone":"123","driver_license":"L1","pickup_date":"2024-01-01","return_date":"2024-01-03","total_days":2,"total_price":100}`
	c, _ := newContext(t, http.MethodPost, "/api/bookings", body)

	h := NewBookingHandler(svc)
	err := h.CreateBooking(c)

	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestListBookings_Handler_FlattensCarFields(t *testing.T) {
	svc := &mockBookingService{
		listFn: func(ctx context.Context) ([]models.Booking, error) {
			return []models.Booking{
				{
					ID: 1, CarID: 2, UserName: "A", Status: models.StatusPending,
					Car: &models.Car{ID: 2, Name: "BMW X5", ImageURL: "bmw-x5.jpg", Type: "SUV"},
				},
			}, nil
		},
	}

	c, rec := newContext(t, http.MethodGet, "/api/bookings", "")

	h := NewBookingHandler(svc)
	require.NoError(t, h.ListBookings(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BookingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "BMW X5", resp.Bookings[0].CarName)
	assert.Equal(t, "bmw-x5.jpg", resp.Bookings[0].CarImage)
	assert.Equal(t, "SUV", resp.Bookings[0].CarType)
}

func TestListBookingsByEmail_Handler(t *testing.T) {
	var requested string
	svc := &mockBookingService{
		listByEmailFn: func(ctx context.Context, email string) ([]models.Booking, error) {
			requested = email
			return []models.Booking{}, nil
		},
	}

	c, rec := newContext(t, http.MethodGet, "/api/bookings/email/a@b.com", "")
	c.SetParamNames("email")
	c.SetParamValues("a@b.com")

	h := NewBookingHandler(svc)
	require.NoError(t, h.ListBookingsByEmail(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@b.com", requested)
}
