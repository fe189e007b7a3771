package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/autorental/car-rental-api/internal/dto"
	"github.com/autorental/car-rental-api/internal/models"
	"github.com/autorental/car-rental-api/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	bookings := e.Group("/api/bookings")
	bookings.POST("", h.CreateBooking)
	bookings.GET("", h.ListBookings)
	bookings.GET("/email/:email", h.ListBookingsByEmail)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, car, err := h.svc.CreateBooking(c.Request().Context(), req.ToModel())
	if err != nil {
		if errors.Is(err, service.ErrCarNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Car not found or unavailable")
		}
		log.Printf("create booking: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create booking")
	}

	return c.JSON(http.StatusCreated, dto.CreateBookingResponse{
		Success:    true,
		BookingID:  booking.ID,
		CarName:    car.Name,
		TotalPrice: booking.TotalPrice,
	})
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.svc.ListBookings(c.Request().Context())
	if err != nil {
		log.Printf("list bookings: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch bookings")
	}

	return c.JSON(http.StatusOK, toBookingList(bookings))
}

func (h *BookingHandler) ListBookingsByEmail(c echo.Context) error {
	bookings, err := h.svc.ListBookingsByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		log.Printf("list bookings by email: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch bookings")
	}

	return c.JSON(http.StatusOK, toBookingList(bookings))
}

func toBookingList(bookings []models.Booking) dto.BookingListResponse {
	items := make([]dto.BookingItem, len(bookings))
	for i := range bookings {
		items[i] = dto.ToBookingItem(&bookings[i])
	}
	return dto.BookingListResponse{Success: true, Bookings: items}
}
