package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/autorental/car-rental-api/internal/dto"
	"github.com/autorental/car-rental-api/internal/service"
	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	svc service.AuthService
}

func NewAdminHandler(svc service.AuthService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/admin/login", h.Login)
}

// Login always answers 200; the frontend distinguishes outcomes solely by the
// success flag. No token is issued — the client keeps the email around as its
// only authentication artifact.
func (h *AdminHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusOK, dto.LoginFailedResponse{
			Success: false,
			Message: "Email and password are required",
		})
	}

	user, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			log.Printf("admin login: %v", err)
			return c.JSON(http.StatusOK, dto.LoginFailedResponse{
				Success: false,
				Message: "Login failed. Please try again.",
			})
		}
		return c.JSON(http.StatusOK, dto.LoginFailedResponse{
			Success: false,
			Message: "Invalid email or password",
		})
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{Success: true, UserID: user.ID})
}
