package handler

import (
	"log"
	"net/http"

	"github.com/autorental/car-rental-api/internal/dto"
	"github.com/autorental/car-rental-api/internal/service"
	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	svc service.ContactService
}

func NewContactHandler(svc service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

func (h *ContactHandler) RegisterRoutes(e *echo.Echo) {
	contact := e.Group("/api/contact")
	contact.POST("", h.SubmitMessage)
	contact.GET("/messages", h.ListMessages)
}

func (h *ContactHandler) SubmitMessage(c echo.Context) error {
	var req dto.ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message := req.ToModel()
	if err := h.svc.SubmitMessage(c.Request().Context(), message); err != nil {
		log.Printf("submit contact message: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to send message")
	}

	return c.JSON(http.StatusCreated, dto.ContactSubmitResponse{
		Success:   true,
		Message:   "Message sent successfully! We will get back to you soon.",
		MessageID: message.ID,
	})
}

func (h *ContactHandler) ListMessages(c echo.Context) error {
	messages, err := h.svc.ListMessages(c.Request().Context())
	if err != nil {
		log.Printf("list contact messages: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch messages")
	}

	return c.JSON(http.StatusOK, dto.MessageListResponse{Success: true, Messages: messages})
}
