package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/autorental/car-rental-api/internal/dto"
	"github.com/autorental/car-rental-api/internal/service"
	"github.com/labstack/echo/v4"
)

type CarHandler struct {
	svc service.CatalogService
}

func NewCarHandler(svc service.CatalogService) *CarHandler {
	return &CarHandler{svc: svc}
}

func (h *CarHandler) RegisterRoutes(e *echo.Echo) {
	cars := e.Group("/api/cars")
	cars.GET("", h.ListCars)
	cars.GET("/types", h.ListTypes)
	cars.GET("/:id", h.GetCar)
}

func (h *CarHandler) ListCars(c echo.Context) error {
	cars, err := h.svc.ListAvailableCars(c.Request().Context())
	if err != nil {
		log.Printf("list cars: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch cars")
	}

	return c.JSON(http.StatusOK, dto.CarListResponse{Success: true, Cars: cars})
}

func (h *CarHandler) ListTypes(c echo.Context) error {
	types, err := h.svc.ListCarTypes(c.Request().Context())
	if err != nil {
		log.Printf("list car types: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch car types")
	}

	return c.JSON(http.StatusOK, dto.CarTypesResponse{Success: true, Types: types})
}

func (h *CarHandler) GetCar(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid car id")
	}

	car, err := h.svc.GetCar(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrCarNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Car not found")
		}
		log.Printf("get car %d: %v", id, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch car")
	}

	return c.JSON(http.StatusOK, dto.CarResponse{Success: true, Car: car})
}
