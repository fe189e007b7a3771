package main

import (
	"log"
	"time"

	"github.com/autorental/car-rental-api/config"
	"github.com/autorental/car-rental-api/internal/handler"
	"github.com/autorental/car-rental-api/internal/middleware"
	"github.com/autorental/car-rental-api/internal/repository"
	"github.com/autorental/car-rental-api/internal/service"
	"github.com/autorental/car-rental-api/internal/validation"
	"github.com/autorental/car-rental-api/pkg/database"
	"github.com/autorental/car-rental-api/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.New(cfg)

	// One-shot deferred seeding; restarts never duplicate rows.
	time.AfterFunc(3*time.Second, func() {
		if err := database.Seed(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Printf("seed failed: %v", err)
		}
	})

	// Optional notification publisher
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	}

	// Repositories
	carRepo := repository.NewCarRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	contactRepo := repository.NewContactRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Services
	catalogSvc := service.NewCatalogService(carRepo)
	bookingSvc := service.NewBookingService(bookingRepo, carRepo, publisher)
	contactSvc := service.NewContactService(contactRepo, publisher)
	authSvc := service.NewAuthService(adminRepo)

	// Echo
	e := echo.New()
	e.Validator = validation.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "car-rental-api"})
	})

	handler.NewCarHandler(catalogSvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)
	handler.NewContactHandler(contactSvc).RegisterRoutes(e)
	handler.NewAdminHandler(authSvc).RegisterRoutes(e)

	log.Printf("Car Rental API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
