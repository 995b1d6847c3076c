package main

import (
	"log"

	"github.com/devansh2311/deskmate/config"
	"github.com/devansh2311/deskmate/internal/handler"
	"github.com/devansh2311/deskmate/internal/middleware"
	"github.com/devansh2311/deskmate/internal/notifier"
	"github.com/devansh2311/deskmate/internal/repository"
	"github.com/devansh2311/deskmate/internal/service"
	"github.com/devansh2311/deskmate/pkg/database"
	"github.com/devansh2311/deskmate/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())
	database.Seed(db)

	// Booking events are best-effort; the service must boot without a broker.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Printf("rabbitmq unavailable, booking events disabled: %v", err)
	} else {
		defer publisher.Close()
	}

	mailer := notifier.NewEmailNotifier(
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom,
	)

	// Repositories
	deskRepo := repository.NewDeskRepository(db)
	deskBookingRepo := repository.NewDeskBookingRepository(db)
	roomRepo := repository.NewMeetingRoomRepository(db)
	roomBookingRepo := repository.NewMeetingRoomBookingRepository(db)

	// Services
	deskSvc := service.NewDeskService(deskRepo, deskBookingRepo, mailer, publisher)
	roomSvc := service.NewMeetingRoomService(roomRepo, roomBookingRepo, mailer, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = middleware.NewValidator()
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

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "deskmate"})
	})

	handler.NewDeskHandler(deskSvc).RegisterRoutes(e)
	handler.NewMeetingRoomHandler(roomSvc).RegisterRoutes(e)

	log.Printf("Deskmate starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
