// Package server assembles the Fiber application: global middleware, the
// error handler and the venue routes.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/trentd187/pickleball-venue/internal/handlers"
	"github.com/trentd187/pickleball-venue/internal/middleware"
	"github.com/trentd187/pickleball-venue/internal/venue"
)

// AppName is reported in the Fiber startup banner.
const AppName = "Pickleball Venue API"

// New builds the HTTP application around svc.
func New(svc *venue.Service) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      AppName,
		ErrorHandler: handlers.ErrorHandler,
	})

	// --- Global middleware ---
	// recover turns handler panics into errors for ErrorHandler (500).
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(middleware.CORS())

	// --- Public routes ---
	app.Get("/", handlers.Root)
	app.Get("/health", handlers.HealthCheck)
	app.Get("/test", handlers.Status(svc))

	// --- Venue API ---
	api := app.Group("/api")
	api.Get("/courts", handlers.ListCourts(svc))
	api.Post("/availability", handlers.CheckAvailability(svc))
	api.Post("/book", handlers.CreateBooking(svc))
	api.Post("/contact", handlers.SubmitContact(svc))

	return app
}
