// Package handlers contains the HTTP route handler functions for the Pickleball Venue API.
// Each handler corresponds to one API endpoint and is responsible for reading the
// request, calling the venue service, and writing a response.
//
// Handlers follow the "handler factory" pattern: they take the *venue.Service and
// return a fiber.Handler, so the store is injected without global variables.
// Errors are returned, not written: the app-level ErrorHandler turns them into
// HTTP responses.
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/pickleball-venue/internal/venue"
)

// RootMessage is the body of GET /.
const RootMessage = "Pickleball Venue Backend is running"

// Root handles GET /.
func Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": RootMessage})
}

// HealthCheck handles GET /health.
// A lightweight liveness check for load balancers: no store access.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Status handles GET /test, the diagnostic report. It always answers 200;
// problems with the store are described inside the body.
func Status(svc *venue.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Status(c.UserContext()))
	}
}
