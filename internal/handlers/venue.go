// Package handlers contains HTTP route handler functions for the Pickleball Venue API.
// This file handles the /api routes of the venue: court listing, availability,
// bookings and contact messages.
//
// Every handler has the same three steps:
//
//  1. Parse the JSON body into a request struct from package validation.
//  2. Call the matching venue.Service method, which validates and does the work.
//  3. Write the result as JSON, or return the error.
//
// Handlers never write error responses themselves. Returning an error hands it
// to ErrorHandler (errors.go), which picks the status code: 422 for validation
// errors, 409 for a taken slot and 500 for anything else.
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/pickleball-venue/internal/validation"
	"github.com/trentd187/pickleball-venue/internal/venue"
)

// ListCourts handles GET /api/courts. It never fails; an unreachable store
// yields an empty list.
func ListCourts(svc *venue.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// c.UserContext() is the request's context.Context, passed down so store
		// calls can be cancelled along with the request.
		return c.JSON(svc.ListCourts(c.UserContext()))
	}
}

// CheckAvailability handles POST /api/availability.
//
// Body: {"date": "YYYY-MM-DD", "court_id": "c1"}; court_id is optional.
func CheckAvailability(svc *venue.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// BodyParser reads the request body into req using the struct's json tags.
		// A body that isn't valid JSON, or has a field of the wrong type, is
		// turned into the same 422 shape as any other validation failure.
		var req validation.AvailabilityRequest
		if err := c.BodyParser(&req); err != nil {
			return validation.FromDecodeError(err)
		}

		av, err := svc.CheckAvailability(c.UserContext(), &req)
		if err != nil {
			return err
		}
		return c.JSON(av)
	}
}

// CreateBooking handles POST /api/book.
// Returns {"ok": true, "id": ...}, or 409 when the slot is already taken.
func CreateBooking(svc *venue.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req validation.BookingRequest
		if err := c.BodyParser(&req); err != nil {
			return validation.FromDecodeError(err)
		}

		receipt, err := svc.CreateBooking(c.UserContext(), &req)
		if err != nil {
			// venue.ErrConflict (409) and validation errors (422) are both
			// mapped by ErrorHandler; nothing to special-case here.
			return err
		}
		return c.JSON(receipt)
	}
}

// SubmitContact handles POST /api/contact.
// Body: full_name, email, subject and message are required; phone is optional.
func SubmitContact(svc *venue.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req validation.ContactRequest
		if err := c.BodyParser(&req); err != nil {
			return validation.FromDecodeError(err)
		}

		receipt, err := svc.SubmitContact(c.UserContext(), &req)
		if err != nil {
			return err
		}
		return c.JSON(receipt)
	}
}
