// Package middleware contains HTTP middleware functions for the Pickleball Venue API.
// Middleware sits between the HTTP server and route handlers: it runs on every
// request that passes through it, making it the right place for cross-cutting
// concerns like the cross-origin policy.
package middleware

import (
	"github.com/gofiber/fiber/v2"
	// cors handles Cross-Origin Resource Sharing, which lets the venue website talk to
	// the API even though they're served from different origins (hosts/ports)
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS returns the venue's fixed cross-origin policy: every origin, method and
// header is allowed, and credentials (cookies, auth headers) may be sent.
//
// Browsers refuse a literal "*" origin on credentialed requests, so instead of
// AllowOrigins: "*" we use AllowOriginsFunc and accept every origin. The
// library then echoes the caller's Origin back in Access-Control-Allow-Origin.
// Leaving AllowMethods and AllowHeaders at their defaults allows the common
// methods and reflects whatever headers the preflight asks for.
func CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOriginsFunc: func(string) bool { return true },
		AllowCredentials: true,
	})
}
