package router

import (
    "github.com/labstack/echo/v4"

    "github.com/SAKSAUD7/ninjainflatablepark/internal/handler"
)

// PublicHandlers bundles the handlers behind the unauthenticated surface.
type PublicHandlers struct {
    Bookings *handler.BookingHandler
    Parties  *handler.PartyHandler
    Waivers  *handler.WaiverHandler
    Vouchers *handler.VoucherPreviewHandler
}

// RegisterPublic registers the guest-facing endpoints.  The limiter
// middleware (a Redis token bucket, or a pass-through when rate limiting
// is disabled) wraps only the submission endpoints: ticket lookups and
// catalog reads stay unthrottled.
func RegisterPublic(e *echo.Echo, h PublicHandlers, limiter echo.MiddlewareFunc) {
    // Session bookings.
    e.POST("/v1/bookings", h.Bookings.Create, limiter)
    e.GET("/v1/bookings/ticket/:uuid", h.Bookings.Ticket)

    // Party bookings and their participant roster.
    e.GET("/v1/party-packages", h.Parties.ListPackages)
    e.POST("/v1/party-bookings", h.Parties.Create, limiter)
    e.GET("/v1/party-bookings/ticket/:uuid", h.Parties.Ticket)
    e.POST("/v1/party-bookings/:uuid/add_participants", h.Parties.AddParticipants, limiter)

    // Waiver signing (walk-in or booking-linked).
    e.POST("/v1/waivers", h.Waivers.Create, limiter)

    // Pre-checkout voucher preview.
    e.GET("/v1/vouchers/validate", h.Vouchers.Validate)
}
