package router

import (
    "fmt"

    "github.com/labstack/echo/v4"

    "github.com/SAKSAUD7/ninjainflatablepark/internal/handler"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/middleware"
)

// AdminHandlers bundles the handlers behind the staff surface.
type AdminHandlers struct {
    Bookings     *handler.AdminBookingHandler
    Parties      *handler.AdminPartyHandler
    Waivers      *handler.AdminWaiverHandler
    Transactions *handler.AdminTransactionHandler
    Customers    *handler.AdminCustomerHandler
    Vouchers     *handler.AdminVoucherHandler
    Blocks       *handler.AdminBlockHandler
    Dashboard    *handler.AdminDashboardHandler
    Users        *handler.AdminUserHandler
}

// RegisterAdmin wires every staff operation from the capability table.
// Each route gets JWT auth plus the role set the table declares; a
// capability without a bound handler is a programming error and panics at
// startup.
func RegisterAdmin(e *echo.Echo, h AdminHandlers, jwtSecret string) {
    bound := map[string]echo.HandlerFunc{
        "bookings.list":         h.Bookings.List,
        "bookings.get":          h.Bookings.Get,
        "bookings.status":       h.Bookings.PatchStatus,
        "bookings.transactions": h.Transactions.ListByBooking,
        "parties.list":          h.Parties.List,
        "parties.get":           h.Parties.Get,
        "parties.status":        h.Parties.PatchStatus,
        "parties.edit":          h.Parties.Patch,
        "waivers.list":          h.Waivers.List,
        "waivers.get":           h.Waivers.Get,
        "transactions.create":   h.Transactions.Create,
        "customers.list":        h.Customers.List,
        "customers.notes":       h.Customers.UpdateNotes,
        "dashboard.stats":       h.Dashboard.GetStats,
        "vouchers.list":         h.Vouchers.List,
        "vouchers.create":       h.Vouchers.Create,
        "vouchers.set_active":   h.Vouchers.SetActive,
        "booking_blocks.list":   h.Blocks.List,
        "booking_blocks.create": h.Blocks.Create,
        "booking_blocks.delete": h.Blocks.Delete,
        "users.create":          h.Users.Create,
    }

    auth := middleware.JWTAuth(jwtSecret)
    for op, cap := range Capabilities() {
        fn, ok := bound[op]
        if !ok {
            panic(fmt.Sprintf("capability %q has no handler", op))
        }
        e.Add(cap.Method, cap.Path, fn, auth, middleware.RequireRole(cap.Roles...))
    }
}
