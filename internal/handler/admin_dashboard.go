package handler

import (
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/SAKSAUD7/ninjainflatablepark/internal/repository"
)

// AdminDashboardHandler serves the aggregated staff dashboard.
type AdminDashboardHandler struct {
    Stats    *repository.StatsRepo
    Bookings *repository.BookingRepo
}

// NewAdminDashboardHandler constructs an AdminDashboardHandler.
func NewAdminDashboardHandler(s *repository.StatsRepo, b *repository.BookingRepo) *AdminDashboardHandler {
    if s == nil || b == nil {
        panic("nil repository passed to NewAdminDashboardHandler")
    }
    return &AdminDashboardHandler{Stats: s, Bookings: b}
}

// recentBookingsLimit caps the teaser list at the top of the dashboard.
const recentBookingsLimit = 5

// GetStats handles GET /v1/admin/dashboard/stats.  All rollups are
// computed fresh per request; "today" is the server's UTC date.
func (h *AdminDashboardHandler) GetStats(c echo.Context) error {
    ctx := c.Request().Context()
    stats, err := h.Stats.Collect(ctx, time.Now().UTC())
    if err != nil {
        c.Logger().Errorf("dashboard: collect failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to compute stats"})
    }

    recent, err := h.Bookings.List(ctx, "", nil)
    if err != nil {
        c.Logger().Errorf("dashboard: recent bookings failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to compute stats"})
    }
    if len(recent) > recentBookingsLimit {
        recent = recent[:recentBookingsLimit]
    }
    teaser := make([]echo.Map, 0, len(recent))
    for i := range recent {
        teaser = append(teaser, bookingJSON(&recent[i]))
    }

    return c.JSON(http.StatusOK, echo.Map{
        "stats":          stats,
        "recentBookings": teaser,
    })
}
