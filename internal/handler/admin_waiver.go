package handler

import (
    "errors"
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/SAKSAUD7/ninjainflatablepark/internal/repository"
)

// Waiver owner kinds in staff projections.
const (
    waiverOwnerSession = "SESSION"
    waiverOwnerParty   = "PARTY"
    waiverOwnerWalkIn  = "WALK_IN"
)

// AdminWaiverHandler serves the staff waiver log.  Projections carry an
// explicit booking_type (SESSION, PARTY or WALK_IN) instead of leaving
// staff to infer the owner from which id column is set.
type AdminWaiverHandler struct {
    Waivers  *repository.WaiverRepo
    Bookings *repository.BookingRepo
    Parties  *repository.PartyBookingRepo
}

// NewAdminWaiverHandler constructs an AdminWaiverHandler.
func NewAdminWaiverHandler(w *repository.WaiverRepo, b *repository.BookingRepo, p *repository.PartyBookingRepo) *AdminWaiverHandler {
    if w == nil || b == nil || p == nil {
        panic("nil repository passed to NewAdminWaiverHandler")
    }
    return &AdminWaiverHandler{Waivers: w, Bookings: b, Parties: p}
}

func ownerKind(w *repository.WaiverRecord) string {
    switch {
    case w.BookingID != nil:
        return waiverOwnerSession
    case w.PartyBookingID != nil:
        return waiverOwnerParty
    default:
        return waiverOwnerWalkIn
    }
}

// List handles GET /v1/admin/waivers.  Optional filters: ?booking_id= or
// ?party_booking_id= narrow the log to one owner.
func (h *AdminWaiverHandler) List(c echo.Context) error {
    ctx := c.Request().Context()
    var (
        items []repository.WaiverRecord
        err   error
    )
    switch {
    case strings.TrimSpace(c.QueryParam("booking_id")) != "":
        id, perr := strconv.ParseUint(c.QueryParam("booking_id"), 10, 64)
        if perr != nil || id == 0 {
            return c.JSON(http.StatusBadRequest, validationError(map[string]string{"booking_id": "invalid id"}))
        }
        items, err = h.Waivers.ListByBooking(ctx, id)
    case strings.TrimSpace(c.QueryParam("party_booking_id")) != "":
        id, perr := strconv.ParseUint(c.QueryParam("party_booking_id"), 10, 64)
        if perr != nil || id == 0 {
            return c.JSON(http.StatusBadRequest, validationError(map[string]string{"party_booking_id": "invalid id"}))
        }
        items, err = h.Waivers.ListByPartyBooking(ctx, id)
    default:
        items, err = h.Waivers.ListAll(ctx)
    }
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]echo.Map, 0, len(items))
    for i := range items {
        m := waiverJSON(&items[i])
        m["booking_type"] = ownerKind(&items[i])
        out = append(out, m)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Get handles GET /v1/admin/waivers/:id.  The detail view resolves the
// owning booking into a short reference summary.
func (h *AdminWaiverHandler) Get(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid waiver id"})
    }
    ctx := c.Request().Context()
    w, err := h.Waivers.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "waiver not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    out := waiverJSON(w)
    out["booking_type"] = ownerKind(w)
    switch {
    case w.BookingID != nil:
        b, err := h.Bookings.GetByID(ctx, *w.BookingID)
        if err != nil && !errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
        }
        if b != nil {
            out["booking"] = echo.Map{
                "id":        b.ID,
                "public_id": b.PublicID,
                "name":      b.Name,
                "date":      b.Date.Format("2006-01-02"),
                "time":      b.Time,
                "reference": "session " + b.Date.Format("2006-01-02") + " " + b.Time,
            }
        }
    case w.PartyBookingID != nil:
        p, err := h.Parties.GetByID(ctx, *w.PartyBookingID)
        if err != nil && !errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
        }
        if p != nil {
            out["booking"] = echo.Map{
                "id":        p.ID,
                "public_id": p.PublicID,
                "name":      p.Name,
                "date":      p.Date.Format("2006-01-02"),
                "time":      p.Time,
                "reference": "party " + p.PackageName + " " + p.Date.Format("2006-01-02"),
            }
        }
    }
    return c.JSON(http.StatusOK, out)
}
