package handler

import (
    "context"
    "errors"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/SAKSAUD7/ninjainflatablepark/internal/model"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/queue"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/repository"
    queue_publisher "github.com/SAKSAUD7/ninjainflatablepark/internal/service"
)

// AdminPartyHandler serves the staff party-booking screens.
type AdminPartyHandler struct {
    Parties *repository.PartyBookingRepo
    Waivers *repository.WaiverRepo
    Publish bool
}

// NewAdminPartyHandler constructs an AdminPartyHandler.
func NewAdminPartyHandler(p *repository.PartyBookingRepo, w *repository.WaiverRepo, publish bool) *AdminPartyHandler {
    if p == nil || w == nil {
        panic("nil repository passed to NewAdminPartyHandler")
    }
    return &AdminPartyHandler{Parties: p, Waivers: w, Publish: publish}
}

// List handles GET /v1/admin/party-bookings with optional ?status= and
// ?date= filters.
func (h *AdminPartyHandler) List(c echo.Context) error {
    status := strings.ToUpper(strings.TrimSpace(c.QueryParam("status")))
    if status != "" && !model.ValidBookingStatus(status) {
        return c.JSON(http.StatusBadRequest, validationError(map[string]string{"status": "unknown status"}))
    }
    var datePtr *time.Time
    if raw := strings.TrimSpace(c.QueryParam("date")); raw != "" {
        d, ok := parseDate(raw)
        if !ok {
            return c.JSON(http.StatusBadRequest, validationError(map[string]string{"date": "must be YYYY-MM-DD"}))
        }
        datePtr = &d
    }
    items, err := h.Parties.List(c.Request().Context(), status, datePtr)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]echo.Map, 0, len(items))
    for i := range items {
        out = append(out, partyJSON(&items[i]))
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Get handles GET /v1/admin/party-bookings/:id, returning the booking with
// its waiver roster.
func (h *AdminPartyHandler) Get(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid party booking id"})
    }
    ctx := c.Request().Context()
    rec, err := h.Parties.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "party booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    waivers, err := h.Waivers.ListByPartyBooking(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := partyJSON(rec)
    out["customer_id"] = rec.CustomerID
    roster := make([]echo.Map, 0, len(waivers))
    for i := range waivers {
        roster = append(roster, waiverJSON(&waivers[i]))
    }
    out["participants"] = roster
    return c.JSON(http.StatusOK, out)
}

// PatchStatus handles PATCH /v1/admin/party-bookings/:id/status with the
// same {field, value} contract as session bookings.
func (h *AdminPartyHandler) PatchStatus(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid party booking id"})
    }
    var req statusPatchReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    req.Field = strings.ToLower(strings.TrimSpace(req.Field))
    req.Value = strings.ToUpper(strings.TrimSpace(req.Value))

    ctx := c.Request().Context()
    before, err := h.Parties.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "party booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    var rec *repository.PartyBookingRecord
    switch req.Field {
    case "booking_status":
        if !model.ValidBookingStatus(req.Value) {
            return c.JSON(http.StatusBadRequest, validationError(map[string]string{"value": "unknown booking status"}))
        }
        rec, err = h.Parties.UpdateBookingStatus(ctx, id, req.Value)
    case "payment_status":
        if !model.ValidPaymentStatus(req.Value) {
            return c.JSON(http.StatusBadRequest, validationError(map[string]string{"value": "unknown payment status"}))
        }
        rec, err = h.Parties.UpdatePaymentStatus(ctx, id, req.Value)
    case "waiver_status":
        if !model.ValidWaiverStatus(req.Value) {
            return c.JSON(http.StatusBadRequest, validationError(map[string]string{"value": "unknown waiver status"}))
        }
        rec, err = h.Parties.UpdateWaiverStatus(ctx, id, req.Value)
    default:
        return c.JSON(http.StatusBadRequest, validationError(map[string]string{"field": "must be booking_status, payment_status or waiver_status"}))
    }
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "party booking not found"})
        }
        if errors.Is(err, repository.ErrInvalidTransition) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "status transition not allowed"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update status"})
    }

    if h.Publish && req.Field == "booking_status" && before.BookingStatus != rec.BookingStatus {
        uid, _ := getUserID(c)
        ev := queue.BookingStatusChangedEvent{
            BookingType: "PARTY",
            BookingID:   rec.ID,
            PublicID:    rec.PublicID,
            FromStatus:  before.BookingStatus,
            ToStatus:    rec.BookingStatus,
            ChangedBy:   uid,
            ChangedAt:   time.Now().UTC().Format(time.RFC3339),
        }
        go func() { _ = queue_publisher.PublishStatusChanged(context.Background(), ev) }()
    }
    return c.JSON(http.StatusOK, partyJSON(rec))
}

type partyDetailsReq struct {
    BirthdayChildName *string `json:"birthday_child_name"`
    BirthdayChildAge  *int    `json:"birthday_child_age"`
    Decorations       *bool   `json:"decorations"`
    Catering          *bool   `json:"catering"`
    Cake              *bool   `json:"cake"`
    Photographer      *bool   `json:"photographer"`
}

// Patch handles PATCH /v1/admin/party-bookings/:id, a partial edit of the
// birthday-child fields and add-on flags.  Absent fields are untouched.
func (h *AdminPartyHandler) Patch(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid party booking id"})
    }
    var req partyDetailsReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if _, err := h.Parties.GetByID(c.Request().Context(), id); err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "party booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    rec, err := h.Parties.UpdateDetails(c.Request().Context(), id, repository.PartyDetailsUpdate{
        BirthdayChildName: req.BirthdayChildName,
        BirthdayChildAge:  req.BirthdayChildAge,
        Decorations:       req.Decorations,
        Catering:          req.Catering,
        Cake:              req.Cake,
        Photographer:      req.Photographer,
    })
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update party booking"})
    }
    return c.JSON(http.StatusOK, partyJSON(rec))
}
