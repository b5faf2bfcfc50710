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

// AdminBookingHandler serves the staff booking screens: listing, detail
// with the payment ledger, and the independent status transitions.
type AdminBookingHandler struct {
    Bookings     *repository.BookingRepo
    Transactions *repository.TransactionRepo
    Waivers      *repository.WaiverRepo
    Publish      bool
}

// NewAdminBookingHandler constructs an AdminBookingHandler.
func NewAdminBookingHandler(b *repository.BookingRepo, t *repository.TransactionRepo, w *repository.WaiverRepo, publish bool) *AdminBookingHandler {
    if b == nil || t == nil || w == nil {
        panic("nil repository passed to NewAdminBookingHandler")
    }
    return &AdminBookingHandler{Bookings: b, Transactions: t, Waivers: w, Publish: publish}
}

// List handles GET /v1/admin/bookings with optional ?status= and ?date=
// filters.
func (h *AdminBookingHandler) List(c echo.Context) error {
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
    items, err := h.Bookings.List(c.Request().Context(), status, datePtr)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]echo.Map, 0, len(items))
    for i := range items {
        out = append(out, bookingJSON(&items[i]))
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Get handles GET /v1/admin/bookings/:id.  The detail view includes the
// payment ledger and any attached waivers.
func (h *AdminBookingHandler) Get(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
    }
    ctx := c.Request().Context()
    rec, err := h.Bookings.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    txns, err := h.Transactions.ListByBooking(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    waivers, err := h.Waivers.ListByBooking(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := bookingJSON(rec)
    out["customer_id"] = rec.CustomerID
    ledger := make([]echo.Map, 0, len(txns))
    for i := range txns {
        ledger = append(ledger, transactionJSON(&txns[i]))
    }
    out["transactions"] = ledger
    signed := make([]echo.Map, 0, len(waivers))
    for i := range waivers {
        signed = append(signed, waiverJSON(&waivers[i]))
    }
    out["waivers"] = signed
    return c.JSON(http.StatusOK, out)
}

type statusPatchReq struct {
    Field string `json:"field"` // booking_status | payment_status | waiver_status
    Value string `json:"value"`
}

// PatchStatus handles PATCH /v1/admin/bookings/:id/status.  Each of the
// three status fields transitions independently; only booking_status is
// guarded by the terminal rule.
func (h *AdminBookingHandler) PatchStatus(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
    }
    var req statusPatchReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    req.Field = strings.ToLower(strings.TrimSpace(req.Field))
    req.Value = strings.ToUpper(strings.TrimSpace(req.Value))

    ctx := c.Request().Context()
    before, err := h.Bookings.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    var rec *repository.BookingRecord
    switch req.Field {
    case "booking_status":
        if !model.ValidBookingStatus(req.Value) {
            return c.JSON(http.StatusBadRequest, validationError(map[string]string{"value": "unknown booking status"}))
        }
        rec, err = h.Bookings.UpdateBookingStatus(ctx, id, req.Value)
    case "payment_status":
        if !model.ValidPaymentStatus(req.Value) {
            return c.JSON(http.StatusBadRequest, validationError(map[string]string{"value": "unknown payment status"}))
        }
        rec, err = h.Bookings.UpdatePaymentStatus(ctx, id, req.Value)
    case "waiver_status":
        if !model.ValidWaiverStatus(req.Value) {
            return c.JSON(http.StatusBadRequest, validationError(map[string]string{"value": "unknown waiver status"}))
        }
        rec, err = h.Bookings.UpdateWaiverStatus(ctx, id, req.Value)
    default:
        return c.JSON(http.StatusBadRequest, validationError(map[string]string{"field": "must be booking_status, payment_status or waiver_status"}))
    }
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
        if errors.Is(err, repository.ErrInvalidTransition) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "status transition not allowed"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update status"})
    }

    if h.Publish && req.Field == "booking_status" && before.BookingStatus != rec.BookingStatus {
        uid, _ := getUserID(c)
        ev := queue.BookingStatusChangedEvent{
            BookingType: "SESSION",
            BookingID:   rec.ID,
            PublicID:    rec.PublicID,
            FromStatus:  before.BookingStatus,
            ToStatus:    rec.BookingStatus,
            ChangedBy:   uid,
            ChangedAt:   time.Now().UTC().Format(time.RFC3339),
        }
        go func() { _ = queue_publisher.PublishStatusChanged(context.Background(), ev) }()
    }
    return c.JSON(http.StatusOK, bookingJSON(rec))
}
