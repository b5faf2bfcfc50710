package handler

import (
    "context"  // background context for post-commit event publishing
    "errors"   // errors.Is comparisons against repository sentinels
    "net/http" // HTTP status codes
    "strings"  // input normalization
    "time"     // timestamps on published events

    "github.com/google/uuid"      // public ticket identifiers
    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/SAKSAUD7/ninjainflatablepark/internal/model"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/pricing"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/queue"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/repository"
    queue_publisher "github.com/SAKSAUD7/ninjainflatablepark/internal/service"
)

// BookingHandler serves the public session-booking endpoints.  Creation
// runs the customer upsert, voucher redemption and booking insert in one
// transaction so a failed step leaves no partial state behind.
type BookingHandler struct {
    Bookings  *repository.BookingRepo
    Customers *repository.CustomerRepo
    Vouchers  *repository.VoucherRepo
    Blocks    *repository.BookingBlockRepo
    Rates     pricing.Rates
    Publish   bool // emit booking.created events when true
}

// NewBookingHandler constructs a BookingHandler.  All repositories must be
// non-nil.
func NewBookingHandler(b *repository.BookingRepo, c *repository.CustomerRepo, v *repository.VoucherRepo, bl *repository.BookingBlockRepo, publish bool) *BookingHandler {
    if b == nil || c == nil || v == nil || bl == nil {
        panic("nil repository passed to NewBookingHandler")
    }
    return &BookingHandler{Bookings: b, Customers: c, Vouchers: v, Blocks: bl, Rates: pricing.DefaultRates(), Publish: publish}
}

type createBookingReq struct {
    Name        string `json:"name"`
    Email       string `json:"email"`
    Phone       string `json:"phone"`
    Date        string `json:"date"` // YYYY-MM-DD
    Time        string `json:"time"` // HH:MM
    DurationMin int    `json:"duration_min"`
    Adults      int    `json:"adults"`
    Kids        int    `json:"kids"`
    Spectators  int    `json:"spectators"`
    VoucherCode string `json:"voucher_code"`
}

// validate normalizes the request and collects field errors.  The parsed
// visit date is returned on success.
func (req *createBookingReq) validate() (time.Time, map[string]string) {
    fields := map[string]string{}
    req.Name = strings.TrimSpace(req.Name)
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    req.Phone = strings.TrimSpace(req.Phone)
    req.VoucherCode = strings.ToUpper(strings.TrimSpace(req.VoucherCode))
    if req.Name == "" {
        fields["name"] = "required"
    }
    if req.Email == "" || !strings.Contains(req.Email, "@") {
        fields["email"] = "valid email required"
    }
    if req.Phone == "" {
        fields["phone"] = "required"
    }
    var date time.Time
    if d, ok := parseDate(req.Date); ok {
        date = d
    } else {
        fields["date"] = "must be YYYY-MM-DD"
    }
    if !validSlotTime(req.Time) {
        fields["time"] = "must be HH:MM"
    }
    if req.DurationMin == 0 {
        req.DurationMin = 60
    }
    if req.DurationMin != 60 && req.DurationMin != 120 {
        fields["duration_min"] = "must be 60 or 120"
    }
    if req.Adults < 0 || req.Kids < 0 || req.Spectators < 0 {
        fields["counts"] = "guest counts must be >= 0"
    } else if req.Adults+req.Kids < 1 {
        fields["counts"] = "at least one jumping participant required"
    }
    return date, fields
}

// Create handles POST /v1/bookings.  The submitted amount, if any, is
// ignored: pricing is always recomputed server-side from the price card
// and the voucher table.  An unusable voucher code is not an error — the
// booking proceeds at full price with a zero discount.
func (h *BookingHandler) Create(c echo.Context) error {
    var req createBookingReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    date, fields := req.validate()
    if len(fields) > 0 {
        return c.JSON(http.StatusBadRequest, validationError(fields))
    }

    ctx := c.Request().Context()

    // Closed dates reject bookings before any row is written.
    block, err := h.Blocks.BlockFor(ctx, date)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    if block != nil {
        return c.JSON(http.StatusConflict, echo.Map{
            "error":  "park closed on requested date",
            "reason": block.Reason,
        })
    }

    counts := pricing.GuestCounts{Adults: req.Adults, Kids: req.Kids, Spectators: req.Spectators}
    subtotal := pricing.SessionSubtotal(h.Rates, counts, req.DurationMin)

    tx, err := h.Bookings.DB().BeginTx(ctx, nil)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    custID, err := h.Customers.GetOrCreateTx(ctx, tx, req.Name, req.Email, req.Phone)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to record customer"})
    }

    // Voucher lookup inside the transaction so the quote and the
    // redemption see the same row.  Unknown codes fall through to nil.
    var voucher *repository.VoucherRecord
    if req.VoucherCode != "" {
        v, err := h.Vouchers.GetByCodeTx(ctx, tx, req.VoucherCode)
        if err != nil && !errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to check voucher"})
        }
        voucher = v
    }
    quote := pricing.Compute(subtotal, voucherModel(voucher), time.Now().UTC())
    if quote.VoucherID != nil {
        if err := h.Vouchers.RedeemTx(ctx, tx, *quote.VoucherID); err != nil {
            if errors.Is(err, repository.ErrConflict) {
                // Lost the race for the last redemption: full price.
                quote = pricing.Compute(subtotal, nil, time.Now().UTC())
            } else {
                return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to redeem voucher"})
            }
        }
    }

    rec := &repository.BookingRecord{
        PublicID:      uuid.NewString(),
        Name:          req.Name,
        Email:         req.Email,
        Phone:         req.Phone,
        Date:          date,
        Time:          strings.TrimSpace(req.Time),
        DurationMin:   req.DurationMin,
        Adults:        req.Adults,
        Kids:          req.Kids,
        Spectators:    req.Spectators,
        SubtotalPaise: quote.SubtotalPaise,
        DiscountPaise: quote.DiscountPaise,
        AmountPaise:   quote.AmountPaise,
        VoucherID:     quote.VoucherID,
        CustomerID:    &custID,
        BookingStatus: model.BookingPending,
        PaymentStatus: model.PaymentPending,
        WaiverStatus:  model.WaiverPending,
    }
    if quote.VoucherID != nil {
        code := req.VoucherCode
        rec.VoucherCode = &code
    }
    if err := h.Bookings.CreateTx(ctx, tx, rec); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
    }
    if err := tx.Commit(); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
    }
    committed = true

    if h.Publish {
        ev := queue.BookingCreatedEvent{
            BookingID:    rec.ID,
            PublicID:     rec.PublicID,
            CustomerName: rec.Name,
            Email:        rec.Email,
            Date:         rec.Date.Format("2006-01-02"),
            Time:         rec.Time,
            Adults:       rec.Adults,
            Kids:         rec.Kids,
            Spectators:   rec.Spectators,
            AmountPaise:  rec.AmountPaise,
            VoucherCode:  req.VoucherCode,
            CreatedAt:    rec.CreatedAt.UTC().Format(time.RFC3339),
        }
        go func() { _ = queue_publisher.PublishBookingCreated(context.Background(), ev) }()
    }

    return c.JSON(http.StatusCreated, bookingJSON(rec))
}

// Ticket handles GET /v1/bookings/ticket/:uuid.  Lookup is by public UUID
// only; internal ids are never accepted here.
func (h *BookingHandler) Ticket(c echo.Context) error {
    publicID := strings.TrimSpace(c.Param("uuid"))
    if publicID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "ticket id required"})
    }
    rec, err := h.Bookings.GetByPublicID(c.Request().Context(), publicID)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, bookingJSON(rec))
}
