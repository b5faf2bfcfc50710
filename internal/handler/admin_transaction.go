package handler

import (
    "errors"
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/SAKSAUD7/ninjainflatablepark/internal/model"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/repository"
)

// AdminTransactionHandler records payment attempts against session
// bookings.  Rows are append-only evidence: the booking's payment_status
// remains a separate staff decision.
type AdminTransactionHandler struct {
    Transactions *repository.TransactionRepo
}

// NewAdminTransactionHandler constructs an AdminTransactionHandler.
func NewAdminTransactionHandler(t *repository.TransactionRepo) *AdminTransactionHandler {
    if t == nil {
        panic("nil repository passed to NewAdminTransactionHandler")
    }
    return &AdminTransactionHandler{Transactions: t}
}

type createTransactionReq struct {
    BookingID     uint64 `json:"booking_id"`
    AmountPaise   int64  `json:"amount_paise"`
    Currency      string `json:"currency"`
    TransactionID string `json:"transaction_id"`
    PaymentMethod string `json:"payment_method"`
    Status        string `json:"status"`
}

// Create handles POST /v1/admin/transactions.  The external
// transaction_id is unique across the ledger; replaying the same gateway
// reference answers 409.
func (h *AdminTransactionHandler) Create(c echo.Context) error {
    var req createTransactionReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))
    req.TransactionID = strings.TrimSpace(req.TransactionID)
    req.PaymentMethod = strings.ToUpper(strings.TrimSpace(req.PaymentMethod))
    req.Status = strings.ToUpper(strings.TrimSpace(req.Status))

    fields := map[string]string{}
    if req.BookingID == 0 {
        fields["booking_id"] = "required"
    }
    if req.AmountPaise <= 0 {
        fields["amount_paise"] = "must be positive"
    }
    if req.Currency == "" {
        req.Currency = "INR"
    }
    if req.TransactionID == "" {
        fields["transaction_id"] = "required"
    }
    if !model.ValidPaymentMethod(req.PaymentMethod) {
        fields["payment_method"] = "must be STRIPE, CASH or RAZORPAY"
    }
    if req.Status == "" {
        req.Status = model.PaymentPaid
    }
    if !model.ValidPaymentStatus(req.Status) {
        fields["status"] = "unknown payment status"
    }
    if len(fields) > 0 {
        return c.JSON(http.StatusBadRequest, validationError(fields))
    }

    rec := &repository.TransactionRecord{
        BookingID:     req.BookingID,
        AmountPaise:   req.AmountPaise,
        Currency:      req.Currency,
        TransactionID: req.TransactionID,
        PaymentMethod: req.PaymentMethod,
        Status:        req.Status,
    }
    if err := h.Transactions.Create(c.Request().Context(), rec); err != nil {
        if errors.Is(err, repository.ErrConflict) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "transaction already recorded"})
        }
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to record transaction"})
    }
    return c.JSON(http.StatusCreated, transactionJSON(rec))
}

// ListByBooking handles GET /v1/admin/bookings/:id/transactions.
func (h *AdminTransactionHandler) ListByBooking(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
    }
    items, err := h.Transactions.ListByBooking(c.Request().Context(), id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]echo.Map, 0, len(items))
    for i := range items {
        out = append(out, transactionJSON(&items[i]))
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}
