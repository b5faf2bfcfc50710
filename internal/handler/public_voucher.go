package handler

import (
    "errors"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/SAKSAUD7/ninjainflatablepark/internal/pricing"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/repository"
)

// VoucherPreviewHandler serves the public pre-checkout voucher check.  It
// only reads: no usage is consumed until a booking actually redeems the
// code inside its own transaction.
type VoucherPreviewHandler struct {
    Vouchers *repository.VoucherRepo
}

// NewVoucherPreviewHandler constructs a VoucherPreviewHandler.
func NewVoucherPreviewHandler(v *repository.VoucherRepo) *VoucherPreviewHandler {
    if v == nil {
        panic("nil repository passed to NewVoucherPreviewHandler")
    }
    return &VoucherPreviewHandler{Vouchers: v}
}

// Validate handles GET /v1/vouchers/validate?code=&amount=.  The amount
// query parameter is the order subtotal in paise.  The response mirrors
// the lenient booking behavior: an unusable code answers valid=false with
// a zero discount rather than an error status.
func (h *VoucherPreviewHandler) Validate(c echo.Context) error {
    code := strings.ToUpper(strings.TrimSpace(c.QueryParam("code")))
    if code == "" {
        return c.JSON(http.StatusBadRequest, validationError(map[string]string{"code": "required"}))
    }
    amount, err := strconv.ParseInt(strings.TrimSpace(c.QueryParam("amount")), 10, 64)
    if err != nil || amount < 0 {
        return c.JSON(http.StatusBadRequest, validationError(map[string]string{"amount": "subtotal in paise required"}))
    }

    v, err := h.Vouchers.GetByCode(c.Request().Context(), code)
    if err != nil && !errors.Is(err, repository.ErrNotFound) {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    discount := pricing.VoucherDiscount(voucherModel(v), amount, time.Now().UTC())
    return c.JSON(http.StatusOK, echo.Map{
        "code":           code,
        "valid":          discount > 0,
        "discount_paise": discount,
        "amount_paise":   amount - discount,
    })
}
