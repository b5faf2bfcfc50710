package handler

import (
    "errors"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/SAKSAUD7/ninjainflatablepark/internal/model"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/repository"
)

// AdminVoucherHandler manages the voucher catalog.  ADMIN only.
type AdminVoucherHandler struct {
    Vouchers *repository.VoucherRepo
}

// NewAdminVoucherHandler constructs an AdminVoucherHandler.
func NewAdminVoucherHandler(v *repository.VoucherRepo) *AdminVoucherHandler {
    if v == nil {
        panic("nil repository passed to NewAdminVoucherHandler")
    }
    return &AdminVoucherHandler{Vouchers: v}
}

// List handles GET /v1/admin/vouchers.  ?active=true filters to live
// codes.
func (h *AdminVoucherHandler) List(c echo.Context) error {
    activeOnly := strings.EqualFold(strings.TrimSpace(c.QueryParam("active")), "true")
    items, err := h.Vouchers.List(c.Request().Context(), activeOnly)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]echo.Map, 0, len(items))
    for i := range items {
        out = append(out, voucherJSON(&items[i]))
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

type createVoucherReq struct {
    Code          string `json:"code"`
    Description   string `json:"description"`
    DiscountType  string `json:"discount_type"`
    DiscountValue int64  `json:"discount_value"`
    MinOrderPaise int64  `json:"min_order_paise"`
    UsageLimit    int    `json:"usage_limit"`
    ExpiresAt     string `json:"expires_at"` // RFC3339, optional
    IsActive      *bool  `json:"is_active"`
}

// Create handles POST /v1/admin/vouchers.  Codes are unique; a duplicate
// answers 409.
func (h *AdminVoucherHandler) Create(c echo.Context) error {
    var req createVoucherReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
    req.DiscountType = strings.ToUpper(strings.TrimSpace(req.DiscountType))

    fields := map[string]string{}
    if req.Code == "" {
        fields["code"] = "required"
    }
    switch req.DiscountType {
    case model.DiscountPercentage:
        if req.DiscountValue < 1 || req.DiscountValue > 100 {
            fields["discount_value"] = "percentage must be 1-100"
        }
    case model.DiscountFixed:
        if req.DiscountValue <= 0 {
            fields["discount_value"] = "fixed discount must be positive paise"
        }
    default:
        fields["discount_type"] = "must be PERCENTAGE or FIXED"
    }
    if req.MinOrderPaise < 0 {
        fields["min_order_paise"] = "must be >= 0"
    }
    if req.UsageLimit < 0 {
        fields["usage_limit"] = "must be >= 0 (0 = unlimited)"
    }
    var expires *time.Time
    if raw := strings.TrimSpace(req.ExpiresAt); raw != "" {
        t, err := time.Parse(time.RFC3339, raw)
        if err != nil {
            fields["expires_at"] = "must be RFC3339"
        } else {
            expires = &t
        }
    }
    if len(fields) > 0 {
        return c.JSON(http.StatusBadRequest, validationError(fields))
    }

    rec := &repository.VoucherRecord{
        Code:          req.Code,
        DiscountType:  req.DiscountType,
        DiscountValue: req.DiscountValue,
        MinOrderPaise: req.MinOrderPaise,
        UsageLimit:    req.UsageLimit,
        ExpiresAt:     expires,
        IsActive:      true,
    }
    if d := strings.TrimSpace(req.Description); d != "" {
        rec.Description = &d
    }
    if req.IsActive != nil {
        rec.IsActive = *req.IsActive
    }
    if err := h.Vouchers.Create(c.Request().Context(), rec); err != nil {
        if errors.Is(err, repository.ErrConflict) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "voucher code already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create voucher"})
    }
    return c.JSON(http.StatusCreated, voucherJSON(rec))
}

type voucherActiveReq struct {
    IsActive bool `json:"is_active"`
}

// SetActive handles PATCH /v1/admin/vouchers/:id, the activation kill
// switch.
func (h *AdminVoucherHandler) SetActive(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid voucher id"})
    }
    var req voucherActiveReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if err := h.Vouchers.SetActive(c.Request().Context(), id, req.IsActive); err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "voucher not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update voucher"})
    }
    return c.NoContent(http.StatusNoContent)
}
