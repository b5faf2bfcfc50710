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

// AdminBlockHandler manages the closure calendar.  ADMIN only.
type AdminBlockHandler struct {
    Blocks *repository.BookingBlockRepo
}

// NewAdminBlockHandler constructs an AdminBlockHandler.
func NewAdminBlockHandler(b *repository.BookingBlockRepo) *AdminBlockHandler {
    if b == nil {
        panic("nil repository passed to NewAdminBlockHandler")
    }
    return &AdminBlockHandler{Blocks: b}
}

// List handles GET /v1/admin/booking-blocks.
func (h *AdminBlockHandler) List(c echo.Context) error {
    items, err := h.Blocks.List(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]echo.Map, 0, len(items))
    for i := range items {
        out = append(out, blockJSON(&items[i]))
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

type createBlockReq struct {
    StartDate string `json:"start_date"`
    EndDate   string `json:"end_date"`
    Reason    string `json:"reason"`
    BlockType string `json:"block_type"`
    Recurring bool   `json:"recurring"`
}

// Create handles POST /v1/admin/booking-blocks.
func (h *AdminBlockHandler) Create(c echo.Context) error {
    var req createBlockReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    req.Reason = strings.TrimSpace(req.Reason)
    req.BlockType = strings.ToUpper(strings.TrimSpace(req.BlockType))

    fields := map[string]string{}
    start, okStart := parseDate(req.StartDate)
    if !okStart {
        fields["start_date"] = "must be YYYY-MM-DD"
    }
    end, okEnd := parseDate(req.EndDate)
    if !okEnd {
        fields["end_date"] = "must be YYYY-MM-DD"
    }
    if okStart && okEnd && end.Before(start) {
        fields["end_date"] = "must not precede start_date"
    }
    if req.Reason == "" {
        fields["reason"] = "required"
    }
    if req.BlockType == "" {
        req.BlockType = model.BlockClosed
    }
    if !model.ValidBlockType(req.BlockType) {
        fields["block_type"] = "must be CLOSED, MAINTENANCE, PRIVATE_EVENT or OTHER"
    }
    if len(fields) > 0 {
        return c.JSON(http.StatusBadRequest, validationError(fields))
    }

    rec := &repository.BlockRecord{
        StartDate: start,
        EndDate:   end,
        Reason:    req.Reason,
        BlockType: req.BlockType,
        Recurring: req.Recurring,
    }
    if err := h.Blocks.Create(c.Request().Context(), rec); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create block"})
    }
    return c.JSON(http.StatusCreated, blockJSON(rec))
}

// Delete handles DELETE /v1/admin/booking-blocks/:id.
func (h *AdminBlockHandler) Delete(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid block id"})
    }
    if err := h.Blocks.Delete(c.Request().Context(), id); err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "block not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete block"})
    }
    return c.NoContent(http.StatusNoContent)
}
