package handler

import (
    "errors"
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/SAKSAUD7/ninjainflatablepark/internal/repository"
)

// AdminCustomerHandler serves the staff customer directory.
type AdminCustomerHandler struct {
    Customers *repository.CustomerRepo
}

// NewAdminCustomerHandler constructs an AdminCustomerHandler.
func NewAdminCustomerHandler(c *repository.CustomerRepo) *AdminCustomerHandler {
    if c == nil {
        panic("nil repository passed to NewAdminCustomerHandler")
    }
    return &AdminCustomerHandler{Customers: c}
}

// List handles GET /v1/admin/customers: the directory with per-customer
// booking aggregates.
func (h *AdminCustomerHandler) List(c echo.Context) error {
    items, err := h.Customers.List(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

type customerNotesReq struct {
    Notes string `json:"notes"`
}

// UpdateNotes handles PATCH /v1/admin/customers/:id/notes.
func (h *AdminCustomerHandler) UpdateNotes(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid customer id"})
    }
    var req customerNotesReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if err := h.Customers.UpdateNotes(c.Request().Context(), id, strings.TrimSpace(req.Notes)); err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update notes"})
    }
    return c.NoContent(http.StatusNoContent)
}
