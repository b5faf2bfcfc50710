package handler

import (
    "context"
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/SAKSAUD7/ninjainflatablepark/internal/config"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/model"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/repository"
)

// AdminUserHandler provisions staff accounts.  ADMIN only — there is no
// self-service registration anywhere in the service.
type AdminUserHandler struct {
    Cfg   config.Config
    Users *repository.UserRepo
}

// NewAdminUserHandler constructs an AdminUserHandler.
func NewAdminUserHandler(cfg config.Config, u *repository.UserRepo) *AdminUserHandler {
    if u == nil {
        panic("nil repository passed to NewAdminUserHandler")
    }
    return &AdminUserHandler{Cfg: cfg, Users: u}
}

type createUserReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
    Role     string `json:"role"` // ADMIN | STAFF
}

// Create handles POST /v1/admin/users.
func (h *AdminUserHandler) Create(c echo.Context) error {
    var req createUserReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    role := strings.ToUpper(strings.TrimSpace(req.Role))
    if role == "" {
        role = model.RoleStaff
    }

    fields := map[string]string{}
    if req.Email == "" || !strings.Contains(req.Email, "@") {
        fields["email"] = "valid email required"
    }
    if len(req.Password) < 8 {
        fields["password"] = "minimum 8 characters"
    }
    if role != model.RoleAdmin && role != model.RoleStaff {
        fields["role"] = "must be ADMIN or STAFF"
    }
    if len(fields) > 0 {
        return c.JSON(http.StatusBadRequest, validationError(fields))
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    uid, err := h.Users.Create(ctx, req.Email, req.Password, role, h.Cfg.BcryptCost)
    if err != nil {
        if errors.Is(err, repository.ErrEmailExists) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
    }
    return c.JSON(http.StatusCreated, echo.Map{
        "user": userPart{ID: uid, Email: req.Email, Role: role},
    })
}
