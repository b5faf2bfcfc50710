package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"
)

func runRole(t *testing.T, role any, allowed ...string) *httptest.ResponseRecorder {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/v1/admin/vouchers", nil)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    if role != nil {
        c.Set("role", role)
    }
    h := RequireRole(allowed...)(func(c echo.Context) error {
        return c.NoContent(http.StatusOK)
    })
    if err := h(c); err != nil {
        t.Fatalf("handler returned error: %v", err)
    }
    return rec
}

func TestRequireRoleAllowed(t *testing.T) {
    if rec := runRole(t, "ADMIN", "ADMIN", "STAFF"); rec.Code != http.StatusOK {
        t.Fatalf("status = %d, want 200", rec.Code)
    }
    if rec := runRole(t, "STAFF", "ADMIN", "STAFF"); rec.Code != http.StatusOK {
        t.Fatalf("status = %d, want 200", rec.Code)
    }
}

func TestRequireRoleDenied(t *testing.T) {
    if rec := runRole(t, "STAFF", "ADMIN"); rec.Code != http.StatusForbidden {
        t.Fatalf("status = %d, want 403", rec.Code)
    }
}

func TestRequireRoleMissing(t *testing.T) {
    if rec := runRole(t, nil, "ADMIN"); rec.Code != http.StatusForbidden {
        t.Fatalf("status = %d, want 403", rec.Code)
    }
}

func TestRequireRoleWrongType(t *testing.T) {
    // A non-string role claim is treated as missing.
    if rec := runRole(t, 12, "ADMIN"); rec.Code != http.StatusForbidden {
        t.Fatalf("status = %d, want 403", rec.Code)
    }
}
