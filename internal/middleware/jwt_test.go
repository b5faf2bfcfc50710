package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"

    "github.com/SAKSAUD7/ninjainflatablepark/internal/utils"
)

const testSecret = "unit-test-secret"

// runJWT sends a request with the given Authorization header through
// JWTAuth and a probe handler that records the injected context values.
func runJWT(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/v1/admin/bookings", nil)
    if authHeader != "" {
        req.Header.Set("Authorization", authHeader)
    }
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)

    h := JWTAuth(testSecret)(func(c echo.Context) error {
        return c.NoContent(http.StatusOK)
    })
    if err := h(c); err != nil {
        t.Fatalf("handler returned error: %v", err)
    }
    return rec, c
}

func TestJWTAuthMissingHeader(t *testing.T) {
    rec, _ := runJWT(t, "")
    if rec.Code != http.StatusUnauthorized {
        t.Fatalf("status = %d, want 401", rec.Code)
    }
}

func TestJWTAuthMalformedHeader(t *testing.T) {
    rec, _ := runJWT(t, "Token abcdef")
    if rec.Code != http.StatusUnauthorized {
        t.Fatalf("status = %d, want 401", rec.Code)
    }
}

func TestJWTAuthGarbageToken(t *testing.T) {
    rec, _ := runJWT(t, "Bearer not.a.jwt")
    if rec.Code != http.StatusUnauthorized {
        t.Fatalf("status = %d, want 401", rec.Code)
    }
}

func TestJWTAuthWrongSecret(t *testing.T) {
    at, err := utils.NewAccessToken("some-other-secret", 9, "ADMIN", 15)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    rec, _ := runJWT(t, "Bearer "+at.Token)
    if rec.Code != http.StatusUnauthorized {
        t.Fatalf("status = %d, want 401", rec.Code)
    }
}

func TestJWTAuthValidToken(t *testing.T) {
    at, err := utils.NewAccessToken(testSecret, 9, "STAFF", 15)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    rec, c := runJWT(t, "Bearer "+at.Token)
    if rec.Code != http.StatusOK {
        t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
    }
    if role, _ := c.Get("role").(string); role != "STAFF" {
        t.Fatalf("role in context = %v, want STAFF", c.Get("role"))
    }
    // Claims survive JSON round-tripping as float64.
    if sub, _ := c.Get("user_id").(float64); uint64(sub) != 9 {
        t.Fatalf("user_id in context = %v, want 9", c.Get("user_id"))
    }
}

func TestJWTAuthExpiredToken(t *testing.T) {
    at, err := utils.NewAccessToken(testSecret, 9, "STAFF", -5)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    rec, _ := runJWT(t, "Bearer "+at.Token)
    if rec.Code != http.StatusUnauthorized {
        t.Fatalf("status = %d, want 401", rec.Code)
    }
}
