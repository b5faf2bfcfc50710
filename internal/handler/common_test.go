package handler

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"
)

func TestParseDate(t *testing.T) {
    d, ok := parseDate(" 2026-09-12 ")
    if !ok {
        t.Fatal("valid date rejected")
    }
    if d.Format("2006-01-02") != "2026-09-12" {
        t.Fatalf("parsed %s", d.Format("2006-01-02"))
    }
    for _, bad := range []string{"", "2026-13-01", "12/09/2026", "2026-09-12T10:00"} {
        if _, ok := parseDate(bad); ok {
            t.Fatalf("parseDate(%q) accepted", bad)
        }
    }
}

func TestValidSlotTime(t *testing.T) {
    for _, good := range []string{"00:00", "10:30", "23:59", " 09:15 "} {
        if !validSlotTime(good) {
            t.Fatalf("validSlotTime(%q) = false", good)
        }
    }
    for _, bad := range []string{"", "24:00", "9:75", "10:30pm"} {
        if validSlotTime(bad) {
            t.Fatalf("validSlotTime(%q) = true", bad)
        }
    }
}

func TestGetUserID(t *testing.T) {
    e := echo.New()
    newCtx := func(v any) echo.Context {
        req := httptest.NewRequest(http.MethodGet, "/", nil)
        c := e.NewContext(req, httptest.NewRecorder())
        if v != nil {
            c.Set("user_id", v)
        }
        return c
    }

    // JWT claims decode numbers as float64; repositories hand back uint64.
    for _, v := range []any{uint64(7), int(7), int64(7), float64(7), "7"} {
        got, err := getUserID(newCtx(v))
        if err != nil || got != 7 {
            t.Fatalf("getUserID(%T) = %d, %v", v, got, err)
        }
    }
    if _, err := getUserID(newCtx(nil)); err == nil {
        t.Fatal("missing user_id accepted")
    }
    if _, err := getUserID(newCtx("not-a-number")); err == nil {
        t.Fatal("garbage user_id accepted")
    }
}

func TestVoucherModelNil(t *testing.T) {
    if voucherModel(nil) != nil {
        t.Fatal("nil record must map to nil voucher")
    }
}
