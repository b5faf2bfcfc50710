package handler

import (
    "net/http"
    "testing"

    "github.com/SAKSAUD7/ninjainflatablepark/internal/repository"
)

func TestVoucherPreviewRequiresCode(t *testing.T) {
    h := NewVoucherPreviewHandler(repository.NewVoucherRepo(nil))
    c, rec := jsonCtx(t, http.MethodGet, "/v1/vouchers/validate?amount=100000", "")
    if err := h.Validate(c); err != nil {
        t.Fatalf("Validate returned error: %v", err)
    }
    if rec.Code != http.StatusBadRequest {
        t.Fatalf("status = %d, want 400", rec.Code)
    }
}

func TestVoucherPreviewRejectsBadAmount(t *testing.T) {
    h := NewVoucherPreviewHandler(repository.NewVoucherRepo(nil))
    for _, q := range []string{
        "/v1/vouchers/validate?code=SAVE10",
        "/v1/vouchers/validate?code=SAVE10&amount=abc",
        "/v1/vouchers/validate?code=SAVE10&amount=-5",
    } {
        c, rec := jsonCtx(t, http.MethodGet, q, "")
        if err := h.Validate(c); err != nil {
            t.Fatalf("Validate returned error: %v", err)
        }
        if rec.Code != http.StatusBadRequest {
            t.Fatalf("%s: status = %d, want 400", q, rec.Code)
        }
    }
}
