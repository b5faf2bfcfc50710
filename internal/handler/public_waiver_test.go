package handler

import (
    "net/http"
    "testing"

    "github.com/SAKSAUD7/ninjainflatablepark/internal/repository"
)

func testWaiverHandler() *WaiverHandler {
    return NewWaiverHandler(
        repository.NewWaiverRepo(nil),
        repository.NewBookingRepo(nil),
        repository.NewPartyBookingRepo(nil),
    )
}

func TestCreateWaiverRejectsDualOwner(t *testing.T) {
    h := testWaiverHandler()
    c, rec := jsonCtx(t, http.MethodPost, "/v1/waivers",
        `{"name":"Aisha Khan","booking_uuid":"s-123","party_booking_uuid":"p-456"}`)
    if err := h.Create(c); err != nil {
        t.Fatalf("Create returned error: %v", err)
    }
    if rec.Code != http.StatusBadRequest {
        t.Fatalf("status = %d, want 400", rec.Code)
    }
    body := decodeBody(t, rec)
    fields, _ := body["fields"].(map[string]any)
    if fields["booking_uuid"] == nil {
        t.Fatalf("expected booking_uuid field error, got %v", body)
    }
}

func TestCreateWaiverRequiresName(t *testing.T) {
    h := testWaiverHandler()
    c, rec := jsonCtx(t, http.MethodPost, "/v1/waivers", `{"name":"   "}`)
    if err := h.Create(c); err != nil {
        t.Fatalf("Create returned error: %v", err)
    }
    if rec.Code != http.StatusBadRequest {
        t.Fatalf("status = %d, want 400", rec.Code)
    }
}

func TestCreateWaiverRejectsUnknownType(t *testing.T) {
    h := testWaiverHandler()
    c, rec := jsonCtx(t, http.MethodPost, "/v1/waivers",
        `{"name":"Aisha Khan","participant_type":"INFANT"}`)
    if err := h.Create(c); err != nil {
        t.Fatalf("Create returned error: %v", err)
    }
    if rec.Code != http.StatusBadRequest {
        t.Fatalf("status = %d, want 400", rec.Code)
    }
}
