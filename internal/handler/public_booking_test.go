package handler

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"

    "github.com/SAKSAUD7/ninjainflatablepark/internal/repository"
)

// jsonCtx builds an Echo context carrying a JSON body, for exercising
// handler validation without a live server.
func jsonCtx(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(method, target, strings.NewReader(body))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    rec := httptest.NewRecorder()
    return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
    t.Helper()
    var out map[string]any
    if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
        t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
    }
    return out
}

func testBookingHandler() *BookingHandler {
    return NewBookingHandler(
        repository.NewBookingRepo(nil),
        repository.NewCustomerRepo(nil),
        repository.NewVoucherRepo(nil),
        repository.NewBookingBlockRepo(nil),
        false,
    )
}

func TestCreateBookingReqValidate(t *testing.T) {
    req := createBookingReq{
        Name:        "  Priya Sharma ",
        Email:       " PRIYA@Example.com ",
        Phone:       "9876543210",
        Date:        "2026-09-12",
        Time:        "10:30",
        Adults:      2,
        Kids:        1,
        VoucherCode: " save10 ",
    }
    date, fields := req.validate()
    if len(fields) != 0 {
        t.Fatalf("unexpected field errors: %v", fields)
    }
    if req.Name != "Priya Sharma" || req.Email != "priya@example.com" {
        t.Fatalf("normalization failed: %q / %q", req.Name, req.Email)
    }
    if req.VoucherCode != "SAVE10" {
        t.Fatalf("voucher code = %q, want SAVE10", req.VoucherCode)
    }
    if req.DurationMin != 60 {
        t.Fatalf("duration defaulted to %d, want 60", req.DurationMin)
    }
    if date.Format("2006-01-02") != "2026-09-12" {
        t.Fatalf("parsed date = %s", date.Format("2006-01-02"))
    }
}

func TestCreateBookingReqValidateErrors(t *testing.T) {
    cases := []struct {
        name  string
        mut   func(*createBookingReq)
        field string
    }{
        {"missing name", func(r *createBookingReq) { r.Name = "  " }, "name"},
        {"bad email", func(r *createBookingReq) { r.Email = "not-an-email" }, "email"},
        {"missing phone", func(r *createBookingReq) { r.Phone = "" }, "phone"},
        {"bad date", func(r *createBookingReq) { r.Date = "12/09/2026" }, "date"},
        {"bad time", func(r *createBookingReq) { r.Time = "10:30pm" }, "time"},
        {"bad duration", func(r *createBookingReq) { r.DurationMin = 90 }, "duration_min"},
        {"negative counts", func(r *createBookingReq) { r.Adults = -1 }, "counts"},
        {"no jumpers", func(r *createBookingReq) { r.Adults, r.Kids = 0, 0 }, "counts"},
    }
    for _, tc := range cases {
        req := createBookingReq{
            Name: "A B", Email: "a@b.c", Phone: "1", Date: "2026-09-12", Time: "10:30", Adults: 1,
        }
        tc.mut(&req)
        if _, fields := req.validate(); fields[tc.field] == "" {
            t.Fatalf("%s: expected error on %q, got %v", tc.name, tc.field, fields)
        }
    }
}

func TestCreateBookingValidationResponse(t *testing.T) {
    h := testBookingHandler()
    c, rec := jsonCtx(t, http.MethodPost, "/v1/bookings", `{"name":"","email":"x","adults":1}`)
    if err := h.Create(c); err != nil {
        t.Fatalf("Create returned error: %v", err)
    }
    if rec.Code != http.StatusBadRequest {
        t.Fatalf("status = %d, want 400", rec.Code)
    }
    body := decodeBody(t, rec)
    if body["error"] != "validation failed" {
        t.Fatalf("error = %v", body["error"])
    }
    fields, _ := body["fields"].(map[string]any)
    for _, f := range []string{"name", "email", "phone", "date", "time"} {
        if fields[f] == nil {
            t.Fatalf("missing field error %q in %v", f, fields)
        }
    }
}

func TestCreateBookingRejectsMalformedBody(t *testing.T) {
    h := testBookingHandler()
    c, rec := jsonCtx(t, http.MethodPost, "/v1/bookings", `{"adults": "two"}`)
    if err := h.Create(c); err != nil {
        t.Fatalf("Create returned error: %v", err)
    }
    if rec.Code != http.StatusBadRequest {
        t.Fatalf("status = %d, want 400", rec.Code)
    }
}

func TestTicketRequiresID(t *testing.T) {
    h := testBookingHandler()
    c, rec := jsonCtx(t, http.MethodGet, "/v1/bookings/ticket/%20", "")
    c.SetParamNames("uuid")
    c.SetParamValues("  ")
    if err := h.Ticket(c); err != nil {
        t.Fatalf("Ticket returned error: %v", err)
    }
    if rec.Code != http.StatusBadRequest {
        t.Fatalf("status = %d, want 400", rec.Code)
    }
}
