package handler

import (
    "net/http"
    "testing"

    "github.com/SAKSAUD7/ninjainflatablepark/internal/repository"
)

func testPartyHandler() *PartyHandler {
    return NewPartyHandler(
        repository.NewPartyBookingRepo(nil),
        repository.NewPartyPackageRepo(nil),
        repository.NewCustomerRepo(nil),
        repository.NewVoucherRepo(nil),
        repository.NewBookingBlockRepo(nil),
        repository.NewWaiverRepo(nil),
        false,
    )
}

func TestCreatePartyReqValidate(t *testing.T) {
    req := createPartyReq{
        Name:        "Rohan Mehta",
        Email:       "rohan@example.com",
        Phone:       "9876500000",
        Date:        "2026-10-01",
        Time:        "15:00",
        PackageName: "Ninja Deluxe",
        Adults:      2,
        Kids:        8,
    }
    if _, fields := req.validate(); len(fields) != 0 {
        t.Fatalf("unexpected field errors: %v", fields)
    }

    // Parties price per child, so a party with no children is rejected.
    req.Kids = 0
    if _, fields := req.validate(); fields["kids"] == "" {
        t.Fatalf("expected kids error, got %v", fields)
    }

    req.Kids = 8
    req.PackageName = " "
    if _, fields := req.validate(); fields["package_name"] == "" {
        t.Fatalf("expected package_name error, got %v", fields)
    }
}

func TestAddParticipantsRequiresTicket(t *testing.T) {
    h := testPartyHandler()
    c, rec := jsonCtx(t, http.MethodPost, "/v1/party-bookings//add_participants", `{"participants":[{"name":"A","type":"ADULT"}]}`)
    c.SetParamNames("uuid")
    c.SetParamValues("")
    if err := h.AddParticipants(c); err != nil {
        t.Fatalf("AddParticipants returned error: %v", err)
    }
    if rec.Code != http.StatusBadRequest {
        t.Fatalf("status = %d, want 400", rec.Code)
    }
}

func TestAddParticipantsValidation(t *testing.T) {
    cases := []struct {
        name string
        body string
    }{
        {"empty roster", `{"participants":[]}`},
        {"nameless participant", `{"participants":[{"name":"  ","type":"ADULT"}]}`},
        {"unknown type", `{"participants":[{"name":"Kai","type":"TODDLER"}]}`},
    }
    h := testPartyHandler()
    for _, tc := range cases {
        c, rec := jsonCtx(t, http.MethodPost, "/v1/party-bookings/abc/add_participants", tc.body)
        c.SetParamNames("uuid")
        c.SetParamValues("abc")
        if err := h.AddParticipants(c); err != nil {
            t.Fatalf("%s: AddParticipants returned error: %v", tc.name, err)
        }
        if rec.Code != http.StatusBadRequest {
            t.Fatalf("%s: status = %d, want 400", tc.name, rec.Code)
        }
        body := decodeBody(t, rec)
        if body["error"] != "validation failed" {
            t.Fatalf("%s: error = %v", tc.name, body["error"])
        }
    }
}
