package router

import (
    "strings"
    "testing"

    "github.com/labstack/echo/v4"

    "github.com/SAKSAUD7/ninjainflatablepark/internal/config"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/handler"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/model"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/repository"
)

func TestCapabilitiesWellFormed(t *testing.T) {
    caps := Capabilities()
    if len(caps) == 0 {
        t.Fatal("capability table is empty")
    }

    seen := map[string]string{}
    for op, cap := range caps {
        switch cap.Method {
        case "GET", "POST", "PATCH", "DELETE":
        default:
            t.Fatalf("%s: unexpected method %q", op, cap.Method)
        }
        if !strings.HasPrefix(cap.Path, "/v1/admin/") {
            t.Fatalf("%s: path %q is outside the staff surface", op, cap.Path)
        }
        if len(cap.Roles) == 0 {
            t.Fatalf("%s: no roles declared", op)
        }
        for _, r := range cap.Roles {
            if r != model.RoleAdmin && r != model.RoleStaff {
                t.Fatalf("%s: unknown role %q", op, r)
            }
        }
        route := cap.Method + " " + cap.Path
        if prev, dup := seen[route]; dup {
            t.Fatalf("route %q claimed by both %s and %s", route, prev, op)
        }
        seen[route] = op
    }
}

func TestCapabilitiesAdminCatalogRestricted(t *testing.T) {
    // Catalog management must never be reachable by the STAFF role.
    caps := Capabilities()
    for _, op := range []string{"vouchers.create", "booking_blocks.create", "users.create"} {
        cap, ok := caps[op]
        if !ok {
            t.Fatalf("missing capability %s", op)
        }
        for _, r := range cap.Roles {
            if r == model.RoleStaff {
                t.Fatalf("%s grants STAFF access", op)
            }
        }
    }
}

// Registering the staff routes must bind a handler for every capability;
// an unbound entry panics, so a clean registration is the assertion.
func TestRegisterAdminBindsEveryCapability(t *testing.T) {
    e := echo.New()
    h := AdminHandlers{
        Bookings:     handler.NewAdminBookingHandler(repository.NewBookingRepo(nil), repository.NewTransactionRepo(nil), repository.NewWaiverRepo(nil), false),
        Parties:      handler.NewAdminPartyHandler(repository.NewPartyBookingRepo(nil), repository.NewWaiverRepo(nil), false),
        Waivers:      handler.NewAdminWaiverHandler(repository.NewWaiverRepo(nil), repository.NewBookingRepo(nil), repository.NewPartyBookingRepo(nil)),
        Transactions: handler.NewAdminTransactionHandler(repository.NewTransactionRepo(nil)),
        Customers:    handler.NewAdminCustomerHandler(repository.NewCustomerRepo(nil)),
        Vouchers:     handler.NewAdminVoucherHandler(repository.NewVoucherRepo(nil)),
        Blocks:       handler.NewAdminBlockHandler(repository.NewBookingBlockRepo(nil)),
        Dashboard:    handler.NewAdminDashboardHandler(repository.NewStatsRepo(nil), repository.NewBookingRepo(nil)),
        Users:        handler.NewAdminUserHandler(config.Config{}, repository.NewUserRepo(nil)),
    }
    RegisterAdmin(e, h, "test-secret")

    registered := map[string]bool{}
    for _, r := range e.Routes() {
        registered[r.Method+" "+r.Path] = true
    }
    for op, cap := range Capabilities() {
        if !registered[cap.Method+" "+cap.Path] {
            t.Fatalf("capability %s not registered as %s %s", op, cap.Method, cap.Path)
        }
    }
}
