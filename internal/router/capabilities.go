package router

import "github.com/SAKSAUD7/ninjainflatablepark/internal/model"

// Capability declares one staff operation: its route and the roles allowed
// to call it.  The table below is the single source of truth for staff
// authorization — route registration reads it and attaches the role
// middleware uniformly, so no handler carries its own role branching.
type Capability struct {
    Method string
    Path   string
    Roles  []string
}

var staffOnly = []string{model.RoleAdmin, model.RoleStaff}
var adminOnly = []string{model.RoleAdmin}

// Capabilities maps operation names to their route and allowed roles.
// STAFF covers the day-to-day desk work; catalog management (vouchers,
// closure blocks, staff accounts) stays ADMIN.
func Capabilities() map[string]Capability {
    return map[string]Capability{
        "bookings.list":          {Method: "GET", Path: "/v1/admin/bookings", Roles: staffOnly},
        "bookings.get":           {Method: "GET", Path: "/v1/admin/bookings/:id", Roles: staffOnly},
        "bookings.status":        {Method: "PATCH", Path: "/v1/admin/bookings/:id/status", Roles: staffOnly},
        "bookings.transactions":  {Method: "GET", Path: "/v1/admin/bookings/:id/transactions", Roles: staffOnly},
        "parties.list":           {Method: "GET", Path: "/v1/admin/party-bookings", Roles: staffOnly},
        "parties.get":            {Method: "GET", Path: "/v1/admin/party-bookings/:id", Roles: staffOnly},
        "parties.status":         {Method: "PATCH", Path: "/v1/admin/party-bookings/:id/status", Roles: staffOnly},
        "parties.edit":           {Method: "PATCH", Path: "/v1/admin/party-bookings/:id", Roles: staffOnly},
        "waivers.list":           {Method: "GET", Path: "/v1/admin/waivers", Roles: staffOnly},
        "waivers.get":            {Method: "GET", Path: "/v1/admin/waivers/:id", Roles: staffOnly},
        "transactions.create":    {Method: "POST", Path: "/v1/admin/transactions", Roles: staffOnly},
        "customers.list":         {Method: "GET", Path: "/v1/admin/customers", Roles: staffOnly},
        "customers.notes":        {Method: "PATCH", Path: "/v1/admin/customers/:id/notes", Roles: staffOnly},
        "dashboard.stats":        {Method: "GET", Path: "/v1/admin/dashboard/stats", Roles: staffOnly},
        "vouchers.list":          {Method: "GET", Path: "/v1/admin/vouchers", Roles: adminOnly},
        "vouchers.create":        {Method: "POST", Path: "/v1/admin/vouchers", Roles: adminOnly},
        "vouchers.set_active":    {Method: "PATCH", Path: "/v1/admin/vouchers/:id", Roles: adminOnly},
        "booking_blocks.list":    {Method: "GET", Path: "/v1/admin/booking-blocks", Roles: adminOnly},
        "booking_blocks.create":  {Method: "POST", Path: "/v1/admin/booking-blocks", Roles: adminOnly},
        "booking_blocks.delete":  {Method: "DELETE", Path: "/v1/admin/booking-blocks/:id", Roles: adminOnly},
        "users.create":           {Method: "POST", Path: "/v1/admin/users", Roles: adminOnly},
    }
}
