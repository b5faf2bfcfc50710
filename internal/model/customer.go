package model

import "time"

// Customer is the identity record behind bookings, keyed by email.  A
// customer row is matched or created whenever a booking comes in and is
// never hard-deleted because historical bookings reference it.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – contact name as given on the latest booking.
//  Email     – unique, stored lowercased.
//  Phone     – optional phone number.
//  Notes     – free-form staff notes.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Customer struct {
    ID        uint64    // customers.id
    Name      string    // customers.name
    Email     string    // customers.email
    Phone     *string   // customers.phone (nullable)
    Notes     *string   // customers.notes (nullable)
    CreatedAt time.Time // customers.created_at
    UpdatedAt time.Time // customers.updated_at
}
